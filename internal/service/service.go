package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/4utre/expense-tracker-app/internal/config"
	"github.com/4utre/expense-tracker-app/internal/mailer"
	"github.com/4utre/expense-tracker-app/internal/models"
	"github.com/4utre/expense-tracker-app/internal/repository"
)

// Service defines all the business logic operations
type Service interface {
	// Authentication
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetUser(ctx context.Context, id string) (*models.User, error)

	// Drivers
	CreateDriver(ctx context.Context, actor string, req models.CreateDriverRequest) (*models.Driver, error)
	GetDriver(ctx context.Context, id string) (*models.Driver, error)
	ListDrivers(ctx context.Context) ([]models.Driver, error)
	UpdateDriver(ctx context.Context, id string, req models.UpdateDriverRequest) (*models.Driver, error)
	DeleteDriver(ctx context.Context, id string) error
	BulkUpdateRates(ctx context.Context, req models.BulkRateUpdateRequest) error

	// Expenses
	CreateExpense(ctx context.Context, actor string, req models.CreateExpenseRequest) (*models.Expense, error)
	GetExpense(ctx context.Context, id string) (*models.Expense, error)
	ListExpenses(ctx context.Context, filter repository.ExpenseFilter) (*models.ExpenseListResponse, error)
	UpdateExpense(ctx context.Context, id string, req models.UpdateExpenseRequest) (*models.Expense, error)
	SetExpenseDeleted(ctx context.Context, id string, deleted bool) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
	BulkSetExpensesDeleted(ctx context.Context, ids []string, deleted bool) error
	BulkDeleteExpenses(ctx context.Context, ids []string) error

	// Employees
	CreateEmployee(ctx context.Context, actor string, req models.CreateEmployeeRequest) (*models.Employee, error)
	GetEmployee(ctx context.Context, id string) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, id string, req models.UpdateEmployeeRequest) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error

	// Expense types
	CreateExpenseType(ctx context.Context, actor string, req models.CreateExpenseTypeRequest) (*models.ExpenseType, error)
	GetExpenseType(ctx context.Context, id string) (*models.ExpenseType, error)
	ListExpenseTypes(ctx context.Context) ([]models.ExpenseType, error)
	UpdateExpenseType(ctx context.Context, id string, req models.UpdateExpenseTypeRequest) (*models.ExpenseType, error)
	DeleteExpenseType(ctx context.Context, id string) error

	// App settings
	ListSettings(ctx context.Context) ([]models.AppSetting, error)
	GetSetting(ctx context.Context, key string) (*models.AppSetting, error)
	UpsertSetting(ctx context.Context, actor string, req models.UpsertSettingRequest) (*models.AppSetting, error)
	DeleteSetting(ctx context.Context, key string) error

	// Print templates
	CreateTemplate(ctx context.Context, actor string, req models.CreatePrintTemplateRequest) (*models.PrintTemplate, error)
	GetTemplate(ctx context.Context, id string) (*models.PrintTemplate, error)
	ListTemplates(ctx context.Context) ([]models.PrintTemplate, error)
	UpdateTemplate(ctx context.Context, id string, req models.UpdatePrintTemplateRequest) (*models.PrintTemplate, error)
	SetDefaultTemplate(ctx context.Context, id string) (*models.PrintTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error

	// Users (admin)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, actorID, id string) error

	// Backup
	ExportBackup(ctx context.Context, format, month string) (*BackupFile, error)
	EmailBackup(ctx context.Context, req models.EmailBackupRequest) error
}

// BackupFile is a serialized backup ready to be downloaded or attached
type BackupFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// DefaultService implements the Service interface
type DefaultService struct {
	repo              repository.Repository
	mailer            mailer.Mailer
	logger            *zap.Logger
	jwtSecret         []byte
	tokenDuration     time.Duration
	applyOvertimeRate bool
}

// NewDefaultService creates a new DefaultService
func NewDefaultService(repo repository.Repository, m mailer.Mailer, logger *zap.Logger, cfg *config.Config) Service {
	tokenTTL := cfg.Auth.TokenTTL
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &DefaultService{
		repo:              repo,
		mailer:            m,
		logger:            logger,
		jwtSecret:         []byte(cfg.Auth.JWTSecret),
		tokenDuration:     tokenTTL,
		applyOvertimeRate: cfg.Rates.ApplyOvertimeRate,
	}
}

// Authentication methods

func (s *DefaultService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	existingUser, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking user existence: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("%w: user with this email already exists", ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	// The first registered account becomes the admin
	count, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}
	role := "user"
	if count == 0 {
		role = "admin"
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Email:    req.Email,
		FullName: req.FullName,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role))

	return &models.AuthResponse{
		Status:   "success",
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}

func (s *DefaultService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrValidation)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrValidation)
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &models.AuthResponse{
		Status:    "success",
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		Token:     token,
		ExpiresIn: int(s.tokenDuration.Seconds()),
	}, nil
}

func (s *DefaultService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	return user, nil
}

// generateJWT issues an HS256 token carrying the user's id, email and role
func (s *DefaultService) generateJWT(user *models.User) (string, error) {
	expirationTime := time.Now().Add(s.tokenDuration)

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   expirationTime.Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
