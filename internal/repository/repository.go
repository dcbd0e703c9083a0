package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/4utre/expense-tracker-app/internal/models"
)

// ExpenseFilter narrows expense listings. Nil/zero fields are ignored.
// Limit <= 0 disables pagination and returns the full result set.
type ExpenseFilter struct {
	From        *time.Time
	To          *time.Time
	DriverID    string
	ExpenseType string
	Currency    string
	IsPaid      *bool
	IsDeleted   *bool
	Search      string
	Page        int
	Limit       int
}

// Repository interface defines the methods that any repository implementation must satisfy
type Repository interface {
	// User operations
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id string) error

	// Driver operations
	CreateDriver(ctx context.Context, driver *models.Driver) error
	GetDriver(ctx context.Context, id string) (*models.Driver, error)
	ListDrivers(ctx context.Context) ([]models.Driver, error)
	UpdateDriver(ctx context.Context, driver *models.Driver) error
	DeleteDriver(ctx context.Context, id string) error

	// Expense operations
	CreateExpense(ctx context.Context, expense *models.Expense) error
	GetExpense(ctx context.Context, id string) (*models.Expense, error)
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, int64, error)
	ListDriverHourlyExpenses(ctx context.Context, driverID string) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, expense *models.Expense) error
	UpdateExpenseAmount(ctx context.Context, id string, amount decimal.Decimal) error
	DeleteExpense(ctx context.Context, id string) error
	SetExpensesDeleted(ctx context.Context, ids []string, deleted bool) error
	DeleteExpenses(ctx context.Context, ids []string) error

	// Employee operations
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	GetEmployee(ctx context.Context, id string) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, employee *models.Employee) error
	DeleteEmployee(ctx context.Context, id string) error

	// Expense type operations
	CreateExpenseType(ctx context.Context, et *models.ExpenseType) error
	GetExpenseType(ctx context.Context, id string) (*models.ExpenseType, error)
	ListExpenseTypes(ctx context.Context) ([]models.ExpenseType, error)
	UpdateExpenseType(ctx context.Context, et *models.ExpenseType) error
	DeleteExpenseType(ctx context.Context, id string) error

	// App setting operations
	ListSettings(ctx context.Context) ([]models.AppSetting, error)
	GetSettingByKey(ctx context.Context, key string) (*models.AppSetting, error)
	UpsertSetting(ctx context.Context, setting *models.AppSetting) error
	DeleteSettingByKey(ctx context.Context, key string) error

	// Print template operations
	CreateTemplate(ctx context.Context, tpl *models.PrintTemplate) error
	GetTemplate(ctx context.Context, id string) (*models.PrintTemplate, error)
	ListTemplates(ctx context.Context) ([]models.PrintTemplate, error)
	UpdateTemplate(ctx context.Context, tpl *models.PrintTemplate) error
	DeleteTemplate(ctx context.Context, id string) error
	ClearDefaultTemplates(ctx context.Context, templateType string) error
}
