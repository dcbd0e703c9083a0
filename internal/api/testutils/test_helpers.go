// Package testutils provides shared helpers for API-level tests. The stack is
// assembled on the in-memory repository and a recording mailer, so tests run
// without Postgres or an SMTP server.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/4utre/expense-tracker-app/internal/api"
	"github.com/4utre/expense-tracker-app/internal/config"
	"github.com/4utre/expense-tracker-app/internal/mailer"
	"github.com/4utre/expense-tracker-app/internal/models"
	"github.com/4utre/expense-tracker-app/internal/repository"
	"github.com/4utre/expense-tracker-app/internal/service"
	"github.com/4utre/expense-tracker-app/internal/storage"
)

// FakeMailer records outgoing messages instead of sending them
type FakeMailer struct {
	Sent []mailer.Message
}

func (f *FakeMailer) Send(msg mailer.Message) error {
	f.Sent = append(f.Sent, msg)
	return nil
}

// TestContext holds all dependencies for tests
type TestContext struct {
	Router      *gin.Engine
	Repository  repository.Repository
	Service     service.Service
	Mailer      *FakeMailer
	AdminUserID string
	AdminJWT    string
	TestUserID  string
	TestUserJWT string
}

// SetupTestContext creates a new test context with initialized dependencies
func SetupTestContext(t *testing.T) *TestContext {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret: "test-secret-key",
			TokenTTL:  24 * time.Hour,
		},
	}

	repo := repository.NewMemoryRepository()
	fm := &FakeMailer{}
	svc := service.NewDefaultService(repo, fm, zap.NewNop(), cfg)

	uploads, err := storage.NewLocalStore(t.TempDir(), "/uploads")
	assert.NoError(t, err, "Failed to set up upload storage")

	handler := api.NewHandler(svc, uploads, zap.NewNop())

	// Set up Gin router
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Add middleware for JWT secret
	router.Use(func(c *gin.Context) {
		c.Set("jwtSecret", []byte(cfg.Auth.JWTSecret))
		c.Next()
	})

	// Set up routes
	handler.SetupRoutes(router)

	// Seed an admin and a regular user directly through the repository
	adminID := createTestUser(t, repo, "admin@example.com", "admin")
	userID := createTestUser(t, repo, "testuser@example.com", "user")

	adminJWT := loginUser(t, router, "admin@example.com")
	userJWT := loginUser(t, router, "testuser@example.com")

	return &TestContext{
		Router:      router,
		Repository:  repo,
		Service:     svc,
		Mailer:      fm,
		AdminUserID: adminID,
		AdminJWT:    adminJWT,
		TestUserID:  userID,
		TestUserJWT: userJWT,
	}
}

func createTestUser(t *testing.T, repo repository.Repository, email, role string) string {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("testpassword"), bcrypt.DefaultCost)

	user := &models.User{
		ID:       uuid.New().String(),
		Email:    email,
		FullName: "Test User",
		Password: string(hashedPassword),
		Role:     role,
	}

	err := repo.CreateUser(context.Background(), user)
	assert.NoError(t, err, "Failed to create test user")

	return user.ID
}

func loginUser(t *testing.T, router http.Handler, email string) string {
	w := PerformRequest(router, http.MethodPost, "/api/auth/login", models.LoginRequest{
		Email:    email,
		Password: "testpassword",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code, "Failed to log in %s", email)

	var resp models.AuthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	return resp.Token
}

// PerformRequest executes an HTTP request against the router
func PerformRequest(r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer

	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// PerformRawRequest sends a raw JSON body, for cases where the payload is not
// expressible as a typed request (e.g. legacy field names).
func PerformRawRequest(r http.Handler, method, path string, body string, headers map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// AuthHeaders returns headers with Authorization token
func AuthHeaders(token string) map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", token),
	}
}
