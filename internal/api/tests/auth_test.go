package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/4utre/expense-tracker-app/internal/api/testutils"
	"github.com/4utre/expense-tracker-app/internal/models"
)

func TestRegister(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	// Test case 1: Successful registration
	registerReq := models.RegisterRequest{
		Email:    "newuser@example.com",
		Password: "Password123",
		FullName: "New User",
	}

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/auth/register",
		registerReq,
		nil,
	)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.AuthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// Two users are seeded before this one, so it is a regular user
	assert.Equal(t, "user", resp.Role)

	// Test case 2: Duplicate email
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/auth/register",
		registerReq,
		nil,
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Test case 3: Missing required fields
	invalidReq := models.RegisterRequest{
		Email: "invalid@example.com",
	}

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/auth/register",
		invalidReq,
		nil,
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	// Test case 1: Successful login
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/auth/login",
		models.LoginRequest{
			Email:    "testuser@example.com",
			Password: "testpassword",
		},
		nil,
	)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.AuthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Positive(t, resp.ExpiresIn)

	// Test case 2: Wrong password
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/auth/login",
		models.LoginRequest{
			Email:    "testuser@example.com",
			Password: "wrongpassword",
		},
		nil,
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	// Authenticated request returns the caller's profile without the password
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/auth/me",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)

	assert.Equal(t, http.StatusOK, w.Code)

	var user models.User
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, testCtx.TestUserID, user.ID)
	assert.Equal(t, "testuser@example.com", user.Email)
	assert.NotContains(t, w.Body.String(), "password")

	// Missing token
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/auth/me",
		nil,
		nil,
	)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/auth/me",
		nil,
		testutils.AuthHeaders("not-a-token"),
	)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
