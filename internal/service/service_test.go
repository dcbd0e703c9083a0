package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/4utre/expense-tracker-app/internal/config"
	"github.com/4utre/expense-tracker-app/internal/mailer"
	"github.com/4utre/expense-tracker-app/internal/models"
	"github.com/4utre/expense-tracker-app/internal/repository"
)

// fakeMailer records outgoing messages instead of sending them
type fakeMailer struct {
	sent []mailer.Message
	err  error
}

func (f *fakeMailer) Send(msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
		},
	}
}

func newTestService(t *testing.T) (Service, *repository.MemoryRepository, *fakeMailer) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	fm := &fakeMailer{}
	svc := NewDefaultService(repo, fm, zap.NewNop(), testConfig())
	return svc, repo, fm
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, models.RegisterRequest{
		Email:    "owner@example.com",
		Password: "password123",
		FullName: "Owner",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", first.Role)

	second, err := svc.Register(ctx, models.RegisterRequest{
		Email:    "clerk@example.com",
		Password: "password123",
		FullName: "Clerk",
	})
	require.NoError(t, err)
	assert.Equal(t, "user", second.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	req := models.RegisterRequest{
		Email:    "owner@example.com",
		Password: "password123",
		FullName: "Owner",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{
		Email:    "owner@example.com",
		Password: "password123",
		FullName: "Owner",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, models.LoginRequest{
		Email:    "owner@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.Role)

	_, err = svc.Login(ctx, models.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteUserRejectsSelf(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	admin, err := svc.Register(ctx, models.RegisterRequest{
		Email:    "owner@example.com",
		Password: "password123",
		FullName: "Owner",
	})
	require.NoError(t, err)

	err = svc.DeleteUser(ctx, admin.UserID, admin.UserID)
	assert.ErrorIs(t, err, ErrValidation)

	other, err := svc.Register(ctx, models.RegisterRequest{
		Email:    "clerk@example.com",
		Password: "password123",
		FullName: "Clerk",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, admin.UserID, other.UserID))
	_, err = svc.GetUser(ctx, other.UserID)
	assert.ErrorIs(t, err, ErrNotFound)
}
