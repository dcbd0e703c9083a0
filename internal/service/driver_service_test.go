package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/4utre/expense-tracker-app/internal/models"
	"github.com/4utre/expense-tracker-app/internal/repository"
)

func seedDriver(t *testing.T, svc Service, name, number string, hourly string) *models.Driver {
	t.Helper()
	driver, err := svc.CreateDriver(context.Background(), "tester@example.com", models.CreateDriverRequest{
		DriverName:   name,
		DriverNumber: number,
		HourlyRate:   dec(hourly),
		OvertimeRate: dec(hourly).Mul(dec("1.5")),
	})
	require.NoError(t, err)
	return driver
}

func seedExpense(t *testing.T, svc Service, driverID string, hours *decimal.Decimal, amount string) *models.Expense {
	t.Helper()
	expense, err := svc.CreateExpense(context.Background(), "tester@example.com", models.CreateExpenseRequest{
		ExpenseDate: "2024-05-10",
		DriverID:    driverID,
		ExpenseType: "transport",
		Hours:       hours,
		Amount:      dec(amount),
	})
	require.NoError(t, err)
	return expense
}

func TestBulkUpdateRatesCascade(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	driver := seedDriver(t, svc, "Ali", "DRV-001", "10")
	hours := dec("5")
	hourly := seedExpense(t, svc, driver.ID, &hours, "50")
	flat := seedExpense(t, svc, driver.ID, nil, "30")

	newRate := dec("12")
	err := svc.BulkUpdateRates(ctx, models.BulkRateUpdateRequest{
		DriverIDs:  []string{driver.ID},
		HourlyRate: &newRate,
	})
	require.NoError(t, err)

	updated, err := svc.GetDriver(ctx, driver.ID)
	require.NoError(t, err)
	assert.True(t, updated.HourlyRate.Equal(dec("12")))

	// The hour-based expense is recomputed as hours x new rate
	recomputed, err := svc.GetExpense(ctx, hourly.ID)
	require.NoError(t, err)
	assert.True(t, recomputed.Amount.Equal(dec("60")), "got %s", recomputed.Amount)

	// Expenses without hours keep their amount
	untouched, err := svc.GetExpense(ctx, flat.ID)
	require.NoError(t, err)
	assert.True(t, untouched.Amount.Equal(dec("30")))
}

func TestBulkUpdateRatesIgnoresOvertimeFlag(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	driver := seedDriver(t, svc, "Ali", "DRV-001", "10")
	hours := dec("4")
	expense, err := svc.CreateExpense(ctx, "tester@example.com", models.CreateExpenseRequest{
		ExpenseDate: "2024-05-11",
		DriverID:    driver.ID,
		ExpenseType: "transport",
		Hours:       &hours,
		IsOvertime:  true,
		Amount:      dec("40"),
	})
	require.NoError(t, err)

	newHourly, newOvertime := dec("12"), dec("20")
	err = svc.BulkUpdateRates(ctx, models.BulkRateUpdateRequest{
		DriverIDs:    []string{driver.ID},
		HourlyRate:   &newHourly,
		OvertimeRate: &newOvertime,
	})
	require.NoError(t, err)

	// Default behavior charges overtime expenses at the plain hourly rate
	recomputed, err := svc.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.True(t, recomputed.Amount.Equal(dec("48")), "got %s", recomputed.Amount)
}

func TestBulkUpdateRatesOvertimeRateEnabled(t *testing.T) {
	repo := repository.NewMemoryRepository()
	cfg := testConfig()
	cfg.Rates.ApplyOvertimeRate = true
	svc := NewDefaultService(repo, &fakeMailer{}, zap.NewNop(), cfg)
	ctx := context.Background()

	driver := seedDriver(t, svc, "Ali", "DRV-001", "10")
	hours := dec("4")
	expense, err := svc.CreateExpense(ctx, "tester@example.com", models.CreateExpenseRequest{
		ExpenseDate: "2024-05-11",
		DriverID:    driver.ID,
		ExpenseType: "transport",
		Hours:       &hours,
		IsOvertime:  true,
		Amount:      dec("40"),
	})
	require.NoError(t, err)

	newHourly, newOvertime := dec("12"), dec("20")
	err = svc.BulkUpdateRates(ctx, models.BulkRateUpdateRequest{
		DriverIDs:    []string{driver.ID},
		HourlyRate:   &newHourly,
		OvertimeRate: &newOvertime,
	})
	require.NoError(t, err)

	recomputed, err := svc.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.True(t, recomputed.Amount.Equal(dec("80")), "got %s", recomputed.Amount)
}

func TestBulkUpdateRatesUnknownDriver(t *testing.T) {
	svc, _, _ := newTestService(t)

	newRate := dec("12")
	err := svc.BulkUpdateRates(context.Background(), models.BulkRateUpdateRequest{
		DriverIDs:  []string{"missing"},
		HourlyRate: &newRate,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBulkUpdateRatesNoChanges(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	driver := seedDriver(t, svc, "Ali", "DRV-001", "10")
	hours := dec("5")
	expense := seedExpense(t, svc, driver.ID, &hours, "50")

	// No rate fields supplied: nothing moves
	err := svc.BulkUpdateRates(ctx, models.BulkRateUpdateRequest{DriverIDs: []string{driver.ID}})
	require.NoError(t, err)

	// No driver ids: nothing moves either
	newRate := dec("99")
	err = svc.BulkUpdateRates(ctx, models.BulkRateUpdateRequest{DriverIDs: []string{}, HourlyRate: &newRate})
	require.NoError(t, err)

	unchanged, err := svc.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.True(t, unchanged.Amount.Equal(dec("50")))
}

func TestBulkUpdateRatesOvertimeOnlySkipsCascade(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	driver := seedDriver(t, svc, "Ali", "DRV-001", "10")
	hours := dec("5")
	expense := seedExpense(t, svc, driver.ID, &hours, "50")

	newOvertime := dec("25")
	err := svc.BulkUpdateRates(ctx, models.BulkRateUpdateRequest{
		DriverIDs:    []string{driver.ID},
		OvertimeRate: &newOvertime,
	})
	require.NoError(t, err)

	updated, err := svc.GetDriver(ctx, driver.ID)
	require.NoError(t, err)
	assert.True(t, updated.OvertimeRate.Equal(dec("25")))
	assert.True(t, updated.HourlyRate.Equal(dec("10")))

	unchanged, err := svc.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.True(t, unchanged.Amount.Equal(dec("50")))
}

func TestCreateExpenseSnapshotsDriver(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	driver := seedDriver(t, svc, "Ali", "DRV-001", "10")
	expense := seedExpense(t, svc, driver.ID, nil, "30")

	assert.Equal(t, "Ali", expense.DriverName)
	assert.Equal(t, "DRV-001", expense.DriverNumber)

	// Renaming the driver later does not rewrite the snapshot
	newName := "Ali Hassan"
	_, err := svc.UpdateDriver(ctx, driver.ID, models.UpdateDriverRequest{DriverName: &newName})
	require.NoError(t, err)

	stored, err := svc.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ali", stored.DriverName)
}
