package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/4utre/expense-tracker-app/internal/api/testutils"
	"github.com/4utre/expense-tracker-app/internal/models"
)

func createExpense(t *testing.T, testCtx *testutils.TestContext, driverID, date string, amount int64) models.Expense {
	t.Helper()

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/expenses",
		models.CreateExpenseRequest{
			ExpenseDate: date,
			DriverID:    driverID,
			ExpenseType: "transport",
			Amount:      decimal.NewFromInt(amount),
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusCreated, w.Code)

	var expense models.Expense
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &expense))
	return expense
}

func listExpenses(t *testing.T, testCtx *testutils.TestContext, query string) models.ExpenseListResponse {
	t.Helper()

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/expenses"+query,
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ExpenseListResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestExpenseFilters(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	driver := createDriver(t, testCtx, "Ali Hassan", "DRV-001", 10)
	other := createDriver(t, testCtx, "Omar Said", "DRV-002", 10)

	createExpense(t, testCtx, driver.ID, "2024-04-20", 10)
	createExpense(t, testCtx, driver.ID, "2024-05-01", 20)
	createExpense(t, testCtx, other.ID, "2024-05-15", 30)

	// Month filter covers the whole calendar month
	resp := listExpenses(t, testCtx, "?month=2024-05")
	assert.Len(t, resp.Data, 2)
	assert.EqualValues(t, 2, resp.Pagination.Total)

	// Driver filter
	resp = listExpenses(t, testCtx, fmt.Sprintf("?driver_id=%s", driver.ID))
	assert.Len(t, resp.Data, 2)

	// Combined
	resp = listExpenses(t, testCtx, fmt.Sprintf("?month=2024-05&driver_id=%s", driver.ID))
	assert.Len(t, resp.Data, 1)
	assert.True(t, resp.Data[0].Amount.Equal(decimal.NewFromInt(20)))

	// Search matches the denormalized driver name
	resp = listExpenses(t, testCtx, "?search=omar")
	assert.Len(t, resp.Data, 1)

	// Bad month token
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/expenses?month=May-2024",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExpensePagination(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	driver := createDriver(t, testCtx, "Ali Hassan", "DRV-001", 10)
	for i := 1; i <= 5; i++ {
		createExpense(t, testCtx, driver.ID, fmt.Sprintf("2024-05-%02d", i), int64(i))
	}

	resp := listExpenses(t, testCtx, "?limit=2&page=1")
	assert.Len(t, resp.Data, 2)
	assert.EqualValues(t, 5, resp.Pagination.Total)
	assert.EqualValues(t, 3, resp.Pagination.Pages)
	assert.Equal(t, 2, resp.Pagination.Limit)

	resp = listExpenses(t, testCtx, "?limit=2&page=3")
	assert.Len(t, resp.Data, 1)
}

func TestExpenseTrashLifecycle(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	driver := createDriver(t, testCtx, "Ali Hassan", "DRV-001", 10)
	expense := createExpense(t, testCtx, driver.ID, "2024-05-01", 10)
	keep := createExpense(t, testCtx, driver.ID, "2024-05-02", 20)

	// Soft delete
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/expenses/"+expense.ID+"/soft-delete",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := listExpenses(t, testCtx, "?is_deleted=true")
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, expense.ID, resp.Data[0].ID)

	resp = listExpenses(t, testCtx, "?is_deleted=false")
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, keep.ID, resp.Data[0].ID)

	// Restore
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/expenses/"+expense.ID+"/restore",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	resp = listExpenses(t, testCtx, "?is_deleted=false")
	assert.Len(t, resp.Data, 2)

	// Bulk trash then permanently delete
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/expenses/bulk-delete",
		models.BulkExpenseIDsRequest{IDs: []string{expense.ID, keep.ID}},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	resp = listExpenses(t, testCtx, "?is_deleted=true")
	assert.Len(t, resp.Data, 2)

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/expenses/bulk-permanent-delete",
		models.BulkExpenseIDsRequest{IDs: []string{expense.ID, keep.ID}},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	resp = listExpenses(t, testCtx, "")
	assert.Empty(t, resp.Data)
}
