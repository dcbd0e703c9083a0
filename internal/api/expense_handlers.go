package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/4utre/expense-tracker-app/internal/backup"
	"github.com/4utre/expense-tracker-app/internal/models"
	"github.com/4utre/expense-tracker-app/internal/repository"
)

// parseExpenseFilter builds the list filter from query parameters. A "month"
// parameter (YYYY-MM) expands to the first and last day of that month;
// explicit from/to bounds take precedence over it.
func parseExpenseFilter(c *gin.Context) (repository.ExpenseFilter, error) {
	var filter repository.ExpenseFilter

	if month := c.Query("month"); month != "" {
		from, to, err := backup.MonthRange(month)
		if err != nil {
			return filter, err
		}
		filter.From, filter.To = &from, &to
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, err
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, err
		}
		filter.To = &t
	}

	filter.DriverID = c.Query("driver_id")
	filter.ExpenseType = c.Query("expense_type")
	filter.Currency = c.Query("currency")
	filter.Search = c.Query("search")

	if raw := c.Query("is_paid"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, err
		}
		filter.IsPaid = &v
	}
	if raw := c.Query("is_deleted"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, err
		}
		filter.IsDeleted = &v
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	return filter, nil
}

func (h *Handler) ListExpenses(c *gin.Context) {
	filter, err := parseExpenseFilter(c)
	if err != nil {
		h.respondBadRequest(c, err)
		return
	}

	resp, err := h.service.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateExpense(c *gin.Context) {
	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, err)
		return
	}

	expense, err := h.service.CreateExpense(c.Request.Context(), actorEmail(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

func (h *Handler) GetExpense(c *gin.Context) {
	expense, err := h.service.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

func (h *Handler) UpdateExpense(c *gin.Context) {
	var req models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, err)
		return
	}

	expense, err := h.service.UpdateExpense(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense permanently removes an expense
func (h *Handler) DeleteExpense(c *gin.Context) {
	if err := h.service.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Status:  "success",
		Message: "Expense deleted",
	})
}

// SoftDeleteExpense moves an expense to the trash
func (h *Handler) SoftDeleteExpense(c *gin.Context) {
	expense, err := h.service.SetExpenseDeleted(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// RestoreExpense brings a trashed expense back
func (h *Handler) RestoreExpense(c *gin.Context) {
	expense, err := h.service.SetExpenseDeleted(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

func (h *Handler) BulkDeleteExpenses(c *gin.Context) {
	var req models.BulkExpenseIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, err)
		return
	}

	if err := h.service.BulkSetExpensesDeleted(c.Request.Context(), req.IDs, true); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Status:  "success",
		Message: "Expenses moved to trash",
	})
}

func (h *Handler) BulkRestoreExpenses(c *gin.Context) {
	var req models.BulkExpenseIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, err)
		return
	}

	if err := h.service.BulkSetExpensesDeleted(c.Request.Context(), req.IDs, false); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Status:  "success",
		Message: "Expenses restored",
	})
}

func (h *Handler) BulkPermanentDeleteExpenses(c *gin.Context) {
	var req models.BulkExpenseIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, err)
		return
	}

	if err := h.service.BulkDeleteExpenses(c.Request.Context(), req.IDs); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Status:  "success",
		Message: "Expenses deleted",
	})
}
