package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/4utre/expense-tracker-app/internal/models"
	"github.com/4utre/expense-tracker-app/internal/repository"
)

// parseDay accepts the canonical "YYYY-MM-DD" date format, falling back to
// full RFC 3339 timestamps.
func parseDay(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, value)
	}
	return t, nil
}

func (s *DefaultService) CreateExpense(ctx context.Context, actor string, req models.CreateExpenseRequest) (*models.Expense, error) {
	expenseDate, err := parseDay(req.ExpenseDate)
	if err != nil {
		return nil, err
	}

	// Snapshot the driver's name and number at creation time
	driver, err := s.GetDriver(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}

	hours := decimal.NullDecimal{}
	if req.Hours != nil {
		hours = decimal.NullDecimal{Decimal: *req.Hours, Valid: true}
	}

	expense := &models.Expense{
		ExpenseDate:  expenseDate,
		DriverID:     driver.ID,
		DriverName:   driver.DriverName,
		DriverNumber: driver.DriverNumber,
		ExpenseType:  req.ExpenseType,
		Hours:        hours,
		HourlyRate:   req.HourlyRate,
		IsOvertime:   req.IsOvertime,
		Amount:       req.Amount,
		Currency:     defaultCurrency(req.Currency),
		IsPaid:       req.IsPaid,
		IsDeleted:    false,
		Description:  req.Description,
		CreatedBy:    actor,
	}

	if err := s.repo.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("error creating expense: %w", err)
	}

	return expense, nil
}

func (s *DefaultService) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	expense, err := s.repo.GetExpense(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting expense: %w", err)
	}
	if expense == nil {
		return nil, fmt.Errorf("%w: expense", ErrNotFound)
	}
	return expense, nil
}

func (s *DefaultService) ListExpenses(ctx context.Context, filter repository.ExpenseFilter) (*models.ExpenseListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	expenses, total, err := s.repo.ListExpenses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing expenses: %w", err)
	}

	pages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		pages++
	}

	return &models.ExpenseListResponse{
		Data: expenses,
		Pagination: models.Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

func (s *DefaultService) UpdateExpense(ctx context.Context, id string, req models.UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ExpenseDate != nil {
		expenseDate, err := parseDay(*req.ExpenseDate)
		if err != nil {
			return nil, err
		}
		expense.ExpenseDate = expenseDate
	}
	if req.DriverID != nil {
		driver, err := s.GetDriver(ctx, *req.DriverID)
		if err != nil {
			return nil, err
		}
		expense.DriverID = driver.ID
		expense.DriverName = driver.DriverName
		expense.DriverNumber = driver.DriverNumber
	}
	if req.ExpenseType != nil {
		expense.ExpenseType = *req.ExpenseType
	}
	if req.Hours != nil {
		expense.Hours = decimal.NullDecimal{Decimal: *req.Hours, Valid: true}
	}
	if req.HourlyRate != nil {
		expense.HourlyRate = *req.HourlyRate
	}
	if req.IsOvertime != nil {
		expense.IsOvertime = *req.IsOvertime
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Currency != nil {
		expense.Currency = *req.Currency
	}
	if req.IsPaid != nil {
		expense.IsPaid = *req.IsPaid
	}
	if req.IsDeleted != nil {
		expense.IsDeleted = *req.IsDeleted
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}

	if err := s.repo.UpdateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("error updating expense: %w", err)
	}

	return expense, nil
}

// SetExpenseDeleted toggles the soft-delete flag
func (s *DefaultService) SetExpenseDeleted(ctx context.Context, id string, deleted bool) (*models.Expense, error) {
	expense, err := s.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	expense.IsDeleted = deleted
	if err := s.repo.UpdateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("error updating expense: %w", err)
	}

	return expense, nil
}

func (s *DefaultService) DeleteExpense(ctx context.Context, id string) error {
	if _, err := s.GetExpense(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("error deleting expense: %w", err)
	}
	return nil
}

func (s *DefaultService) BulkSetExpensesDeleted(ctx context.Context, ids []string, deleted bool) error {
	if err := s.repo.SetExpensesDeleted(ctx, ids, deleted); err != nil {
		return fmt.Errorf("error updating expenses: %w", err)
	}
	return nil
}

func (s *DefaultService) BulkDeleteExpenses(ctx context.Context, ids []string) error {
	if err := s.repo.DeleteExpenses(ctx, ids); err != nil {
		return fmt.Errorf("error deleting expenses: %w", err)
	}
	return nil
}
