package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/4utre/expense-tracker-app/internal/models"
)

// Expense repository methods

func (r *PostgresRepository) CreateExpense(ctx context.Context, expense *models.Expense) error {
	query := `
		INSERT INTO expenses (id, expense_date, driver_id, driver_name, driver_number,
			expense_type, hours, hourly_rate, is_overtime, amount, currency,
			is_paid, is_deleted, description, created_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedDate.IsZero() {
		expense.CreatedDate = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		expense.ID, expense.ExpenseDate, expense.DriverID, expense.DriverName,
		expense.DriverNumber, expense.ExpenseType, expense.Hours, expense.HourlyRate,
		expense.IsOvertime, expense.Amount, expense.Currency, expense.IsPaid,
		expense.IsDeleted, expense.Description, expense.CreatedDate, expense.CreatedBy)

	return err
}

func (r *PostgresRepository) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	query := `SELECT * FROM expenses WHERE id = $1`

	var expense models.Expense
	err := r.db.GetContext(ctx, &expense, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Expense not found
		}
		return nil, err
	}

	return &expense, nil
}

// ListExpenses returns the filtered page of expenses together with the total
// number of rows matching the filter.
func (r *PostgresRepository) ListExpenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, int64, error) {
	conditions := []string{}
	args := []interface{}{}

	add := func(cond string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.From != nil {
		add("expense_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("expense_date <= $%d", *filter.To)
	}
	if filter.DriverID != "" {
		add("driver_id = $%d", filter.DriverID)
	}
	if filter.ExpenseType != "" {
		add("expense_type = $%d", filter.ExpenseType)
	}
	if filter.Currency != "" {
		add("currency = $%d", filter.Currency)
	}
	if filter.IsPaid != nil {
		add("is_paid = $%d", *filter.IsPaid)
	}
	if filter.IsDeleted != nil {
		add("is_deleted = $%d", *filter.IsDeleted)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(driver_name ILIKE $%d OR driver_number ILIKE $%d OR description ILIKE $%d)", n, n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM expenses"+where, args...); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM expenses" + where + " ORDER BY expense_date DESC"
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, (page-1)*filter.Limit)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	expenses := []models.Expense{}
	if err := r.db.SelectContext(ctx, &expenses, query, args...); err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

// ListDriverHourlyExpenses returns all of a driver's expenses with recorded
// hours. These are the only rows the rate cascade touches.
func (r *PostgresRepository) ListDriverHourlyExpenses(ctx context.Context, driverID string) ([]models.Expense, error) {
	query := `SELECT * FROM expenses WHERE driver_id = $1 AND hours IS NOT NULL`

	expenses := []models.Expense{}
	if err := r.db.SelectContext(ctx, &expenses, query, driverID); err != nil {
		return nil, err
	}

	return expenses, nil
}

func (r *PostgresRepository) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	query := `
		UPDATE expenses
		SET expense_date = $1, driver_id = $2, driver_name = $3, driver_number = $4,
			expense_type = $5, hours = $6, hourly_rate = $7, is_overtime = $8,
			amount = $9, currency = $10, is_paid = $11, is_deleted = $12, description = $13
		WHERE id = $14
	`

	_, err := r.db.ExecContext(ctx, query,
		expense.ExpenseDate, expense.DriverID, expense.DriverName, expense.DriverNumber,
		expense.ExpenseType, expense.Hours, expense.HourlyRate, expense.IsOvertime,
		expense.Amount, expense.Currency, expense.IsPaid, expense.IsDeleted,
		expense.Description, expense.ID)

	return err
}

func (r *PostgresRepository) UpdateExpenseAmount(ctx context.Context, id string, amount decimal.Decimal) error {
	_, err := r.db.ExecContext(ctx, `UPDATE expenses SET amount = $1 WHERE id = $2`, amount, id)
	return err
}

func (r *PostgresRepository) DeleteExpense(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	return err
}

func (r *PostgresRepository) SetExpensesDeleted(ctx context.Context, ids []string, deleted bool) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET is_deleted = $1 WHERE id = ANY($2)`, deleted, pq.Array(ids))
	return err
}

func (r *PostgresRepository) DeleteExpenses(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ANY($1)`, pq.Array(ids))
	return err
}
