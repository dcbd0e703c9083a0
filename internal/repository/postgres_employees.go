package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/4utre/expense-tracker-app/internal/models"
)

// Employee repository methods

func (r *PostgresRepository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (id, employee_name, employee_number, salary, currency,
			payment_date, is_paid, assigned_months, created_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	if employee.CreatedDate.IsZero() {
		employee.CreatedDate = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		employee.ID, employee.EmployeeName, employee.EmployeeNumber, employee.Salary,
		employee.Currency, employee.PaymentDate, employee.IsPaid,
		employee.AssignedMonths, employee.CreatedDate, employee.CreatedBy)

	return err
}

func (r *PostgresRepository) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	query := `SELECT * FROM employees WHERE id = $1`

	var employee models.Employee
	err := r.db.GetContext(ctx, &employee, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Employee not found
		}
		return nil, err
	}

	return &employee, nil
}

func (r *PostgresRepository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	query := `SELECT * FROM employees ORDER BY created_date DESC`

	employees := []models.Employee{}
	if err := r.db.SelectContext(ctx, &employees, query); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *PostgresRepository) UpdateEmployee(ctx context.Context, employee *models.Employee) error {
	query := `
		UPDATE employees
		SET employee_name = $1, employee_number = $2, salary = $3, currency = $4,
			payment_date = $5, is_paid = $6, assigned_months = $7
		WHERE id = $8
	`

	_, err := r.db.ExecContext(ctx, query,
		employee.EmployeeName, employee.EmployeeNumber, employee.Salary,
		employee.Currency, employee.PaymentDate, employee.IsPaid,
		employee.AssignedMonths, employee.ID)

	return err
}

func (r *PostgresRepository) DeleteEmployee(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	return err
}
