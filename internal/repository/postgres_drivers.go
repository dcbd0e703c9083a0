package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/4utre/expense-tracker-app/internal/models"
)

// Driver repository methods

func (r *PostgresRepository) CreateDriver(ctx context.Context, driver *models.Driver) error {
	query := `
		INSERT INTO drivers (id, driver_name, driver_number, phone, hourly_rate,
			overtime_rate, currency, assigned_months, created_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if driver.ID == "" {
		driver.ID = uuid.New().String()
	}
	if driver.CreatedDate.IsZero() {
		driver.CreatedDate = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		driver.ID, driver.DriverName, driver.DriverNumber, driver.Phone,
		driver.HourlyRate, driver.OvertimeRate, driver.Currency,
		driver.AssignedMonths, driver.CreatedDate, driver.CreatedBy)

	return err
}

func (r *PostgresRepository) GetDriver(ctx context.Context, id string) (*models.Driver, error) {
	query := `SELECT * FROM drivers WHERE id = $1`

	var driver models.Driver
	err := r.db.GetContext(ctx, &driver, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Driver not found
		}
		return nil, err
	}

	return &driver, nil
}

func (r *PostgresRepository) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	query := `SELECT * FROM drivers ORDER BY created_date DESC`

	drivers := []models.Driver{}
	if err := r.db.SelectContext(ctx, &drivers, query); err != nil {
		return nil, err
	}

	return drivers, nil
}

func (r *PostgresRepository) UpdateDriver(ctx context.Context, driver *models.Driver) error {
	query := `
		UPDATE drivers
		SET driver_name = $1, driver_number = $2, phone = $3, hourly_rate = $4,
			overtime_rate = $5, currency = $6, assigned_months = $7
		WHERE id = $8
	`

	_, err := r.db.ExecContext(ctx, query,
		driver.DriverName, driver.DriverNumber, driver.Phone, driver.HourlyRate,
		driver.OvertimeRate, driver.Currency, driver.AssignedMonths, driver.ID)

	return err
}

func (r *PostgresRepository) DeleteDriver(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	return err
}
