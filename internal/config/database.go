package config

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// SetupDatabase initializes the database connection
func SetupDatabase(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// createTables creates the necessary tables in the database
func createTables(db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(36) PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(10) NOT NULL DEFAULT 'user',
			created_date TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS drivers (
			id VARCHAR(36) PRIMARY KEY,
			driver_name VARCHAR(255) NOT NULL,
			driver_number VARCHAR(50) NOT NULL,
			phone VARCHAR(50) NOT NULL DEFAULT '',
			hourly_rate NUMERIC(14,2) NOT NULL DEFAULT 0,
			overtime_rate NUMERIC(14,2) NOT NULL DEFAULT 0,
			currency VARCHAR(3) NOT NULL DEFAULT 'IQD',
			assigned_months TEXT[] NOT NULL DEFAULT '{}',
			created_date TIMESTAMP NOT NULL,
			created_by VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id VARCHAR(36) PRIMARY KEY,
			expense_date TIMESTAMP NOT NULL,
			driver_id VARCHAR(36) NOT NULL REFERENCES drivers(id) ON DELETE CASCADE,
			driver_name VARCHAR(255) NOT NULL,
			driver_number VARCHAR(50) NOT NULL,
			expense_type VARCHAR(100) NOT NULL,
			hours NUMERIC(10,2),
			hourly_rate NUMERIC(14,2) NOT NULL DEFAULT 0,
			is_overtime BOOLEAN NOT NULL DEFAULT FALSE,
			amount NUMERIC(14,2) NOT NULL,
			currency VARCHAR(3) NOT NULL DEFAULT 'IQD',
			is_paid BOOLEAN NOT NULL DEFAULT FALSE,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			description TEXT NOT NULL DEFAULT '',
			created_date TIMESTAMP NOT NULL,
			created_by VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id VARCHAR(36) PRIMARY KEY,
			employee_name VARCHAR(255) NOT NULL,
			employee_number VARCHAR(50) NOT NULL,
			salary NUMERIC(14,2) NOT NULL,
			currency VARCHAR(3) NOT NULL DEFAULT 'IQD',
			payment_date TIMESTAMP NOT NULL,
			is_paid BOOLEAN NOT NULL DEFAULT FALSE,
			assigned_months TEXT[] NOT NULL DEFAULT '{}',
			created_date TIMESTAMP NOT NULL,
			created_by VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS expense_types (
			id VARCHAR(36) PRIMARY KEY,
			type_name VARCHAR(100) NOT NULL,
			color VARCHAR(30) NOT NULL DEFAULT 'blue',
			created_date TIMESTAMP NOT NULL,
			created_by VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS app_settings (
			id VARCHAR(36) PRIMARY KEY,
			setting_key VARCHAR(100) UNIQUE NOT NULL,
			setting_value TEXT NOT NULL,
			setting_category VARCHAR(50) NOT NULL DEFAULT 'general',
			description TEXT NOT NULL DEFAULT '',
			created_date TIMESTAMP NOT NULL,
			created_by VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS print_templates (
			id VARCHAR(36) PRIMARY KEY,
			template_name VARCHAR(255) NOT NULL,
			template_type VARCHAR(50) NOT NULL,
			html_content TEXT NOT NULL,
			css_content TEXT NOT NULL DEFAULT '',
			is_default BOOLEAN NOT NULL DEFAULT FALSE,
			description TEXT NOT NULL DEFAULT '',
			created_date TIMESTAMP NOT NULL,
			created_by VARCHAR(255) NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_expenses_driver_id ON expenses(driver_id)",
		"CREATE INDEX IF NOT EXISTS idx_expenses_expense_date ON expenses(expense_date)",
		"CREATE INDEX IF NOT EXISTS idx_expenses_driver_hours ON expenses(driver_id) WHERE hours IS NOT NULL",
	}

	for _, idx := range indexes {
		// Indexes are not critical, keep going on failure
		_, _ = db.Exec(idx)
	}

	return nil
}
