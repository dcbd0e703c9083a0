package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// User represents an account that can sign in to the application
type User struct {
	ID          string    `db:"id" json:"id"`
	Email       string    `db:"email" json:"email"`
	FullName    string    `db:"full_name" json:"full_name"`
	Password    string    `db:"password" json:"-"` // Password hash, not returned in JSON
	Role        string    `db:"role" json:"role"`  // "user" or "admin"
	CreatedDate time.Time `db:"created_date" json:"created_date"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`
}

// Driver represents a driver whose hour-based expenses are derived from its rates
type Driver struct {
	ID             string          `db:"id" json:"id"`
	DriverName     string          `db:"driver_name" json:"driver_name"`
	DriverNumber   string          `db:"driver_number" json:"driver_number"`
	Phone          string          `db:"phone" json:"phone"`
	HourlyRate     decimal.Decimal `db:"hourly_rate" json:"hourly_rate"`
	OvertimeRate   decimal.Decimal `db:"overtime_rate" json:"overtime_rate"`
	Currency       string          `db:"currency" json:"currency"`
	AssignedMonths pq.StringArray  `db:"assigned_months" json:"assigned_months"` // "YYYY-MM" tokens
	CreatedDate    time.Time       `db:"created_date" json:"created_date"`
	CreatedBy      string          `db:"created_by" json:"created_by"`
}

// Expense represents a single expense entry. Hours is nullable: only expenses
// with recorded hours participate in the rate cascade. DriverName and
// DriverNumber are denormalized snapshots taken at creation time.
type Expense struct {
	ID           string              `db:"id" json:"id"`
	ExpenseDate  time.Time           `db:"expense_date" json:"expense_date"`
	DriverID     string              `db:"driver_id" json:"driver_id"`
	DriverName   string              `db:"driver_name" json:"driver_name"`
	DriverNumber string              `db:"driver_number" json:"driver_number"`
	ExpenseType  string              `db:"expense_type" json:"expense_type"`
	Hours        decimal.NullDecimal `db:"hours" json:"hours"`
	HourlyRate   decimal.Decimal     `db:"hourly_rate" json:"hourly_rate"`
	IsOvertime   bool                `db:"is_overtime" json:"is_overtime"`
	Amount       decimal.Decimal     `db:"amount" json:"amount"`
	Currency     string              `db:"currency" json:"currency"`
	IsPaid       bool                `db:"is_paid" json:"is_paid"`
	IsDeleted    bool                `db:"is_deleted" json:"is_deleted"`
	Description  string              `db:"description" json:"description"`
	CreatedDate  time.Time           `db:"created_date" json:"created_date"`
	CreatedBy    string              `db:"created_by" json:"created_by"`
}

// Employee represents a salaried employee
type Employee struct {
	ID             string          `db:"id" json:"id"`
	EmployeeName   string          `db:"employee_name" json:"employee_name"`
	EmployeeNumber string          `db:"employee_number" json:"employee_number"`
	Salary         decimal.Decimal `db:"salary" json:"salary"`
	Currency       string          `db:"currency" json:"currency"`
	PaymentDate    time.Time       `db:"payment_date" json:"payment_date"`
	IsPaid         bool            `db:"is_paid" json:"is_paid"`
	AssignedMonths pq.StringArray  `db:"assigned_months" json:"assigned_months"`
	CreatedDate    time.Time       `db:"created_date" json:"created_date"`
	CreatedBy      string          `db:"created_by" json:"created_by"`
}

// ExpenseType is a label/color pair used to categorize expenses
type ExpenseType struct {
	ID          string    `db:"id" json:"id"`
	TypeName    string    `db:"type_name" json:"type_name"`
	Color       string    `db:"color" json:"color"`
	CreatedDate time.Time `db:"created_date" json:"created_date"`
	CreatedBy   string    `db:"created_by" json:"created_by"`
}

// AppSetting is a key/value configuration record, unique per setting key
type AppSetting struct {
	ID              string    `db:"id" json:"id"`
	SettingKey      string    `db:"setting_key" json:"setting_key"`
	SettingValue    string    `db:"setting_value" json:"setting_value"`
	SettingCategory string    `db:"setting_category" json:"setting_category"`
	Description     string    `db:"description" json:"description"`
	CreatedDate     time.Time `db:"created_date" json:"created_date"`
	CreatedBy       string    `db:"created_by" json:"created_by"`
}

// PrintTemplate is an HTML/CSS template used when printing reports.
// At most one template per template type is marked as the default.
type PrintTemplate struct {
	ID           string    `db:"id" json:"id"`
	TemplateName string    `db:"template_name" json:"template_name"`
	TemplateType string    `db:"template_type" json:"template_type"`
	HTMLContent  string    `db:"html_content" json:"html_content"`
	CSSContent   string    `db:"css_content" json:"css_content"`
	IsDefault    bool      `db:"is_default" json:"is_default"`
	Description  string    `db:"description" json:"description"`
	CreatedDate  time.Time `db:"created_date" json:"created_date"`
	CreatedBy    string    `db:"created_by" json:"created_by"`
}
