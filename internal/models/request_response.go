package models

import "github.com/shopspring/decimal"

// Request models. Field names follow the canonical snake_case schema; legacy
// camelCase keys are rewritten once at the API boundary (see api.LegacyFieldAliases).

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateDriverRequest struct {
	DriverName     string           `json:"driver_name" binding:"required"`
	DriverNumber   string           `json:"driver_number" binding:"required"`
	Phone          string           `json:"phone"`
	HourlyRate     decimal.Decimal  `json:"hourly_rate"`
	OvertimeRate   decimal.Decimal  `json:"overtime_rate"`
	Currency       string           `json:"currency"`
	AssignedMonths []string         `json:"assigned_months"`
}

// UpdateDriverRequest applies a partial update: nil fields are left untouched.
type UpdateDriverRequest struct {
	DriverName     *string          `json:"driver_name"`
	DriverNumber   *string          `json:"driver_number"`
	Phone          *string          `json:"phone"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate"`
	OvertimeRate   *decimal.Decimal `json:"overtime_rate"`
	Currency       *string          `json:"currency"`
	AssignedMonths *[]string        `json:"assigned_months"`
}

// BulkRateUpdateRequest drives the rate cascade. Rate fields are optional;
// the expense recomputation runs only when an hourly rate is supplied.
type BulkRateUpdateRequest struct {
	DriverIDs    []string         `json:"driver_ids" binding:"required"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate"`
	OvertimeRate *decimal.Decimal `json:"overtime_rate"`
}

type CreateExpenseRequest struct {
	ExpenseDate string           `json:"expense_date" binding:"required"` // "YYYY-MM-DD"
	DriverID    string           `json:"driver_id" binding:"required"`
	ExpenseType string           `json:"expense_type" binding:"required"`
	Hours       *decimal.Decimal `json:"hours"`
	HourlyRate  decimal.Decimal  `json:"hourly_rate"`
	IsOvertime  bool             `json:"is_overtime"`
	Amount      decimal.Decimal  `json:"amount" binding:"required"`
	Currency    string           `json:"currency"`
	IsPaid      bool             `json:"is_paid"`
	Description string           `json:"description"`
}

type UpdateExpenseRequest struct {
	ExpenseDate *string          `json:"expense_date"`
	DriverID    *string          `json:"driver_id"`
	ExpenseType *string          `json:"expense_type"`
	Hours       *decimal.Decimal `json:"hours"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate"`
	IsOvertime  *bool            `json:"is_overtime"`
	Amount      *decimal.Decimal `json:"amount"`
	Currency    *string          `json:"currency"`
	IsPaid      *bool            `json:"is_paid"`
	IsDeleted   *bool            `json:"is_deleted"`
	Description *string          `json:"description"`
}

type BulkExpenseIDsRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

type CreateEmployeeRequest struct {
	EmployeeName   string          `json:"employee_name" binding:"required"`
	EmployeeNumber string          `json:"employee_number" binding:"required"`
	Salary         decimal.Decimal `json:"salary" binding:"required"`
	Currency       string          `json:"currency"`
	PaymentDate    string          `json:"payment_date" binding:"required"` // "YYYY-MM-DD"
	IsPaid         bool            `json:"is_paid"`
	AssignedMonths []string        `json:"assigned_months"`
}

type UpdateEmployeeRequest struct {
	EmployeeName   *string          `json:"employee_name"`
	EmployeeNumber *string          `json:"employee_number"`
	Salary         *decimal.Decimal `json:"salary"`
	Currency       *string          `json:"currency"`
	PaymentDate    *string          `json:"payment_date"`
	IsPaid         *bool            `json:"is_paid"`
	AssignedMonths *[]string        `json:"assigned_months"`
}

type CreateExpenseTypeRequest struct {
	TypeName string `json:"type_name" binding:"required"`
	Color    string `json:"color"`
}

type UpdateExpenseTypeRequest struct {
	TypeName *string `json:"type_name"`
	Color    *string `json:"color"`
}

type UpsertSettingRequest struct {
	SettingKey      string `json:"setting_key" binding:"required"`
	SettingValue    string `json:"setting_value" binding:"required"`
	SettingCategory string `json:"setting_category"`
	Description     string `json:"description"`
}

type CreatePrintTemplateRequest struct {
	TemplateName string `json:"template_name" binding:"required"`
	TemplateType string `json:"template_type" binding:"required"`
	HTMLContent  string `json:"html_content" binding:"required"`
	CSSContent   string `json:"css_content"`
	IsDefault    bool   `json:"is_default"`
	Description  string `json:"description"`
}

type UpdatePrintTemplateRequest struct {
	TemplateName *string `json:"template_name"`
	TemplateType *string `json:"template_type"`
	HTMLContent  *string `json:"html_content"`
	CSSContent   *string `json:"css_content"`
	IsDefault    *bool   `json:"is_default"`
	Description  *string `json:"description"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

type EmailBackupRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Format string `json:"format"`
	Month  string `json:"month"`
}

// Response models

type AuthResponse struct {
	Status    string `json:"status"`
	UserID    string `json:"user_id,omitempty"`
	Email     string `json:"email,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	Role      string `json:"role,omitempty"`
	Token     string `json:"token,omitempty"`
	ExpiresIn int    `json:"expires_in,omitempty"`
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type ExpenseListResponse struct {
	Data       []Expense  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type UploadResponse struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
}
