// Package backup assembles and serializes full-database exports. A backup
// document is a transient aggregate of all six entity collections; it is
// built on demand and never persisted.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/4utre/expense-tracker-app/internal/models"
)

// Supported output formats
const (
	FormatJSON = "json"
	FormatSQL  = "sql"
	FormatXLSX = "xlsx"
)

// Document aggregates every exported collection plus export metadata.
// Month holds the "YYYY-MM" filter token, or "all" when no filter was applied.
type Document struct {
	Drivers        []models.Driver        `json:"drivers"`
	Expenses       []models.Expense       `json:"expenses"`
	Employees      []models.Employee      `json:"employees"`
	ExpenseTypes   []models.ExpenseType   `json:"expense_types"`
	AppSettings    []models.AppSetting    `json:"app_settings"`
	PrintTemplates []models.PrintTemplate `json:"print_templates"`
	ExportedAt     string                 `json:"exported_at"`
	Month          string                 `json:"month"`
}

// MonthRange returns the inclusive first and last calendar day of a "YYYY-MM"
// month token. Month lengths and leap years follow the calendar.
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month token %q: %w", month, err)
	}
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// ValidFormat reports whether format names a supported backup output
func ValidFormat(format string) bool {
	switch format {
	case FormatJSON, FormatSQL, FormatXLSX:
		return true
	}
	return false
}

// Extension returns the file extension for a format
func Extension(format string) string {
	return format
}

// ContentType returns the MIME type served for a format
func ContentType(format string) string {
	switch format {
	case FormatSQL:
		return "application/sql"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// Filename builds the download name, e.g. "backup_1714586096123.json"
func Filename(format string, now time.Time) string {
	return fmt.Sprintf("backup_%d.%s", now.UnixMilli(), Extension(format))
}

// EncodeJSON renders the document as pretty-printed JSON
func EncodeJSON(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Encode serializes the document in the requested format
func Encode(doc *Document, format string) ([]byte, error) {
	switch format {
	case FormatSQL:
		return EncodeSQL(doc, time.Now()), nil
	case FormatXLSX:
		return EncodeXLSX(doc)
	default:
		return EncodeJSON(doc)
	}
}
