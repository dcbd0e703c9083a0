package backup

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/4utre/expense-tracker-app/internal/models"
)

// Column order matches the table schema; value slices must line up with these.
var (
	driverColumns = []string{"id", "driver_name", "driver_number", "phone", "hourly_rate",
		"overtime_rate", "currency", "assigned_months", "created_date", "created_by"}
	expenseColumns = []string{"id", "expense_date", "driver_id", "driver_name", "driver_number",
		"expense_type", "hours", "hourly_rate", "is_overtime", "amount", "currency",
		"is_paid", "is_deleted", "description", "created_date", "created_by"}
	employeeColumns = []string{"id", "employee_name", "employee_number", "salary", "currency",
		"payment_date", "is_paid", "assigned_months", "created_date", "created_by"}
	expenseTypeColumns = []string{"id", "type_name", "color", "created_date", "created_by"}
	appSettingColumns  = []string{"id", "setting_key", "setting_value", "setting_category",
		"description", "created_date", "created_by"}
	printTemplateColumns = []string{"id", "template_name", "template_type", "html_content",
		"css_content", "is_default", "description", "created_date", "created_by"}
)

// EncodeSQL renders the document as a sequence of INSERT statements, one per
// record, in fixed collection order. Collections with no records emit nothing,
// not even their table header comment.
func EncodeSQL(doc *Document, now time.Time) []byte {
	var buf bytes.Buffer

	buf.WriteString("-- Expense Tracking System Database Backup\n")
	fmt.Fprintf(&buf, "-- Generated: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&buf, "-- Month: %s\n\n", doc.Month)

	writeInserts(&buf, "drivers", driverColumns, driverRows(doc.Drivers))
	writeInserts(&buf, "expenses", expenseColumns, expenseRows(doc.Expenses))
	writeInserts(&buf, "employees", employeeColumns, employeeRows(doc.Employees))
	writeInserts(&buf, "expense_types", expenseTypeColumns, expenseTypeRows(doc.ExpenseTypes))
	writeInserts(&buf, "app_settings", appSettingColumns, appSettingRows(doc.AppSettings))
	writeInserts(&buf, "print_templates", printTemplateColumns, printTemplateRows(doc.PrintTemplates))

	return buf.Bytes()
}

func writeInserts(buf *bytes.Buffer, table string, columns []string, rows [][]interface{}) {
	if len(rows) == 0 {
		return
	}

	fmt.Fprintf(buf, "-- %s Table\n", table)
	for _, row := range rows {
		values := make([]string, len(row))
		for i, v := range row {
			values[i] = sqlValue(v)
		}
		fmt.Fprintf(buf, "INSERT INTO %s (%s) VALUES (%s);\n",
			table, strings.Join(columns, ", "), strings.Join(values, ", "))
	}
	buf.WriteString("\n")
}

// sqlValue encodes a single value. Rules, in priority order: nil -> NULL,
// text -> single-quoted with quotes doubled, boolean -> TRUE/FALSE,
// timestamps -> quoted ISO-8601, arrays -> quoted '{comma,joined}',
// numbers -> plain unquoted text.
func sqlValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return quote(val)
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case time.Time:
		return quote(val.UTC().Format(time.RFC3339))
	case []string:
		return quote("{" + strings.Join(val, ",") + "}")
	case decimal.Decimal:
		return val.String()
	case decimal.NullDecimal:
		if !val.Valid {
			return "NULL"
		}
		return val.Decimal.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func driverRows(drivers []models.Driver) [][]interface{} {
	rows := make([][]interface{}, 0, len(drivers))
	for _, d := range drivers {
		rows = append(rows, []interface{}{
			d.ID, d.DriverName, d.DriverNumber, d.Phone, d.HourlyRate,
			d.OvertimeRate, d.Currency, []string(d.AssignedMonths), d.CreatedDate, d.CreatedBy,
		})
	}
	return rows
}

func expenseRows(expenses []models.Expense) [][]interface{} {
	rows := make([][]interface{}, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []interface{}{
			e.ID, e.ExpenseDate, e.DriverID, e.DriverName, e.DriverNumber,
			e.ExpenseType, e.Hours, e.HourlyRate, e.IsOvertime, e.Amount,
			e.Currency, e.IsPaid, e.IsDeleted, e.Description, e.CreatedDate, e.CreatedBy,
		})
	}
	return rows
}

func employeeRows(employees []models.Employee) [][]interface{} {
	rows := make([][]interface{}, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []interface{}{
			e.ID, e.EmployeeName, e.EmployeeNumber, e.Salary, e.Currency,
			e.PaymentDate, e.IsPaid, []string(e.AssignedMonths), e.CreatedDate, e.CreatedBy,
		})
	}
	return rows
}

func expenseTypeRows(types []models.ExpenseType) [][]interface{} {
	rows := make([][]interface{}, 0, len(types))
	for _, t := range types {
		rows = append(rows, []interface{}{t.ID, t.TypeName, t.Color, t.CreatedDate, t.CreatedBy})
	}
	return rows
}

func appSettingRows(settings []models.AppSetting) [][]interface{} {
	rows := make([][]interface{}, 0, len(settings))
	for _, s := range settings {
		rows = append(rows, []interface{}{
			s.ID, s.SettingKey, s.SettingValue, s.SettingCategory,
			s.Description, s.CreatedDate, s.CreatedBy,
		})
	}
	return rows
}

func printTemplateRows(templates []models.PrintTemplate) [][]interface{} {
	rows := make([][]interface{}, 0, len(templates))
	for _, t := range templates {
		rows = append(rows, []interface{}{
			t.ID, t.TemplateName, t.TemplateType, t.HTMLContent, t.CSSContent,
			t.IsDefault, t.Description, t.CreatedDate, t.CreatedBy,
		})
	}
	return rows
}
