package backup

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4utre/expense-tracker-app/internal/models"
)

func TestMonthRange(t *testing.T) {
	from, to, err := MonthRange("2024-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), from)
	// 2024 is a leap year
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), to)

	from, to, err = MonthRange("2023-12")
	require.NoError(t, err)
	assert.Equal(t, 1, from.Day())
	assert.Equal(t, 31, to.Day())
}

func TestMonthRangeInvalid(t *testing.T) {
	for _, token := range []string{"", "2024", "2024-13", "02-2024", "not-a-month"} {
		_, _, err := MonthRange(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestValidFormat(t *testing.T) {
	assert.True(t, ValidFormat(FormatJSON))
	assert.True(t, ValidFormat(FormatSQL))
	assert.True(t, ValidFormat(FormatXLSX))
	assert.False(t, ValidFormat("csv"))
	assert.False(t, ValidFormat(""))
}

func TestFilename(t *testing.T) {
	now := time.UnixMilli(1714586096123)
	assert.Equal(t, "backup_1714586096123.json", Filename(FormatJSON, now))
	assert.Equal(t, "backup_1714586096123.sql", Filename(FormatSQL, now))
}

func sampleDocument() *Document {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &Document{
		Drivers: []models.Driver{{
			ID:             "d1",
			DriverName:     "Ali's Transport",
			DriverNumber:   "DRV-001",
			HourlyRate:     decimal.NewFromInt(10),
			OvertimeRate:   decimal.NewFromInt(15),
			Currency:       "IQD",
			AssignedMonths: []string{"2024-04", "2024-05"},
			CreatedDate:    created,
			CreatedBy:      "admin@example.com",
		}},
		Expenses: []models.Expense{{
			ID:          "e1",
			ExpenseDate: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			DriverID:    "d1",
			DriverName:  "Ali's Transport",
			ExpenseType: "fuel",
			Hours:       decimal.NullDecimal{},
			HourlyRate:  decimal.NewFromInt(10),
			Amount:      decimal.NewFromFloat(42.50),
			Currency:    "IQD",
			IsPaid:      true,
			CreatedDate: created,
		}},
		ExpenseTypes: []models.ExpenseType{{
			ID:          "t1",
			TypeName:    "fuel",
			Color:       "blue",
			CreatedDate: created,
		}},
		ExportedAt: created.Format(time.RFC3339),
		Month:      "2024-05",
	}
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	doc := sampleDocument()

	data, err := EncodeJSON(doc)
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2024-05", decoded.Month)
	require.Len(t, decoded.Drivers, 1)
	assert.Equal(t, "Ali's Transport", decoded.Drivers[0].DriverName)
	require.Len(t, decoded.Expenses, 1)
	assert.True(t, decoded.Expenses[0].Amount.Equal(decimal.NewFromFloat(42.50)))
}

func TestEncodeSQL(t *testing.T) {
	doc := sampleDocument()
	now := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)

	out := string(EncodeSQL(doc, now))

	assert.Contains(t, out, "-- Expense Tracking System Database Backup")
	assert.Contains(t, out, "-- Generated: 2024-05-03 12:00:00")
	assert.Contains(t, out, "-- Month: 2024-05")

	// Text is quoted with embedded quotes doubled
	assert.Contains(t, out, "'Ali''s Transport'")
	// Arrays are quoted brace lists
	assert.Contains(t, out, "'{2024-04,2024-05}'")
	// Booleans are bare keywords, numbers unquoted
	assert.Contains(t, out, "TRUE")
	assert.Contains(t, out, "42.5")
	// Null hours
	assert.Contains(t, out, "NULL")
	// Timestamps are quoted ISO-8601
	assert.Contains(t, out, "'2024-05-01T10:00:00Z'")

	// Populated tables get header comments, empty ones emit nothing
	assert.Contains(t, out, "-- drivers Table")
	assert.Contains(t, out, "-- expenses Table")
	assert.Contains(t, out, "-- expense_types Table")
	assert.NotContains(t, out, "-- employees Table")
	assert.NotContains(t, out, "-- app_settings Table")
	assert.NotContains(t, out, "-- print_templates Table")
	assert.NotContains(t, out, "INSERT INTO employees")
}

func TestEncodeSQLStatementShape(t *testing.T) {
	doc := &Document{
		ExpenseTypes: []models.ExpenseType{{
			ID:          "t1",
			TypeName:    "fuel",
			Color:       "blue",
			CreatedDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			CreatedBy:   "admin@example.com",
		}},
		Month: "all",
	}

	out := string(EncodeSQL(doc, time.Now()))
	assert.Contains(t, out,
		"INSERT INTO expense_types (id, type_name, color, created_date, created_by) "+
			"VALUES ('t1', 'fuel', 'blue', '2024-05-01T00:00:00Z', 'admin@example.com');")
}

func TestEncodeXLSX(t *testing.T) {
	doc := sampleDocument()

	data, err := EncodeXLSX(doc)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// xlsx files are zip archives
	assert.True(t, strings.HasPrefix(string(data[:2]), "PK"))
}

func TestEncodeDispatch(t *testing.T) {
	doc := sampleDocument()

	jsonData, err := Encode(doc, FormatJSON)
	require.NoError(t, err)
	assert.True(t, json.Valid(jsonData))

	sqlData, err := Encode(doc, FormatSQL)
	require.NoError(t, err)
	assert.Contains(t, string(sqlData), "INSERT INTO drivers")
}
