package backup

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// EncodeXLSX renders the document as a workbook with one sheet per collection.
// Every sheet gets a header row even when the collection is empty.
func EncodeXLSX(doc *Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name    string
		columns []string
		rows    [][]interface{}
	}{
		{"drivers", driverColumns, driverRows(doc.Drivers)},
		{"expenses", expenseColumns, expenseRows(doc.Expenses)},
		{"employees", employeeColumns, employeeRows(doc.Employees)},
		{"expense_types", expenseTypeColumns, expenseTypeRows(doc.ExpenseTypes)},
		{"app_settings", appSettingColumns, appSettingRows(doc.AppSettings)},
		{"print_templates", printTemplateColumns, printTemplateRows(doc.PrintTemplates)},
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return nil, err
			}
		}

		header := make([]interface{}, len(sheet.columns))
		for c, col := range sheet.columns {
			header[c] = col
		}
		if err := f.SetSheetRow(sheet.name, "A1", &header); err != nil {
			return nil, err
		}

		for r, row := range sheet.rows {
			cells := make([]interface{}, len(row))
			for c, v := range row {
				cells[c] = cellValue(v)
			}
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(sheet.name, cell, &cells); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// cellValue flattens domain values into types excelize can write directly
func cellValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return ""
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case []string:
		return strings.Join(val, ",")
	case decimal.Decimal:
		return val.String()
	case decimal.NullDecimal:
		if !val.Valid {
			return ""
		}
		return val.Decimal.String()
	case string, bool, int, int64, float64:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
