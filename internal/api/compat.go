package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// LegacyFieldAliases maps the v1 camelCase request fields onto the canonical
// snake_case schema. Clients predating the schema change send camelCase keys;
// this table is the only place that knows about them. New fields must not be
// added here — they exist in snake_case only.
var LegacyFieldAliases = map[string]string{
	"fullName":        "full_name",
	"driverName":      "driver_name",
	"driverNumber":    "driver_number",
	"hourlyRate":      "hourly_rate",
	"overtimeRate":    "overtime_rate",
	"assignedMonths":  "assigned_months",
	"driverIds":       "driver_ids",
	"expenseDate":     "expense_date",
	"driverId":        "driver_id",
	"expenseType":     "expense_type",
	"isOvertime":      "is_overtime",
	"isPaid":          "is_paid",
	"isDeleted":       "is_deleted",
	"employeeName":    "employee_name",
	"employeeNumber":  "employee_number",
	"paymentDate":     "payment_date",
	"typeName":        "type_name",
	"settingKey":      "setting_key",
	"settingValue":    "setting_value",
	"settingCategory": "setting_category",
	"templateName":    "template_name",
	"templateType":    "template_type",
	"htmlContent":     "html_content",
	"cssContent":      "css_content",
	"isDefault":       "is_default",
}

// NormalizeLegacyFields rewrites legacy camelCase keys in JSON request bodies
// and query strings to their canonical snake_case form before handlers bind
// them. A canonical key already present in the request always wins.
func NormalizeLegacyFields() gin.HandlerFunc {
	return func(c *gin.Context) {
		normalizeQuery(c)

		if c.Request.Body != nil && strings.Contains(c.ContentType(), "application/json") {
			body, err := io.ReadAll(c.Request.Body)
			if err == nil && len(body) > 0 {
				if rewritten, changed := rewriteBody(body); changed {
					body = rewritten
				}
				c.Request.Body = io.NopCloser(bytes.NewReader(body))
				c.Request.ContentLength = int64(len(body))
			}
		}

		c.Next()
	}
}

func normalizeQuery(c *gin.Context) {
	query := c.Request.URL.Query()
	changed := false
	for legacy, canonical := range LegacyFieldAliases {
		if !query.Has(legacy) {
			continue
		}
		if !query.Has(canonical) {
			query[canonical] = query[legacy]
		}
		query.Del(legacy)
		changed = true
	}
	if changed {
		c.Request.URL.RawQuery = url.Values(query).Encode()
	}
}

// rewriteBody renames top-level legacy keys; nested objects are left alone
// since no request schema nests aliased fields.
func rewriteBody(body []byte) ([]byte, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return body, false
	}

	changed := false
	for legacy, canonical := range LegacyFieldAliases {
		value, ok := fields[legacy]
		if !ok {
			continue
		}
		if _, exists := fields[canonical]; !exists {
			fields[canonical] = value
		}
		delete(fields, legacy)
		changed = true
	}
	if !changed {
		return body, false
	}

	rewritten, err := json.Marshal(fields)
	if err != nil {
		return body, false
	}
	return rewritten, true
}
