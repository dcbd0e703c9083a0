package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/4utre/expense-tracker-app/internal/api/testutils"
	"github.com/4utre/expense-tracker-app/internal/models"
)

func TestSettingsUpsertByKey(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/settings",
		models.UpsertSettingRequest{
			SettingKey:   "company_name",
			SettingValue: "Acme Transport",
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	// Posting the same key again replaces the value
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/settings",
		models.UpsertSettingRequest{
			SettingKey:   "company_name",
			SettingValue: "Acme Logistics",
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/settings/company_name",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var setting models.AppSetting
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &setting))
	assert.Equal(t, "Acme Logistics", setting.SettingValue)

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/settings",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var settings []models.AppSetting
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Len(t, settings, 1)

	// Legacy camelCase keys are accepted too
	body := `{"settingKey": "theme", "settingValue": "dark"}`
	w = testutils.PerformRawRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/settings",
		body,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete by key
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodDelete,
		"/api/settings/theme",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/settings/theme",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPrintTemplateDefaultEndpoint(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	var first, second models.PrintTemplate

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/print-templates",
		models.CreatePrintTemplateRequest{
			TemplateName: "Invoice A",
			TemplateType: "invoice",
			HTMLContent:  "<p>a</p>",
			IsDefault:    true,
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/print-templates",
		models.CreatePrintTemplateRequest{
			TemplateName: "Invoice B",
			TemplateType: "invoice",
			HTMLContent:  "<p>b</p>",
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/print-templates/"+second.ID+"/set-default",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	// The old default is demoted
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/print-templates/"+first.ID,
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var demoted models.PrintTemplate
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &demoted))
	assert.False(t, demoted.IsDefault)
}
