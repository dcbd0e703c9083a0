package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4utre/expense-tracker-app/internal/models"
)

func TestUpsertSettingReplacesByKey(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.UpsertSetting(ctx, "tester@example.com", models.UpsertSettingRequest{
		SettingKey:   "company_name",
		SettingValue: "Acme Transport",
	})
	require.NoError(t, err)
	assert.Equal(t, "general", first.SettingCategory)

	second, err := svc.UpsertSetting(ctx, "tester@example.com", models.UpsertSettingRequest{
		SettingKey:      "company_name",
		SettingValue:    "Acme Logistics",
		SettingCategory: "branding",
	})
	require.NoError(t, err)

	// Same key updates in place rather than creating a second record
	assert.Equal(t, first.ID, second.ID)

	settings, err := svc.ListSettings(ctx)
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.Equal(t, "Acme Logistics", settings[0].SettingValue)
	assert.Equal(t, "branding", settings[0].SettingCategory)
}

func TestDeleteSettingByKey(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpsertSetting(ctx, "tester@example.com", models.UpsertSettingRequest{
		SettingKey:   "company_name",
		SettingValue: "Acme",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSetting(ctx, "company_name"))

	err = svc.DeleteSetting(ctx, "company_name")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetDefaultTemplateIsExclusivePerType(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	invoiceA, err := svc.CreateTemplate(ctx, "tester@example.com", models.CreatePrintTemplateRequest{
		TemplateName: "Invoice A",
		TemplateType: "invoice",
		HTMLContent:  "<p>a</p>",
		IsDefault:    true,
	})
	require.NoError(t, err)

	invoiceB, err := svc.CreateTemplate(ctx, "tester@example.com", models.CreatePrintTemplateRequest{
		TemplateName: "Invoice B",
		TemplateType: "invoice",
		HTMLContent:  "<p>b</p>",
	})
	require.NoError(t, err)

	report, err := svc.CreateTemplate(ctx, "tester@example.com", models.CreatePrintTemplateRequest{
		TemplateName: "Report",
		TemplateType: "report",
		HTMLContent:  "<p>r</p>",
		IsDefault:    true,
	})
	require.NoError(t, err)

	promoted, err := svc.SetDefaultTemplate(ctx, invoiceB.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsDefault)

	demoted, err := svc.GetTemplate(ctx, invoiceA.ID)
	require.NoError(t, err)
	assert.False(t, demoted.IsDefault)

	// Defaults of other types are untouched
	unrelated, err := svc.GetTemplate(ctx, report.ID)
	require.NoError(t, err)
	assert.True(t, unrelated.IsDefault)
}

func TestCreateExpenseTypeDefaultColor(t *testing.T) {
	svc, _, _ := newTestService(t)

	et, err := svc.CreateExpenseType(context.Background(), "tester@example.com", models.CreateExpenseTypeRequest{
		TypeName: "fuel",
	})
	require.NoError(t, err)
	assert.Equal(t, "blue", et.Color)
}

func TestExpenseSoftDeleteAndRestore(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	driver := seedDriver(t, svc, "Ali", "DRV-001", "10")
	expense := seedExpense(t, svc, driver.ID, nil, "30")

	trashed, err := svc.SetExpenseDeleted(ctx, expense.ID, true)
	require.NoError(t, err)
	assert.True(t, trashed.IsDeleted)

	restored, err := svc.SetExpenseDeleted(ctx, expense.ID, false)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
}
