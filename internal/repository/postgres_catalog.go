package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/4utre/expense-tracker-app/internal/models"
)

// Expense type repository methods

func (r *PostgresRepository) CreateExpenseType(ctx context.Context, et *models.ExpenseType) error {
	query := `
		INSERT INTO expense_types (id, type_name, color, created_date, created_by)
		VALUES ($1, $2, $3, $4, $5)
	`

	if et.ID == "" {
		et.ID = uuid.New().String()
	}
	if et.CreatedDate.IsZero() {
		et.CreatedDate = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		et.ID, et.TypeName, et.Color, et.CreatedDate, et.CreatedBy)

	return err
}

func (r *PostgresRepository) GetExpenseType(ctx context.Context, id string) (*models.ExpenseType, error) {
	var et models.ExpenseType
	err := r.db.GetContext(ctx, &et, `SELECT * FROM expense_types WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &et, nil
}

func (r *PostgresRepository) ListExpenseTypes(ctx context.Context) ([]models.ExpenseType, error) {
	types := []models.ExpenseType{}
	err := r.db.SelectContext(ctx, &types, `SELECT * FROM expense_types ORDER BY created_date DESC`)
	if err != nil {
		return nil, err
	}

	return types, nil
}

func (r *PostgresRepository) UpdateExpenseType(ctx context.Context, et *models.ExpenseType) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE expense_types SET type_name = $1, color = $2 WHERE id = $3`,
		et.TypeName, et.Color, et.ID)
	return err
}

func (r *PostgresRepository) DeleteExpenseType(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM expense_types WHERE id = $1`, id)
	return err
}

// App setting repository methods

func (r *PostgresRepository) ListSettings(ctx context.Context) ([]models.AppSetting, error) {
	settings := []models.AppSetting{}
	err := r.db.SelectContext(ctx, &settings, `SELECT * FROM app_settings ORDER BY setting_key`)
	if err != nil {
		return nil, err
	}

	return settings, nil
}

func (r *PostgresRepository) GetSettingByKey(ctx context.Context, key string) (*models.AppSetting, error) {
	var setting models.AppSetting
	err := r.db.GetContext(ctx, &setting, `SELECT * FROM app_settings WHERE setting_key = $1`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &setting, nil
}

// UpsertSetting inserts the setting or, when the key already exists, updates
// its value, category and description in place.
func (r *PostgresRepository) UpsertSetting(ctx context.Context, setting *models.AppSetting) error {
	query := `
		INSERT INTO app_settings (id, setting_key, setting_value, setting_category,
			description, created_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (setting_key) DO UPDATE
		SET setting_value = EXCLUDED.setting_value,
			setting_category = EXCLUDED.setting_category,
			description = EXCLUDED.description
	`

	if setting.ID == "" {
		setting.ID = uuid.New().String()
	}
	if setting.CreatedDate.IsZero() {
		setting.CreatedDate = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		setting.ID, setting.SettingKey, setting.SettingValue, setting.SettingCategory,
		setting.Description, setting.CreatedDate, setting.CreatedBy)

	return err
}

func (r *PostgresRepository) DeleteSettingByKey(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM app_settings WHERE setting_key = $1`, key)
	return err
}

// Print template repository methods

func (r *PostgresRepository) CreateTemplate(ctx context.Context, tpl *models.PrintTemplate) error {
	query := `
		INSERT INTO print_templates (id, template_name, template_type, html_content,
			css_content, is_default, description, created_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if tpl.ID == "" {
		tpl.ID = uuid.New().String()
	}
	if tpl.CreatedDate.IsZero() {
		tpl.CreatedDate = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		tpl.ID, tpl.TemplateName, tpl.TemplateType, tpl.HTMLContent, tpl.CSSContent,
		tpl.IsDefault, tpl.Description, tpl.CreatedDate, tpl.CreatedBy)

	return err
}

func (r *PostgresRepository) GetTemplate(ctx context.Context, id string) (*models.PrintTemplate, error) {
	var tpl models.PrintTemplate
	err := r.db.GetContext(ctx, &tpl, `SELECT * FROM print_templates WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &tpl, nil
}

func (r *PostgresRepository) ListTemplates(ctx context.Context) ([]models.PrintTemplate, error) {
	templates := []models.PrintTemplate{}
	err := r.db.SelectContext(ctx, &templates, `SELECT * FROM print_templates ORDER BY created_date DESC`)
	if err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *PostgresRepository) UpdateTemplate(ctx context.Context, tpl *models.PrintTemplate) error {
	query := `
		UPDATE print_templates
		SET template_name = $1, template_type = $2, html_content = $3, css_content = $4,
			is_default = $5, description = $6
		WHERE id = $7
	`

	_, err := r.db.ExecContext(ctx, query,
		tpl.TemplateName, tpl.TemplateType, tpl.HTMLContent, tpl.CSSContent,
		tpl.IsDefault, tpl.Description, tpl.ID)

	return err
}

func (r *PostgresRepository) DeleteTemplate(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM print_templates WHERE id = $1`, id)
	return err
}

// ClearDefaultTemplates unsets the default flag on every template of the given type
func (r *PostgresRepository) ClearDefaultTemplates(ctx context.Context, templateType string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE print_templates SET is_default = FALSE WHERE template_type = $1 AND is_default = TRUE`,
		templateType)
	return err
}
