package service

import (
	"context"
	"fmt"

	"github.com/4utre/expense-tracker-app/internal/models"
)

// Expense types

func (s *DefaultService) CreateExpenseType(ctx context.Context, actor string, req models.CreateExpenseTypeRequest) (*models.ExpenseType, error) {
	color := req.Color
	if color == "" {
		color = "blue"
	}

	et := &models.ExpenseType{
		TypeName:  req.TypeName,
		Color:     color,
		CreatedBy: actor,
	}

	if err := s.repo.CreateExpenseType(ctx, et); err != nil {
		return nil, fmt.Errorf("error creating expense type: %w", err)
	}

	return et, nil
}

func (s *DefaultService) GetExpenseType(ctx context.Context, id string) (*models.ExpenseType, error) {
	et, err := s.repo.GetExpenseType(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting expense type: %w", err)
	}
	if et == nil {
		return nil, fmt.Errorf("%w: expense type", ErrNotFound)
	}
	return et, nil
}

func (s *DefaultService) ListExpenseTypes(ctx context.Context) ([]models.ExpenseType, error) {
	types, err := s.repo.ListExpenseTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing expense types: %w", err)
	}
	return types, nil
}

func (s *DefaultService) UpdateExpenseType(ctx context.Context, id string, req models.UpdateExpenseTypeRequest) (*models.ExpenseType, error) {
	et, err := s.GetExpenseType(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TypeName != nil {
		et.TypeName = *req.TypeName
	}
	if req.Color != nil {
		et.Color = *req.Color
	}

	if err := s.repo.UpdateExpenseType(ctx, et); err != nil {
		return nil, fmt.Errorf("error updating expense type: %w", err)
	}

	return et, nil
}

func (s *DefaultService) DeleteExpenseType(ctx context.Context, id string) error {
	if _, err := s.GetExpenseType(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteExpenseType(ctx, id); err != nil {
		return fmt.Errorf("error deleting expense type: %w", err)
	}
	return nil
}

// App settings

func (s *DefaultService) ListSettings(ctx context.Context) ([]models.AppSetting, error) {
	settings, err := s.repo.ListSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing settings: %w", err)
	}
	return settings, nil
}

func (s *DefaultService) GetSetting(ctx context.Context, key string) (*models.AppSetting, error) {
	setting, err := s.repo.GetSettingByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("error getting setting: %w", err)
	}
	if setting == nil {
		return nil, fmt.Errorf("%w: setting", ErrNotFound)
	}
	return setting, nil
}

func (s *DefaultService) UpsertSetting(ctx context.Context, actor string, req models.UpsertSettingRequest) (*models.AppSetting, error) {
	category := req.SettingCategory
	if category == "" {
		category = "general"
	}

	setting := &models.AppSetting{
		SettingKey:      req.SettingKey,
		SettingValue:    req.SettingValue,
		SettingCategory: category,
		Description:     req.Description,
		CreatedBy:       actor,
	}

	if err := s.repo.UpsertSetting(ctx, setting); err != nil {
		return nil, fmt.Errorf("error saving setting: %w", err)
	}

	return setting, nil
}

func (s *DefaultService) DeleteSetting(ctx context.Context, key string) error {
	if _, err := s.GetSetting(ctx, key); err != nil {
		return err
	}
	if err := s.repo.DeleteSettingByKey(ctx, key); err != nil {
		return fmt.Errorf("error deleting setting: %w", err)
	}
	return nil
}

// Print templates

func (s *DefaultService) CreateTemplate(ctx context.Context, actor string, req models.CreatePrintTemplateRequest) (*models.PrintTemplate, error) {
	// A new default displaces any existing default of the same type
	if req.IsDefault {
		if err := s.repo.ClearDefaultTemplates(ctx, req.TemplateType); err != nil {
			return nil, fmt.Errorf("error clearing default templates: %w", err)
		}
	}

	tpl := &models.PrintTemplate{
		TemplateName: req.TemplateName,
		TemplateType: req.TemplateType,
		HTMLContent:  req.HTMLContent,
		CSSContent:   req.CSSContent,
		IsDefault:    req.IsDefault,
		Description:  req.Description,
		CreatedBy:    actor,
	}

	if err := s.repo.CreateTemplate(ctx, tpl); err != nil {
		return nil, fmt.Errorf("error creating template: %w", err)
	}

	return tpl, nil
}

func (s *DefaultService) GetTemplate(ctx context.Context, id string) (*models.PrintTemplate, error) {
	tpl, err := s.repo.GetTemplate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting template: %w", err)
	}
	if tpl == nil {
		return nil, fmt.Errorf("%w: template", ErrNotFound)
	}
	return tpl, nil
}

func (s *DefaultService) ListTemplates(ctx context.Context) ([]models.PrintTemplate, error) {
	templates, err := s.repo.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing templates: %w", err)
	}
	return templates, nil
}

func (s *DefaultService) UpdateTemplate(ctx context.Context, id string, req models.UpdatePrintTemplateRequest) (*models.PrintTemplate, error) {
	tpl, err := s.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TemplateName != nil {
		tpl.TemplateName = *req.TemplateName
	}
	if req.TemplateType != nil {
		tpl.TemplateType = *req.TemplateType
	}
	if req.HTMLContent != nil {
		tpl.HTMLContent = *req.HTMLContent
	}
	if req.CSSContent != nil {
		tpl.CSSContent = *req.CSSContent
	}
	if req.Description != nil {
		tpl.Description = *req.Description
	}
	if req.IsDefault != nil {
		if *req.IsDefault && !tpl.IsDefault {
			if err := s.repo.ClearDefaultTemplates(ctx, tpl.TemplateType); err != nil {
				return nil, fmt.Errorf("error clearing default templates: %w", err)
			}
		}
		tpl.IsDefault = *req.IsDefault
	}

	if err := s.repo.UpdateTemplate(ctx, tpl); err != nil {
		return nil, fmt.Errorf("error updating template: %w", err)
	}

	return tpl, nil
}

// SetDefaultTemplate marks the template as the default for its type,
// unsetting any previous default of the same type.
func (s *DefaultService) SetDefaultTemplate(ctx context.Context, id string) (*models.PrintTemplate, error) {
	tpl, err := s.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ClearDefaultTemplates(ctx, tpl.TemplateType); err != nil {
		return nil, fmt.Errorf("error clearing default templates: %w", err)
	}

	tpl.IsDefault = true
	if err := s.repo.UpdateTemplate(ctx, tpl); err != nil {
		return nil, fmt.Errorf("error updating template: %w", err)
	}

	return tpl, nil
}

func (s *DefaultService) DeleteTemplate(ctx context.Context, id string) error {
	if _, err := s.GetTemplate(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteTemplate(ctx, id); err != nil {
		return fmt.Errorf("error deleting template: %w", err)
	}
	return nil
}
