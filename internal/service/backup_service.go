package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/4utre/expense-tracker-app/internal/backup"
	"github.com/4utre/expense-tracker-app/internal/mailer"
	"github.com/4utre/expense-tracker-app/internal/models"
	"github.com/4utre/expense-tracker-app/internal/repository"
)

// buildBackupDocument fetches all six collections concurrently, restricting
// expenses to the given month when one is supplied.
func (s *DefaultService) buildBackupDocument(ctx context.Context, month string) (*backup.Document, error) {
	var filter repository.ExpenseFilter
	label := "all"
	if month != "" {
		from, to, err := backup.MonthRange(month)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		filter.From, filter.To = &from, &to
		label = month
	}

	doc := &backup.Document{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Month:      label,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doc.Drivers, err = s.repo.ListDrivers(gctx)
		return err
	})
	g.Go(func() error {
		expenses, _, err := s.repo.ListExpenses(gctx, filter)
		doc.Expenses = expenses
		return err
	})
	g.Go(func() error {
		var err error
		doc.Employees, err = s.repo.ListEmployees(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		doc.ExpenseTypes, err = s.repo.ListExpenseTypes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		doc.AppSettings, err = s.repo.ListSettings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		doc.PrintTemplates, err = s.repo.ListTemplates(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error fetching backup data: %w", err)
	}

	return doc, nil
}

func normalizeFormat(format string) (string, error) {
	if format == "" {
		return backup.FormatJSON, nil
	}
	if !backup.ValidFormat(format) {
		return "", fmt.Errorf("%w: unsupported format %q", ErrValidation, format)
	}
	return format, nil
}

// ExportBackup builds and serializes a backup for download
func (s *DefaultService) ExportBackup(ctx context.Context, format, month string) (*BackupFile, error) {
	format, err := normalizeFormat(format)
	if err != nil {
		return nil, err
	}

	doc, err := s.buildBackupDocument(ctx, month)
	if err != nil {
		return nil, err
	}

	data, err := backup.Encode(doc, format)
	if err != nil {
		return nil, fmt.Errorf("error serializing backup: %w", err)
	}

	s.logger.Info("Backup exported",
		zap.String("format", format),
		zap.String("month", doc.Month),
		zap.Int("drivers", len(doc.Drivers)),
		zap.Int("expenses", len(doc.Expenses)))

	return &BackupFile{
		Name:        backup.Filename(format, time.Now()),
		ContentType: backup.ContentType(format),
		Data:        data,
	}, nil
}

// EmailBackup builds a backup and sends it to the recipient as an attachment.
// The recipient address is validated before any data is fetched.
func (s *DefaultService) EmailBackup(ctx context.Context, req models.EmailBackupRequest) error {
	if req.Email == "" {
		return fmt.Errorf("%w: email address required", ErrValidation)
	}

	format, err := normalizeFormat(req.Format)
	if err != nil {
		return err
	}

	doc, err := s.buildBackupDocument(ctx, req.Month)
	if err != nil {
		return err
	}

	data, err := backup.Encode(doc, format)
	if err != nil {
		return fmt.Errorf("error serializing backup: %w", err)
	}

	now := time.Now()
	body := fmt.Sprintf(
		"Your database backup is attached.\n\nTotal Records:\n- Drivers: %d\n- Expenses: %d\n- Employees: %d\n- Expense Types: %d",
		len(doc.Drivers), len(doc.Expenses), len(doc.Employees), len(doc.ExpenseTypes))

	msg := mailer.Message{
		To:      req.Email,
		Subject: fmt.Sprintf("Database Backup - %s", now.Format("2006-01-02")),
		Body:    body,
		Attachments: []mailer.Attachment{
			{Filename: backup.Filename(format, now), Content: data},
		},
	}

	if err := s.mailer.Send(msg); err != nil {
		return fmt.Errorf("error sending backup email: %w", err)
	}

	s.logger.Info("Backup emailed",
		zap.String("format", format),
		zap.String("month", doc.Month))

	return nil
}
