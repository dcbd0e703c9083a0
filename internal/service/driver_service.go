package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/4utre/expense-tracker-app/internal/models"
)

func (s *DefaultService) CreateDriver(ctx context.Context, actor string, req models.CreateDriverRequest) (*models.Driver, error) {
	driver := &models.Driver{
		DriverName:     req.DriverName,
		DriverNumber:   req.DriverNumber,
		Phone:          req.Phone,
		HourlyRate:     req.HourlyRate,
		OvertimeRate:   req.OvertimeRate,
		Currency:       defaultCurrency(req.Currency),
		AssignedMonths: req.AssignedMonths,
		CreatedBy:      actor,
	}
	if driver.AssignedMonths == nil {
		driver.AssignedMonths = []string{}
	}

	if err := s.repo.CreateDriver(ctx, driver); err != nil {
		return nil, fmt.Errorf("error creating driver: %w", err)
	}

	return driver, nil
}

func (s *DefaultService) GetDriver(ctx context.Context, id string) (*models.Driver, error) {
	driver, err := s.repo.GetDriver(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting driver: %w", err)
	}
	if driver == nil {
		return nil, fmt.Errorf("%w: driver", ErrNotFound)
	}
	return driver, nil
}

func (s *DefaultService) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	drivers, err := s.repo.ListDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing drivers: %w", err)
	}
	return drivers, nil
}

func (s *DefaultService) UpdateDriver(ctx context.Context, id string, req models.UpdateDriverRequest) (*models.Driver, error) {
	driver, err := s.GetDriver(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DriverName != nil {
		driver.DriverName = *req.DriverName
	}
	if req.DriverNumber != nil {
		driver.DriverNumber = *req.DriverNumber
	}
	if req.Phone != nil {
		driver.Phone = *req.Phone
	}
	if req.HourlyRate != nil {
		driver.HourlyRate = *req.HourlyRate
	}
	if req.OvertimeRate != nil {
		driver.OvertimeRate = *req.OvertimeRate
	}
	if req.Currency != nil {
		driver.Currency = *req.Currency
	}
	if req.AssignedMonths != nil {
		driver.AssignedMonths = *req.AssignedMonths
	}

	if err := s.repo.UpdateDriver(ctx, driver); err != nil {
		return nil, fmt.Errorf("error updating driver: %w", err)
	}

	return driver, nil
}

func (s *DefaultService) DeleteDriver(ctx context.Context, id string) error {
	if _, err := s.GetDriver(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteDriver(ctx, id); err != nil {
		return fmt.Errorf("error deleting driver: %w", err)
	}
	return nil
}

// BulkUpdateRates applies new rates to every listed driver, then recomputes
// the amount of each of their hour-based expenses from the new hourly rate.
//
// The two phases are independent writes: a failure during the expense pass
// leaves already-applied driver updates in place. Any unknown driver id fails
// the whole batch with ErrNotFound.
//
// Expenses are recomputed as hours x hourly rate regardless of the overtime
// flag; set rates.apply_overtime_rate to charge overtime-flagged expenses at
// the overtime rate instead.
func (s *DefaultService) BulkUpdateRates(ctx context.Context, req models.BulkRateUpdateRequest) error {
	if len(req.DriverIDs) == 0 {
		return nil
	}
	if req.HourlyRate == nil && req.OvertimeRate == nil {
		return nil
	}

	// Phase 1: apply the supplied rate fields to every driver concurrently
	g, gctx := errgroup.WithContext(ctx)
	for _, id := range req.DriverIDs {
		id := id
		g.Go(func() error {
			driver, err := s.repo.GetDriver(gctx, id)
			if err != nil {
				return fmt.Errorf("error getting driver %s: %w", id, err)
			}
			if driver == nil {
				return fmt.Errorf("%w: driver %s", ErrNotFound, id)
			}

			if req.HourlyRate != nil {
				driver.HourlyRate = *req.HourlyRate
			}
			if req.OvertimeRate != nil {
				driver.OvertimeRate = *req.OvertimeRate
			}

			if err := s.repo.UpdateDriver(gctx, driver); err != nil {
				return fmt.Errorf("error updating driver %s: %w", id, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Phase 2: only an hourly rate change cascades into expense amounts
	if req.HourlyRate == nil {
		return nil
	}

	for _, id := range req.DriverIDs {
		expenses, err := s.repo.ListDriverHourlyExpenses(ctx, id)
		if err != nil {
			return fmt.Errorf("error listing expenses for driver %s: %w", id, err)
		}

		for _, expense := range expenses {
			rate := *req.HourlyRate
			if s.applyOvertimeRate && expense.IsOvertime && req.OvertimeRate != nil {
				rate = *req.OvertimeRate
			}

			amount := expense.Hours.Decimal.Mul(rate)
			if err := s.repo.UpdateExpenseAmount(ctx, expense.ID, amount); err != nil {
				return fmt.Errorf("error recomputing expense %s: %w", expense.ID, err)
			}
		}

		s.logger.Info("Recomputed driver expenses",
			zap.String("driver_id", id),
			zap.Int("expenses", len(expenses)))
	}

	return nil
}

func defaultCurrency(currency string) string {
	if currency == "" {
		return "IQD"
	}
	return currency
}
