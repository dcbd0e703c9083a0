package service

import (
	"context"
	"fmt"

	"github.com/4utre/expense-tracker-app/internal/models"
)

func (s *DefaultService) CreateEmployee(ctx context.Context, actor string, req models.CreateEmployeeRequest) (*models.Employee, error) {
	paymentDate, err := parseDay(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		EmployeeName:   req.EmployeeName,
		EmployeeNumber: req.EmployeeNumber,
		Salary:         req.Salary,
		Currency:       defaultCurrency(req.Currency),
		PaymentDate:    paymentDate,
		IsPaid:         req.IsPaid,
		AssignedMonths: req.AssignedMonths,
		CreatedBy:      actor,
	}
	if employee.AssignedMonths == nil {
		employee.AssignedMonths = []string{}
	}

	if err := s.repo.CreateEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("error creating employee: %w", err)
	}

	return employee, nil
}

func (s *DefaultService) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	employee, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting employee: %w", err)
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: employee", ErrNotFound)
	}
	return employee, nil
}

func (s *DefaultService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}
	return employees, nil
}

func (s *DefaultService) UpdateEmployee(ctx context.Context, id string, req models.UpdateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EmployeeName != nil {
		employee.EmployeeName = *req.EmployeeName
	}
	if req.EmployeeNumber != nil {
		employee.EmployeeNumber = *req.EmployeeNumber
	}
	if req.Salary != nil {
		employee.Salary = *req.Salary
	}
	if req.Currency != nil {
		employee.Currency = *req.Currency
	}
	if req.PaymentDate != nil {
		paymentDate, err := parseDay(*req.PaymentDate)
		if err != nil {
			return nil, err
		}
		employee.PaymentDate = paymentDate
	}
	if req.IsPaid != nil {
		employee.IsPaid = *req.IsPaid
	}
	if req.AssignedMonths != nil {
		employee.AssignedMonths = *req.AssignedMonths
	}

	if err := s.repo.UpdateEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("error updating employee: %w", err)
	}

	return employee, nil
}

func (s *DefaultService) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.GetEmployee(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}
	return nil
}
