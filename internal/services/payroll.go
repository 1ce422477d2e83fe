package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/models"
	"github.com/Sneha051188/employee-management-system/internal/stores"
)

type PayrollService struct {
	Payrolls *stores.PayrollStore
	owners   owners
}

func NewPayrollService(payrolls *stores.PayrollStore, employees *stores.EmployeeStore) *PayrollService {
	return &PayrollService{Payrolls: payrolls, owners: owners{employees: employees}}
}

func (s *PayrollService) Create(ctx context.Context, in dto.PayrollDto) (*dto.PayrollDto, error) {
	employee, err := s.owners.require(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}

	payroll := dto.ToPayroll(&in)
	payroll.EmployeeID = employee.ID
	if err := s.Payrolls.Create(ctx, payroll); err != nil {
		return nil, errors.Wrap(err, "create payroll")
	}
	return dto.ToPayrollDto(payroll, employee), nil
}

func (s *PayrollService) Get(ctx context.Context, id uint) (*dto.PayrollDto, error) {
	payroll, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	employee, err := s.owners.lookup(ctx, payroll.EmployeeID)
	if err != nil {
		return nil, err
	}
	return dto.ToPayrollDto(payroll, employee), nil
}

func (s *PayrollService) List(ctx context.Context) ([]dto.PayrollDto, error) {
	payrolls, err := s.Payrolls.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list payroll")
	}
	return s.views(ctx, payrolls)
}

func (s *PayrollService) ListByEmployee(ctx context.Context, employeeID uint) ([]dto.PayrollDto, error) {
	payrolls, err := s.Payrolls.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "list payroll by employee")
	}
	return s.views(ctx, payrolls)
}

func (s *PayrollService) ListByMonth(ctx context.Context, month string) ([]dto.PayrollDto, error) {
	payrolls, err := s.Payrolls.FindByMonth(ctx, month)
	if err != nil {
		return nil, errors.Wrap(err, "list payroll by month")
	}
	return s.views(ctx, payrolls)
}

// Update stores the amounts as sent; netSalary is not recomputed.
func (s *PayrollService) Update(ctx context.Context, id uint, in dto.PayrollDto) (*dto.PayrollDto, error) {
	payroll, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	payroll.Month = in.Month
	payroll.BasicSalary = in.BasicSalary
	payroll.Bonus = in.Bonus
	payroll.Deductions = in.Deductions
	payroll.NetSalary = in.NetSalary

	var employee *models.Employee
	if in.EmployeeID != nil {
		employee, err = s.owners.require(ctx, in.EmployeeID)
		if err != nil {
			return nil, err
		}
		payroll.EmployeeID = employee.ID
	} else if employee, err = s.owners.lookup(ctx, payroll.EmployeeID); err != nil {
		return nil, err
	}

	if err := s.Payrolls.Save(ctx, payroll); err != nil {
		return nil, errors.Wrap(err, "update payroll")
	}
	return dto.ToPayrollDto(payroll, employee), nil
}

func (s *PayrollService) Delete(ctx context.Context, id uint) error {
	if err := s.Payrolls.Delete(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return notFound("Payroll", id)
		}
		return err
	}
	return nil
}

func (s *PayrollService) find(ctx context.Context, id uint) (*models.Payroll, error) {
	payroll, err := s.Payrolls.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("Payroll", id)
		}
		return nil, errors.Wrap(err, "load payroll")
	}
	return payroll, nil
}

func (s *PayrollService) views(ctx context.Context, payrolls []models.Payroll) ([]dto.PayrollDto, error) {
	ids := make([]uint, 0, len(payrolls))
	for _, payroll := range payrolls {
		ids = append(ids, payroll.EmployeeID)
	}
	employees, err := s.owners.lookupMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PayrollDto, 0, len(payrolls))
	for i := range payrolls {
		out = append(out, *dto.ToPayrollDto(&payrolls[i], employees[payrolls[i].EmployeeID]))
	}
	return out, nil
}
