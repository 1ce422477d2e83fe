package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/models"
	"github.com/Sneha051188/employee-management-system/internal/stores"
)

// LeaveService stores leave requests as given: no date ordering or overlap checks.
type LeaveService struct {
	Leaves *stores.LeaveStore
	owners owners
}

func NewLeaveService(leaves *stores.LeaveStore, employees *stores.EmployeeStore) *LeaveService {
	return &LeaveService{Leaves: leaves, owners: owners{employees: employees}}
}

func (s *LeaveService) Create(ctx context.Context, in dto.LeaveDto) (*dto.LeaveDto, error) {
	employee, err := s.owners.require(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}

	leave := dto.ToLeave(&in)
	leave.EmployeeID = employee.ID
	if err := s.Leaves.Create(ctx, leave); err != nil {
		return nil, errors.Wrap(err, "create leave")
	}
	return dto.ToLeaveDto(leave, employee), nil
}

func (s *LeaveService) Get(ctx context.Context, id uint) (*dto.LeaveDto, error) {
	leave, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	employee, err := s.owners.lookup(ctx, leave.EmployeeID)
	if err != nil {
		return nil, err
	}
	return dto.ToLeaveDto(leave, employee), nil
}

func (s *LeaveService) List(ctx context.Context) ([]dto.LeaveDto, error) {
	leaves, err := s.Leaves.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list leaves")
	}
	return s.views(ctx, leaves)
}

func (s *LeaveService) ListByEmployee(ctx context.Context, employeeID uint) ([]dto.LeaveDto, error) {
	leaves, err := s.Leaves.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "list leaves by employee")
	}
	return s.views(ctx, leaves)
}

func (s *LeaveService) ListByStatus(ctx context.Context, status string) ([]dto.LeaveDto, error) {
	leaves, err := s.Leaves.FindByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "list leaves by status")
	}
	return s.views(ctx, leaves)
}

func (s *LeaveService) Update(ctx context.Context, id uint, in dto.LeaveDto) (*dto.LeaveDto, error) {
	leave, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	leave.LeaveType = in.LeaveType
	leave.StartDate = in.StartDate.Time
	leave.EndDate = in.EndDate.Time
	leave.Status = in.Status

	var employee *models.Employee
	if in.EmployeeID != nil {
		employee, err = s.owners.require(ctx, in.EmployeeID)
		if err != nil {
			return nil, err
		}
		leave.EmployeeID = employee.ID
	} else if employee, err = s.owners.lookup(ctx, leave.EmployeeID); err != nil {
		return nil, err
	}

	if err := s.Leaves.Save(ctx, leave); err != nil {
		return nil, errors.Wrap(err, "update leave")
	}
	return dto.ToLeaveDto(leave, employee), nil
}

func (s *LeaveService) Delete(ctx context.Context, id uint) error {
	if err := s.Leaves.Delete(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return notFound("Leave", id)
		}
		return err
	}
	return nil
}

func (s *LeaveService) find(ctx context.Context, id uint) (*models.Leave, error) {
	leave, err := s.Leaves.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("Leave", id)
		}
		return nil, errors.Wrap(err, "load leave")
	}
	return leave, nil
}

func (s *LeaveService) views(ctx context.Context, leaves []models.Leave) ([]dto.LeaveDto, error) {
	ids := make([]uint, 0, len(leaves))
	for _, leave := range leaves {
		ids = append(ids, leave.EmployeeID)
	}
	employees, err := s.owners.lookupMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LeaveDto, 0, len(leaves))
	for i := range leaves {
		out = append(out, *dto.ToLeaveDto(&leaves[i], employees[leaves[i].EmployeeID]))
	}
	return out, nil
}
