package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/stores"
)

type DepartmentService struct {
	Departments *stores.DepartmentStore
}

func NewDepartmentService(departments *stores.DepartmentStore) *DepartmentService {
	return &DepartmentService{Departments: departments}
}

func (s *DepartmentService) Create(ctx context.Context, in dto.DepartmentDto) (*dto.DepartmentDto, error) {
	department := dto.ToDepartment(&in)
	if err := s.Departments.Create(ctx, department); err != nil {
		return nil, errors.Wrap(err, "create department")
	}
	return dto.ToDepartmentDto(department), nil
}

func (s *DepartmentService) Get(ctx context.Context, id uint) (*dto.DepartmentDto, error) {
	department, err := s.Departments.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("Department", id)
		}
		return nil, errors.Wrap(err, "load department")
	}
	return dto.ToDepartmentDto(department), nil
}

func (s *DepartmentService) List(ctx context.Context) ([]dto.DepartmentDto, error) {
	departments, err := s.Departments.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list departments")
	}
	out := make([]dto.DepartmentDto, 0, len(departments))
	for i := range departments {
		out = append(out, *dto.ToDepartmentDto(&departments[i]))
	}
	return out, nil
}

func (s *DepartmentService) Update(ctx context.Context, id uint, in dto.DepartmentDto) (*dto.DepartmentDto, error) {
	department, err := s.Departments.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("Department", id)
		}
		return nil, errors.Wrap(err, "load department")
	}

	department.Name = in.Name
	department.Description = in.Description
	department.Head = in.Head

	if err := s.Departments.Save(ctx, department); err != nil {
		return nil, errors.Wrap(err, "update department")
	}
	return dto.ToDepartmentDto(department), nil
}

// Delete does not check for employees still pointing at the department.
func (s *DepartmentService) Delete(ctx context.Context, id uint) error {
	if err := s.Departments.Delete(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return notFound("Department", id)
		}
		return err
	}
	return nil
}
