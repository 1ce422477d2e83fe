package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Sneha051188/employee-management-system/internal/models"
	"github.com/Sneha051188/employee-management-system/internal/stores"
)

// owners resolves the Employee referenced by attendance, leave and payroll rows.
type owners struct {
	employees *stores.EmployeeStore
}

// require loads the referenced employee; a nil id is rejected because the column is NOT NULL.
func (o owners) require(ctx context.Context, id *uint) (*models.Employee, error) {
	if id == nil {
		return nil, invalidInput("employeeId is required")
	}
	employee, err := o.employees.FindByID(ctx, *id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("Employee", *id)
		}
		return nil, errors.Wrap(err, "load employee")
	}
	return employee, nil
}

// lookup returns nil without error when the employee is gone.
func (o owners) lookup(ctx context.Context, id uint) (*models.Employee, error) {
	employee, err := o.employees.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "load employee")
	}
	return employee, nil
}

func (o owners) lookupMany(ctx context.Context, ids []uint) (map[uint]*models.Employee, error) {
	found, err := o.employees.FindMap(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "load employees")
	}
	return found, nil
}
