package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Sneha051188/employee-management-system/internal/models"
)

type EmployeeDirectory struct{ mock.Mock }

func (m *EmployeeDirectory) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *EmployeeDirectory) Create(ctx context.Context, employee *models.Employee) error {
	return m.Called(ctx, employee).Error(0)
}
