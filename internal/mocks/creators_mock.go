package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Sneha051188/employee-management-system/internal/models"
)

type AttendanceCreator struct{ mock.Mock }

func (m *AttendanceCreator) Create(ctx context.Context, record *models.Attendance) error {
	return m.Called(ctx, record).Error(0)
}

type PayrollCreator struct{ mock.Mock }

func (m *PayrollCreator) Create(ctx context.Context, record *models.Payroll) error {
	return m.Called(ctx, record).Error(0)
}

type LeaveCreator struct{ mock.Mock }

func (m *LeaveCreator) Create(ctx context.Context, record *models.Leave) error {
	return m.Called(ctx, record).Error(0)
}
