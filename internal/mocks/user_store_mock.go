package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Sneha051188/employee-management-system/internal/models"
)

type UserStore struct{ mock.Mock }

func (m *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserStore) CreateUser(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserStore) LinkEmployee(ctx context.Context, userID uint, employeeID uint) error {
	return m.Called(ctx, userID, employeeID).Error(0)
}
