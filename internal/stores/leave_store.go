package stores

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sneha051188/employee-management-system/internal/models"
)

type LeaveStore struct {
	*Store[models.Leave]
}

func NewLeaveStore(db *gorm.DB) *LeaveStore {
	return &LeaveStore{Store: NewStore[models.Leave](db)}
}

func (s *LeaveStore) FindByEmployeeID(ctx context.Context, employeeID uint) ([]models.Leave, error) {
	return s.FindBy(ctx, "employee_id", employeeID)
}

func (s *LeaveStore) FindByStatus(ctx context.Context, status string) ([]models.Leave, error) {
	return s.FindBy(ctx, "status", status)
}
