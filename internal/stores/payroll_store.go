package stores

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sneha051188/employee-management-system/internal/models"
)

type PayrollStore struct {
	*Store[models.Payroll]
}

func NewPayrollStore(db *gorm.DB) *PayrollStore {
	return &PayrollStore{Store: NewStore[models.Payroll](db)}
}

func (s *PayrollStore) FindByEmployeeID(ctx context.Context, employeeID uint) ([]models.Payroll, error) {
	return s.FindBy(ctx, "employee_id", employeeID)
}

func (s *PayrollStore) FindByMonth(ctx context.Context, month string) ([]models.Payroll, error) {
	return s.FindBy(ctx, "month", month)
}
