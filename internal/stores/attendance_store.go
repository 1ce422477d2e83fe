package stores

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Sneha051188/employee-management-system/internal/models"
)

type AttendanceStore struct {
	*Store[models.Attendance]
}

func NewAttendanceStore(db *gorm.DB) *AttendanceStore {
	return &AttendanceStore{Store: NewStore[models.Attendance](db)}
}

func (s *AttendanceStore) FindByEmployeeID(ctx context.Context, employeeID uint) ([]models.Attendance, error) {
	return s.FindBy(ctx, "employee_id", employeeID)
}

func (s *AttendanceStore) FindByDate(ctx context.Context, date time.Time) ([]models.Attendance, error) {
	return s.FindBy(ctx, "date", models.DateOf(date))
}
