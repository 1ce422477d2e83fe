package stores

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sneha051188/employee-management-system/internal/models"
)

type EmployeeStore struct {
	*Store[models.Employee]
}

func NewEmployeeStore(db *gorm.DB) *EmployeeStore {
	return &EmployeeStore{Store: NewStore[models.Employee](db)}
}

// FindByEmail returns the first employee with the normalized email, or ErrNotFound.
func (s *EmployeeStore) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.WithContext(ctx).
		Where("email = ?", models.NormalizeEmail(email)).
		Order("id asc").
		First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindMap loads the employees with the given ids keyed by id; missing ids are skipped.
func (s *EmployeeStore) FindMap(ctx context.Context, ids []uint) (map[uint]*models.Employee, error) {
	employees, err := s.FindByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	out := make(map[uint]*models.Employee, len(employees))
	for i := range employees {
		out[employees[i].ID] = &employees[i]
	}
	return out, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
