package stores

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sneha051188/employee-management-system/internal/models"
)

type DepartmentStore struct {
	*Store[models.Department]
}

func NewDepartmentStore(db *gorm.DB) *DepartmentStore {
	return &DepartmentStore{Store: NewStore[models.Department](db)}
}

func (s *DepartmentStore) FindMap(ctx context.Context, ids []uint) (map[uint]*models.Department, error) {
	departments, err := s.FindByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	out := make(map[uint]*models.Department, len(departments))
	for i := range departments {
		out[departments[i].ID] = &departments[i]
	}
	return out, nil
}
