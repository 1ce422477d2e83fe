package stores

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound is returned by lookups by id.
var ErrNotFound = gorm.ErrRecordNotFound

// Store is the gorm-backed table access shared by every resource.
type Store[T any] struct {
	DB *gorm.DB
}

func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{DB: db}
}

func (s *Store[T]) Create(ctx context.Context, record *T) error {
	return s.DB.WithContext(ctx).Create(record).Error
}

func (s *Store[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var record T
	if err := s.DB.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store[T]) FindAll(ctx context.Context) ([]T, error) {
	records := []T{}
	if err := s.DB.WithContext(ctx).Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindBy returns the rows whose column equals value, ordered by id.
func (s *Store[T]) FindBy(ctx context.Context, column string, value any) ([]T, error) {
	records := []T{}
	if err := s.DB.WithContext(ctx).Where(column+" = ?", value).Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store[T]) FindByIDs(ctx context.Context, ids []uint) ([]T, error) {
	records := []T{}
	if len(ids) == 0 {
		return records, nil
	}
	if err := s.DB.WithContext(ctx).Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store[T]) Count(ctx context.Context, column string, value any) (int64, error) {
	var count int64
	query := s.DB.WithContext(ctx).Model(new(T))
	if column != "" {
		query = query.Where(column+" = ?", value)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store[T]) Save(ctx context.Context, record *T) error {
	return s.DB.WithContext(ctx).Save(record).Error
}

// Delete removes the row and reports ErrNotFound when nothing matched.
func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	result := s.DB.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
