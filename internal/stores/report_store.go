package stores

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sneha051188/employee-management-system/internal/models"
)

type ReportStore struct {
	*Store[models.Report]
}

func NewReportStore(db *gorm.DB) *ReportStore {
	return &ReportStore{Store: NewStore[models.Report](db)}
}

func (s *ReportStore) FindByType(ctx context.Context, reportType string) ([]models.Report, error) {
	return s.FindBy(ctx, "report_type", reportType)
}
