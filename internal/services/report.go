package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/stores"
)

type ReportService struct {
	Reports *stores.ReportStore
}

func NewReportService(reports *stores.ReportStore) *ReportService {
	return &ReportService{Reports: reports}
}

// Create stamps today's date when createdDate is omitted.
func (s *ReportService) Create(ctx context.Context, in dto.ReportDto) (*dto.ReportDto, error) {
	report := dto.ToReport(&in)
	if err := s.Reports.Create(ctx, report); err != nil {
		return nil, errors.Wrap(err, "create report")
	}
	return dto.ToReportDto(report), nil
}

func (s *ReportService) Get(ctx context.Context, id uint) (*dto.ReportDto, error) {
	report, err := s.Reports.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("Report", id)
		}
		return nil, errors.Wrap(err, "load report")
	}
	return dto.ToReportDto(report), nil
}

func (s *ReportService) List(ctx context.Context) ([]dto.ReportDto, error) {
	reports, err := s.Reports.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list reports")
	}
	out := make([]dto.ReportDto, 0, len(reports))
	for i := range reports {
		out = append(out, *dto.ToReportDto(&reports[i]))
	}
	return out, nil
}

func (s *ReportService) ListByType(ctx context.Context, reportType string) ([]dto.ReportDto, error) {
	reports, err := s.Reports.FindByType(ctx, reportType)
	if err != nil {
		return nil, errors.Wrap(err, "list reports by type")
	}
	out := make([]dto.ReportDto, 0, len(reports))
	for i := range reports {
		out = append(out, *dto.ToReportDto(&reports[i]))
	}
	return out, nil
}

func (s *ReportService) Update(ctx context.Context, id uint, in dto.ReportDto) (*dto.ReportDto, error) {
	report, err := s.Reports.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("Report", id)
		}
		return nil, errors.Wrap(err, "load report")
	}

	report.ReportType = in.ReportType
	report.Description = in.Description
	if !in.CreatedDate.IsZero() {
		report.CreatedDate = in.CreatedDate.Time
	}

	if err := s.Reports.Save(ctx, report); err != nil {
		return nil, errors.Wrap(err, "update report")
	}
	return dto.ToReportDto(report), nil
}

func (s *ReportService) Delete(ctx context.Context, id uint) error {
	if err := s.Reports.Delete(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return notFound("Report", id)
		}
		return err
	}
	return nil
}
