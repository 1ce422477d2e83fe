package dto

import "github.com/Sneha051188/employee-management-system/internal/models"

type ReportDto struct {
	ID          uint   `json:"id"`
	ReportType  string `json:"reportType"`
	Description string `json:"description"`
	CreatedDate Date   `json:"createdDate"`
}

func ToReportDto(report *models.Report) *ReportDto {
	if report == nil {
		return nil
	}
	return &ReportDto{
		ID:          report.ID,
		ReportType:  report.ReportType,
		Description: report.Description,
		CreatedDate: NewDate(report.CreatedDate),
	}
}

func ToReport(in *ReportDto) *models.Report {
	if in == nil {
		return nil
	}
	return &models.Report{
		ReportType:  in.ReportType,
		Description: in.Description,
		CreatedDate: in.CreatedDate.Time,
	}
}
