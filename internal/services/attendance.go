package services

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/models"
	"github.com/Sneha051188/employee-management-system/internal/stores"
)

type AttendanceService struct {
	Attendance *stores.AttendanceStore
	owners     owners
}

func NewAttendanceService(attendance *stores.AttendanceStore, employees *stores.EmployeeStore) *AttendanceService {
	return &AttendanceService{Attendance: attendance, owners: owners{employees: employees}}
}

func (s *AttendanceService) Create(ctx context.Context, in dto.AttendanceDto) (*dto.AttendanceDto, error) {
	employee, err := s.owners.require(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}

	record := dto.ToAttendance(&in)
	record.EmployeeID = employee.ID
	if err := s.Attendance.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "create attendance")
	}
	return dto.ToAttendanceDto(record, employee), nil
}

func (s *AttendanceService) Get(ctx context.Context, id uint) (*dto.AttendanceDto, error) {
	record, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	employee, err := s.owners.lookup(ctx, record.EmployeeID)
	if err != nil {
		return nil, err
	}
	return dto.ToAttendanceDto(record, employee), nil
}

func (s *AttendanceService) List(ctx context.Context) ([]dto.AttendanceDto, error) {
	records, err := s.Attendance.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list attendance")
	}
	return s.views(ctx, records)
}

func (s *AttendanceService) ListByEmployee(ctx context.Context, employeeID uint) ([]dto.AttendanceDto, error) {
	records, err := s.Attendance.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "list attendance by employee")
	}
	return s.views(ctx, records)
}

func (s *AttendanceService) ListByDate(ctx context.Context, date time.Time) ([]dto.AttendanceDto, error) {
	records, err := s.Attendance.FindByDate(ctx, date)
	if err != nil {
		return nil, errors.Wrap(err, "list attendance by date")
	}
	return s.views(ctx, records)
}

func (s *AttendanceService) Update(ctx context.Context, id uint, in dto.AttendanceDto) (*dto.AttendanceDto, error) {
	record, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	record.Date = in.Date.Time
	record.Status = in.Status

	var employee *models.Employee
	if in.EmployeeID != nil {
		employee, err = s.owners.require(ctx, in.EmployeeID)
		if err != nil {
			return nil, err
		}
		record.EmployeeID = employee.ID
	} else if employee, err = s.owners.lookup(ctx, record.EmployeeID); err != nil {
		return nil, err
	}

	if err := s.Attendance.Save(ctx, record); err != nil {
		return nil, errors.Wrap(err, "update attendance")
	}
	return dto.ToAttendanceDto(record, employee), nil
}

func (s *AttendanceService) Delete(ctx context.Context, id uint) error {
	if err := s.Attendance.Delete(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return notFound("Attendance", id)
		}
		return err
	}
	return nil
}

func (s *AttendanceService) find(ctx context.Context, id uint) (*models.Attendance, error) {
	record, err := s.Attendance.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("Attendance", id)
		}
		return nil, errors.Wrap(err, "load attendance")
	}
	return record, nil
}

func (s *AttendanceService) views(ctx context.Context, records []models.Attendance) ([]dto.AttendanceDto, error) {
	ids := make([]uint, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.EmployeeID)
	}
	employees, err := s.owners.lookupMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AttendanceDto, 0, len(records))
	for i := range records {
		out = append(out, *dto.ToAttendanceDto(&records[i], employees[records[i].EmployeeID]))
	}
	return out, nil
}
