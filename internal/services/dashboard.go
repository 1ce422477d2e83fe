package services

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/Sneha051188/employee-management-system/internal/models"
	"github.com/Sneha051188/employee-management-system/internal/stores"
)

type DashboardSummary struct {
	Employees         int64  `json:"employees"`
	Departments       int64  `json:"departments"`
	AttendanceToday   int64  `json:"attendanceToday"`
	PendingLeaves     int64  `json:"pendingLeaves"`
	PayrollThisMonth  int64  `json:"payrollThisMonth"`
	CurrentMonthLabel string `json:"currentMonth"`
}

type DashboardService struct {
	Employees   *stores.EmployeeStore
	Departments *stores.DepartmentStore
	Attendance  *stores.AttendanceStore
	Leaves      *stores.LeaveStore
	Payrolls    *stores.PayrollStore
	Now         func() time.Time
}

func NewDashboardService(
	employees *stores.EmployeeStore,
	departments *stores.DepartmentStore,
	attendance *stores.AttendanceStore,
	leaves *stores.LeaveStore,
	payrolls *stores.PayrollStore,
) *DashboardService {
	return &DashboardService{
		Employees:   employees,
		Departments: departments,
		Attendance:  attendance,
		Leaves:      leaves,
		Payrolls:    payrolls,
		Now:         time.Now,
	}
}

func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	month := MonthLabel(now)

	var out DashboardSummary
	out.CurrentMonthLabel = month

	var err error
	if out.Employees, err = s.Employees.Count(ctx, "", nil); err != nil {
		return nil, errors.Wrap(err, "count employees")
	}
	if out.Departments, err = s.Departments.Count(ctx, "", nil); err != nil {
		return nil, errors.Wrap(err, "count departments")
	}
	if out.AttendanceToday, err = s.Attendance.Count(ctx, "date", models.DateOf(now)); err != nil {
		return nil, errors.Wrap(err, "count attendance")
	}
	if out.PendingLeaves, err = s.Leaves.Count(ctx, "status", "Pending"); err != nil {
		return nil, errors.Wrap(err, "count leaves")
	}
	if out.PayrollThisMonth, err = s.Payrolls.Count(ctx, "month", month); err != nil {
		return nil, errors.Wrap(err, "count payroll")
	}
	return &out, nil
}
