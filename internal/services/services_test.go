package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/stores"
	"github.com/Sneha051188/employee-management-system/internal/testhelpers"
)

var fixedNow = time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

type fixture struct {
	db          *gorm.DB
	employees   *stores.EmployeeStore
	departments *stores.DepartmentStore
	attendance  *stores.AttendanceStore
	leaves      *stores.LeaveStore
	payrolls    *stores.PayrollStore
	reports     *stores.ReportStore
	users       *stores.GormUserStore

	employeeSvc   *EmployeeService
	departmentSvc *DepartmentService
	attendanceSvc *AttendanceService
	leaveSvc      *LeaveService
	payrollSvc    *PayrollService
	reportSvc     *ReportService
	bootstrap     *Bootstrapper
	authSvc       *AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	database := testhelpers.NewDB(t)
	f := &fixture{
		db:          database,
		employees:   stores.NewEmployeeStore(database),
		departments: stores.NewDepartmentStore(database),
		attendance:  stores.NewAttendanceStore(database),
		leaves:      stores.NewLeaveStore(database),
		payrolls:    stores.NewPayrollStore(database),
		reports:     stores.NewReportStore(database),
		users:       stores.NewUserStore(database),
	}

	log := testhelpers.NewLogger()
	f.employeeSvc = NewEmployeeService(f.employees, f.departments, f.attendance, f.leaves, f.payrolls)
	f.departmentSvc = NewDepartmentService(f.departments)
	f.attendanceSvc = NewAttendanceService(f.attendance, f.employees)
	f.leaveSvc = NewLeaveService(f.leaves, f.employees)
	f.payrollSvc = NewPayrollService(f.payrolls, f.employees)
	f.reportSvc = NewReportService(f.reports)

	f.bootstrap = NewBootstrapper(f.attendance, f.payrolls, f.leaves, log)
	f.bootstrap.Now = func() time.Time { return fixedNow }

	f.authSvc = NewAuthService(f.users, f.employees, f.bootstrap, log, "test-secret", 15)
	f.authSvc.Now = func() time.Time { return fixedNow }
	return f
}

func (f *fixture) employee(t *testing.T, first, last string) *dto.EmployeeDto {
	t.Helper()
	created, err := f.employeeSvc.Create(context.Background(), dto.EmployeeDto{
		FirstName:     first,
		LastName:      last,
		Email:         first + "@example.com",
		Role:          "Engineer",
		Salary:        60000,
		DateOfJoining: dto.MustParseDate("2023-05-01"),
	})
	require.NoError(t, err)
	return created
}

func ptr[T any](v T) *T {
	return &v
}
