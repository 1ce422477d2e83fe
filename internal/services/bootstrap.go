package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Sneha051188/employee-management-system/internal/metrics"
	"github.com/Sneha051188/employee-management-system/internal/models"
)

const (
	bootstrapAttendanceDays = 5
	bootstrapLeaveOffset    = 7
	bootstrapLeaveDays      = 3

	StepAttendance = "attendance"
	StepPayroll    = "payroll"
	StepLeave      = "leave"
)

var bootstrapDeductionRate = decimal.NewFromFloat(0.05)

type AttendanceCreator interface {
	Create(ctx context.Context, record *models.Attendance) error
}

type PayrollCreator interface {
	Create(ctx context.Context, record *models.Payroll) error
}

type LeaveCreator interface {
	Create(ctx context.Context, record *models.Leave) error
}

type BootstrapStep struct {
	Name string
	Err  error
}

type BootstrapResult struct {
	Steps []BootstrapStep
}

func (r BootstrapResult) Failed() []BootstrapStep {
	var failed []BootstrapStep
	for _, step := range r.Steps {
		if step.Err != nil {
			failed = append(failed, step)
		}
	}
	return failed
}

// Bootstrapper seeds a freshly provisioned employee with sample rows.
// Every insert is attempted on its own and failures never abort the sequence.
type Bootstrapper struct {
	Attendance AttendanceCreator
	Payrolls   PayrollCreator
	Leaves     LeaveCreator
	Log        *logrus.Logger
	Now        func() time.Time
}

func NewBootstrapper(attendance AttendanceCreator, payrolls PayrollCreator, leaves LeaveCreator, log *logrus.Logger) *Bootstrapper {
	return &Bootstrapper{
		Attendance: attendance,
		Payrolls:   payrolls,
		Leaves:     leaves,
		Log:        log,
		Now:        time.Now,
	}
}

func (b *Bootstrapper) Run(ctx context.Context, employeeID uint, salary float64) BootstrapResult {
	today := models.DateOf(b.now())
	result := BootstrapResult{Steps: make([]BootstrapStep, 0, bootstrapAttendanceDays+2)}

	for i := bootstrapAttendanceDays - 1; i >= 0; i-- {
		record := &models.Attendance{
			EmployeeID: employeeID,
			Date:       today.AddDate(0, 0, -i),
			Status:     "Present",
		}
		result.Steps = append(result.Steps, b.step(employeeID, StepAttendance, b.Attendance.Create(ctx, record)))
	}

	result.Steps = append(result.Steps, b.step(employeeID, StepPayroll, b.Payrolls.Create(ctx, bootstrapPayroll(employeeID, salary, today))))

	leave := &models.Leave{
		EmployeeID: employeeID,
		LeaveType:  "Casual",
		StartDate:  today.AddDate(0, 0, bootstrapLeaveOffset),
		EndDate:    today.AddDate(0, 0, bootstrapLeaveOffset+bootstrapLeaveDays-1),
		Status:     "Pending",
	}
	result.Steps = append(result.Steps, b.step(employeeID, StepLeave, b.Leaves.Create(ctx, leave)))

	return result
}

func (b *Bootstrapper) step(employeeID uint, name string, err error) BootstrapStep {
	metrics.RecordBootstrapStep(name, err)
	if err != nil && b.Log != nil {
		b.Log.WithFields(logrus.Fields{
			"step":       name,
			"employeeId": employeeID,
		}).WithError(err).Warn("bootstrap insert failed")
	}
	return BootstrapStep{Name: name, Err: err}
}

func (b *Bootstrapper) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}
	return b.Now()
}

func bootstrapPayroll(employeeID uint, salary float64, today time.Time) *models.Payroll {
	basic := decimal.NewFromFloat(salary)
	deductions := basic.Mul(bootstrapDeductionRate).Round(2)
	net := basic.Sub(deductions)

	return &models.Payroll{
		EmployeeID:  employeeID,
		Month:       MonthLabel(today),
		BasicSalary: basic.InexactFloat64(),
		Bonus:       0,
		Deductions:  deductions.InexactFloat64(),
		NetSalary:   net.InexactFloat64(),
	}
}

// MonthLabel formats t as "JANUARY 2024".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", strings.ToUpper(t.Month().String()), t.Year())
}
