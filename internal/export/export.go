package export

import (
	"io"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Sneha051188/employee-management-system/internal/dto"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	PayrollSheet    = "Payroll"
	AttendanceSheet = "Attendance"
)

var (
	payrollHeaders    = []any{"ID", "Employee ID", "Employee", "Month", "Basic Salary", "Bonus", "Deductions", "Net Salary"}
	attendanceHeaders = []any{"ID", "Employee ID", "Employee", "Date", "Status"}
)

// WritePayroll writes one row per payroll entry followed by a totals row.
func WritePayroll(w io.Writer, rows []dto.PayrollDto) error {
	f, err := newWorkbook(PayrollSheet, payrollHeaders)
	if err != nil {
		return err
	}
	defer f.Close()

	var basic, bonus, deductions, net decimal.Decimal
	for i, row := range rows {
		values := []any{row.ID, employeeID(row.EmployeeID), row.EmployeeName, row.Month, row.BasicSalary, row.Bonus, row.Deductions, row.NetSalary}
		if err := setRow(f, PayrollSheet, i+2, values); err != nil {
			return err
		}
		basic = basic.Add(decimal.NewFromFloat(row.BasicSalary))
		bonus = bonus.Add(decimal.NewFromFloat(row.Bonus))
		deductions = deductions.Add(decimal.NewFromFloat(row.Deductions))
		net = net.Add(decimal.NewFromFloat(row.NetSalary))
	}

	totals := []any{"Total", nil, nil, nil,
		basic.Round(2).InexactFloat64(),
		bonus.Round(2).InexactFloat64(),
		deductions.Round(2).InexactFloat64(),
		net.Round(2).InexactFloat64(),
	}
	if err := setRow(f, PayrollSheet, len(rows)+2, totals); err != nil {
		return err
	}

	return errors.Wrap(f.Write(w), "write payroll workbook")
}

func WriteAttendance(w io.Writer, rows []dto.AttendanceDto) error {
	f, err := newWorkbook(AttendanceSheet, attendanceHeaders)
	if err != nil {
		return err
	}
	defer f.Close()

	for i, row := range rows {
		values := []any{row.ID, employeeID(row.EmployeeID), row.EmployeeName, row.Date.String(), row.Status}
		if err := setRow(f, AttendanceSheet, i+2, values); err != nil {
			return err
		}
	}

	return errors.Wrap(f.Write(w), "write attendance workbook")
}

func newWorkbook(sheet string, headers []any) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "rename sheet")
	}
	if err := setRow(f, sheet, 1, headers); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrap(err, "cell name")
	}
	return errors.Wrapf(f.SetSheetRow(sheet, cell, &values), "write row %d", row)
}

func employeeID(id *uint) any {
	if id == nil {
		return nil
	}
	return *id
}
