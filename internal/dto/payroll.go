package dto

import "github.com/Sneha051188/employee-management-system/internal/models"

type PayrollDto struct {
	ID           uint    `json:"id"`
	EmployeeID   *uint   `json:"employeeId"`
	EmployeeName string  `json:"employeeName,omitempty"`
	Month        string  `json:"month"`
	BasicSalary  float64 `json:"basicSalary"`
	Bonus        float64 `json:"bonus"`
	Deductions   float64 `json:"deductions"`
	NetSalary    float64 `json:"netSalary"`
}

func ToPayrollDto(payroll *models.Payroll, employee *models.Employee) *PayrollDto {
	if payroll == nil {
		return nil
	}
	employeeID := payroll.EmployeeID
	out := &PayrollDto{
		ID:          payroll.ID,
		EmployeeID:  &employeeID,
		Month:       payroll.Month,
		BasicSalary: payroll.BasicSalary,
		Bonus:       payroll.Bonus,
		Deductions:  payroll.Deductions,
		NetSalary:   payroll.NetSalary,
	}
	if employee != nil {
		out.EmployeeName = employee.FullName()
	}
	return out
}

func ToPayroll(in *PayrollDto) *models.Payroll {
	if in == nil {
		return nil
	}
	return &models.Payroll{
		Month:       in.Month,
		BasicSalary: in.BasicSalary,
		Bonus:       in.Bonus,
		Deductions:  in.Deductions,
		NetSalary:   in.NetSalary,
	}
}
