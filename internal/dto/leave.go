package dto

import "github.com/Sneha051188/employee-management-system/internal/models"

type LeaveDto struct {
	ID           uint   `json:"id"`
	EmployeeID   *uint  `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	LeaveType    string `json:"leaveType"`
	StartDate    Date   `json:"startDate"`
	EndDate      Date   `json:"endDate"`
	Status       string `json:"status"`
}

func ToLeaveDto(leave *models.Leave, employee *models.Employee) *LeaveDto {
	if leave == nil {
		return nil
	}
	employeeID := leave.EmployeeID
	out := &LeaveDto{
		ID:         leave.ID,
		EmployeeID: &employeeID,
		LeaveType:  leave.LeaveType,
		StartDate:  NewDate(leave.StartDate),
		EndDate:    NewDate(leave.EndDate),
		Status:     leave.Status,
	}
	if employee != nil {
		out.EmployeeName = employee.FullName()
	}
	return out
}

func ToLeave(in *LeaveDto) *models.Leave {
	if in == nil {
		return nil
	}
	return &models.Leave{
		LeaveType: in.LeaveType,
		StartDate: in.StartDate.Time,
		EndDate:   in.EndDate.Time,
		Status:    in.Status,
	}
}
