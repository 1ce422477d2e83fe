package dto

import "github.com/Sneha051188/employee-management-system/internal/models"

type AttendanceDto struct {
	ID           uint   `json:"id"`
	EmployeeID   *uint  `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	Date         Date   `json:"date"`
	Status       string `json:"status"`
}

func ToAttendanceDto(attendance *models.Attendance, employee *models.Employee) *AttendanceDto {
	if attendance == nil {
		return nil
	}
	employeeID := attendance.EmployeeID
	out := &AttendanceDto{
		ID:         attendance.ID,
		EmployeeID: &employeeID,
		Date:       NewDate(attendance.Date),
		Status:     attendance.Status,
	}
	if employee != nil {
		out.EmployeeName = employee.FullName()
	}
	return out
}

func ToAttendance(in *AttendanceDto) *models.Attendance {
	if in == nil {
		return nil
	}
	return &models.Attendance{
		Date:   in.Date.Time,
		Status: in.Status,
	}
}
