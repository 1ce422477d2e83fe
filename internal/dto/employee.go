package dto

import "github.com/Sneha051188/employee-management-system/internal/models"

type EmployeeDto struct {
	ID             uint    `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	Salary         float64 `json:"salary"`
	DateOfJoining  Date    `json:"dateOfJoining"`
	DepartmentID   *uint   `json:"departmentId"`
	DepartmentName string  `json:"departmentName,omitempty"`
}

// ToEmployeeDto maps a row; department may be nil when the link is absent or dangling.
func ToEmployeeDto(employee *models.Employee, department *models.Department) *EmployeeDto {
	if employee == nil {
		return nil
	}
	out := &EmployeeDto{
		ID:            employee.ID,
		FirstName:     employee.FirstName,
		LastName:      employee.LastName,
		Email:         employee.Email,
		Role:          employee.Role,
		Salary:        employee.Salary,
		DateOfJoining: NewDate(employee.DateOfJoining),
		DepartmentID:  employee.DepartmentID,
	}
	if department != nil {
		id := department.ID
		out.DepartmentID = &id
		out.DepartmentName = department.Name
	}
	return out
}

// ToEmployee copies the mutable fields; the id and department link are left to the caller.
func ToEmployee(in *EmployeeDto) *models.Employee {
	if in == nil {
		return nil
	}
	return &models.Employee{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		Role:          in.Role,
		Salary:        in.Salary,
		DateOfJoining: in.DateOfJoining.Time,
	}
}
