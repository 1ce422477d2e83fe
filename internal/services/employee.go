package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/models"
	"github.com/Sneha051188/employee-management-system/internal/stores"
)

type EmployeeService struct {
	Employees   *stores.EmployeeStore
	Departments *stores.DepartmentStore
	Attendance  *stores.AttendanceStore
	Leaves      *stores.LeaveStore
	Payrolls    *stores.PayrollStore
}

func NewEmployeeService(
	employees *stores.EmployeeStore,
	departments *stores.DepartmentStore,
	attendance *stores.AttendanceStore,
	leaves *stores.LeaveStore,
	payrolls *stores.PayrollStore,
) *EmployeeService {
	return &EmployeeService{
		Employees:   employees,
		Departments: departments,
		Attendance:  attendance,
		Leaves:      leaves,
		Payrolls:    payrolls,
	}
}

func (s *EmployeeService) Create(ctx context.Context, in dto.EmployeeDto) (*dto.EmployeeDto, error) {
	employee := dto.ToEmployee(&in)

	var department *models.Department
	if in.DepartmentID != nil {
		found, err := s.findDepartment(ctx, *in.DepartmentID)
		if err != nil {
			return nil, err
		}
		department = found
		employee.DepartmentID = &found.ID
	}

	if err := s.Employees.Create(ctx, employee); err != nil {
		return nil, errors.Wrap(err, "create employee")
	}
	return dto.ToEmployeeDto(employee, department), nil
}

func (s *EmployeeService) Get(ctx context.Context, id uint) (*dto.EmployeeDto, error) {
	employee, err := s.findEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, employee)
}

// FindByEmail returns ErrNotFound when no employee has the email.
func (s *EmployeeService) FindByEmail(ctx context.Context, email string) (*dto.EmployeeDto, error) {
	employee, err := s.Employees.FindByEmail(ctx, email)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, &Error{Kind: ErrNotFound, Message: "Employee not found with email: " + models.NormalizeEmail(email)}
		}
		return nil, errors.Wrap(err, "load employee by email")
	}
	return s.view(ctx, employee)
}

func (s *EmployeeService) List(ctx context.Context) ([]dto.EmployeeDto, error) {
	employees, err := s.Employees.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list employees")
	}

	ids := make([]uint, 0, len(employees))
	for _, employee := range employees {
		if employee.DepartmentID != nil {
			ids = append(ids, *employee.DepartmentID)
		}
	}
	departments, err := s.Departments.FindMap(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "load departments")
	}

	out := make([]dto.EmployeeDto, 0, len(employees))
	for i := range employees {
		var department *models.Department
		if employees[i].DepartmentID != nil {
			department = departments[*employees[i].DepartmentID]
		}
		out = append(out, *dto.ToEmployeeDto(&employees[i], department))
	}
	return out, nil
}

// Update replaces every field; a nil departmentId keeps the current department.
func (s *EmployeeService) Update(ctx context.Context, id uint, in dto.EmployeeDto) (*dto.EmployeeDto, error) {
	employee, err := s.findEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	employee.FirstName = in.FirstName
	employee.LastName = in.LastName
	employee.Email = in.Email
	employee.Role = in.Role
	employee.Salary = in.Salary
	employee.DateOfJoining = in.DateOfJoining.Time

	if in.DepartmentID != nil {
		department, err := s.findDepartment(ctx, *in.DepartmentID)
		if err != nil {
			return nil, err
		}
		employee.DepartmentID = &department.ID
	}

	if err := s.Employees.Save(ctx, employee); err != nil {
		return nil, errors.Wrap(err, "update employee")
	}
	return s.view(ctx, employee)
}

// Delete refuses to remove an employee that still owns attendance, leave or payroll rows.
func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.findEmployee(ctx, id); err != nil {
		return err
	}

	dependents, err := s.countDependents(ctx, id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return conflict("Employee has attendance, leave or payroll records")
	}

	if err := s.Employees.Delete(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return notFound("Employee", id)
		}
		return err
	}
	return nil
}

func (s *EmployeeService) countDependents(ctx context.Context, id uint) (int64, error) {
	var total int64
	counters := []func(context.Context, string, any) (int64, error){
		s.Attendance.Count,
		s.Leaves.Count,
		s.Payrolls.Count,
	}
	for _, count := range counters {
		n, err := count(ctx, "employee_id", id)
		if err != nil {
			return 0, errors.Wrap(err, "count employee records")
		}
		total += n
	}
	return total, nil
}

func (s *EmployeeService) view(ctx context.Context, employee *models.Employee) (*dto.EmployeeDto, error) {
	if employee.DepartmentID == nil {
		return dto.ToEmployeeDto(employee, nil), nil
	}
	department, err := s.Departments.FindByID(ctx, *employee.DepartmentID)
	if err != nil {
		if isRecordNotFound(err) {
			return dto.ToEmployeeDto(employee, nil), nil
		}
		return nil, errors.Wrap(err, "load department")
	}
	return dto.ToEmployeeDto(employee, department), nil
}

func (s *EmployeeService) findEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	employee, err := s.Employees.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("Employee", id)
		}
		return nil, errors.Wrap(err, "load employee")
	}
	return employee, nil
}

func (s *EmployeeService) findDepartment(ctx context.Context, id uint) (*models.Department, error) {
	department, err := s.Departments.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("Department", id)
		}
		return nil, errors.Wrap(err, "load department")
	}
	return department, nil
}
