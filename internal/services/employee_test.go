package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/models"
)

func TestEmployeeCreateResolvesDepartment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	department, err := f.departmentSvc.Create(ctx, dto.DepartmentDto{Name: "Finance"})
	require.NoError(t, err)

	created, err := f.employeeSvc.Create(ctx, dto.EmployeeDto{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "  Jane.Doe@Example.COM ",
		Role:          "Analyst",
		Salary:        72000,
		DateOfJoining: dto.MustParseDate("2022-03-14"),
		DepartmentID:  &department.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", created.Email)
	assert.Equal(t, "Finance", created.DepartmentName)

	got, err := f.employeeSvc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "2022-03-14", got.DateOfJoining.String())

	byEmail, err := f.employeeSvc.FindByEmail(ctx, "JANE.DOE@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestEmployeeCreateUnknownDepartment(t *testing.T) {
	f := newFixture(t)

	_, err := f.employeeSvc.Create(context.Background(), dto.EmployeeDto{FirstName: "Ghost", DepartmentID: ptr(uint(404))})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Department not found with id: 404", err.Error())

	count, err := f.employees.Count(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEmployeeUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	department, err := f.departmentSvc.Create(ctx, dto.DepartmentDto{Name: "Ops"})
	require.NoError(t, err)
	created, err := f.employeeSvc.Create(ctx, dto.EmployeeDto{FirstName: "Sam", Email: "sam@example.com", DepartmentID: &department.ID})
	require.NoError(t, err)

	updated, err := f.employeeSvc.Update(ctx, created.ID, dto.EmployeeDto{
		FirstName: "Samuel",
		LastName:  "Stone",
		Email:     "samuel@example.com",
		Salary:    1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Samuel", updated.FirstName)
	assert.Equal(t, "Stone", updated.LastName)
	assert.Empty(t, updated.Role)
	require.NotNil(t, updated.DepartmentID)
	assert.Equal(t, department.ID, *updated.DepartmentID)

	_, err = f.employeeSvc.Update(ctx, created.ID, dto.EmployeeDto{FirstName: "X", DepartmentID: ptr(uint(999))})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.employeeSvc.Update(ctx, 12345, dto.EmployeeDto{FirstName: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmployeeDanglingDepartment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	department, err := f.departmentSvc.Create(ctx, dto.DepartmentDto{Name: "Temp"})
	require.NoError(t, err)
	created, err := f.employeeSvc.Create(ctx, dto.EmployeeDto{FirstName: "Kim", DepartmentID: &department.ID})
	require.NoError(t, err)

	require.NoError(t, f.departmentSvc.Delete(ctx, department.ID))

	all, err := f.employeeSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Empty(t, all[0].DepartmentName)
	require.NotNil(t, all[0].DepartmentID)
	assert.Equal(t, department.ID, *all[0].DepartmentID)
}

func TestEmployeeDeleteRestrictsDependents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	employee := f.employee(t, "lee", "Park")
	record, err := f.attendanceSvc.Create(ctx, dto.AttendanceDto{EmployeeID: &employee.ID, Date: dto.MustParseDate("2024-01-02"), Status: "Present"})
	require.NoError(t, err)

	err = f.employeeSvc.Delete(ctx, employee.ID)
	require.ErrorIs(t, err, ErrConflict)

	_, err = f.employeeSvc.Get(ctx, employee.ID)
	require.NoError(t, err)

	require.NoError(t, f.attendanceSvc.Delete(ctx, record.ID))
	require.NoError(t, f.employeeSvc.Delete(ctx, employee.ID))

	_, err = f.employeeSvc.Get(ctx, employee.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.employeeSvc.Delete(ctx, employee.ID), ErrNotFound)
}

func TestEmployeeFindByEmailMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.employeeSvc.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmployeeEmailIsNormalizedOnSave(t *testing.T) {
	f := newFixture(t)

	employee := &models.Employee{FirstName: "Raw", Email: " MiXeD@Example.com"}
	require.NoError(t, f.employees.Create(context.Background(), employee))
	assert.Equal(t, "mixed@example.com", employee.Email)
}
