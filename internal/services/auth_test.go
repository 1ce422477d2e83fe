package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/mocks"
	"github.com/Sneha051188/employee-management-system/internal/models"
	"github.com/Sneha051188/employee-management-system/internal/utils"
)

func TestSplitName(t *testing.T) {
	cases := []struct {
		in, first, last string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"  Mary   Ann  Lee ", "Mary", "Ann Lee"},
		{"Cher", "Cher", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		first, last := SplitName(tc.in)
		assert.Equal(t, tc.first, first, tc.in)
		assert.Equal(t, tc.last, last, tc.in)
	}
}

func TestSignupEmployeeProvisionsAndBootstraps(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.authSvc.Signup(ctx, dto.SignupDto{Name: "Jane Doe", Email: "Jane@Example.com", Password: "pw", UserType: "Employee"})
	require.NoError(t, err)
	assert.Equal(t, "Signup successful", resp.Message)
	assert.Equal(t, "jane@example.com", resp.Email)
	require.NotNil(t, resp.EmployeeID)
	assert.NotEmpty(t, resp.Token)

	employee, err := f.employees.FindByID(ctx, *resp.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", employee.FirstName)
	assert.Equal(t, "Doe", employee.LastName)
	assert.Equal(t, "Employee", employee.Role)
	assert.InDelta(t, 50000, employee.Salary, 0.001)
	assert.Equal(t, "2024-01-15", employee.DateOfJoining.Format(models.DateLayout))

	attendance, err := f.attendance.FindByEmployeeID(ctx, employee.ID)
	require.NoError(t, err)
	assert.Len(t, attendance, 5)
	payrolls, err := f.payrolls.FindByEmployeeID(ctx, employee.ID)
	require.NoError(t, err)
	require.Len(t, payrolls, 1)
	assert.InDelta(t, 47500, payrolls[0].NetSalary, 0.001)
	leaves, err := f.leaves.FindByEmployeeID(ctx, employee.ID)
	require.NoError(t, err)
	assert.Len(t, leaves, 1)

	user, err := f.users.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", user.PasswordHash)
	assert.True(t, utils.CheckPassword(user.PasswordHash, "pw"))

	claims, err := utils.ParseAccessToken(resp.Token, "test-secret")
	require.NoError(t, err)
	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, resp.ID, userID)
}

func TestSignupReusesExistingEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	existing := f.employee(t, "reuse", "Me")
	resp, err := f.authSvc.Signup(ctx, dto.SignupDto{Name: "Someone Else", Email: "REUSE@example.com", Password: "pw", UserType: "employee"})
	require.NoError(t, err)
	require.NotNil(t, resp.EmployeeID)
	assert.Equal(t, existing.ID, *resp.EmployeeID)

	attendance, err := f.attendance.FindByEmployeeID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Empty(t, attendance)

	count, err := f.employees.Count(ctx, "", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSignupAdminHasNoEmployee(t *testing.T) {
	f := newFixture(t)

	resp, err := f.authSvc.Signup(context.Background(), dto.SignupDto{Name: "Root", Email: "root@example.com", Password: "pw", UserType: "admin"})
	require.NoError(t, err)
	assert.Nil(t, resp.EmployeeID)

	count, err := f.employees.Count(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSignupDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.authSvc.Signup(ctx, dto.SignupDto{Name: "A", Email: "dup@example.com", Password: "pw", UserType: "admin"})
	require.NoError(t, err)

	_, err = f.authSvc.Signup(ctx, dto.SignupDto{Name: "B", Email: " DUP@example.com", Password: "other", UserType: "admin"})
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Email already exists", err.Error())

	var count int64
	require.NoError(t, f.db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSignupRacingDuplicateIsConflict(t *testing.T) {
	users := new(mocks.UserStore)
	users.On("ExistsByEmail", mock.Anything, "race@example.com").Return(false, nil)
	users.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return(gorm.ErrDuplicatedKey)

	svc := NewAuthService(users, new(mocks.EmployeeDirectory), nil, nil, "", 0)
	_, err := svc.Signup(context.Background(), dto.SignupDto{Email: "race@example.com", Password: "pw", UserType: "admin"})
	assert.ErrorIs(t, err, ErrConflict)
	users.AssertExpectations(t)
}

func TestSignupSurvivesBootstrapFault(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	leaves := new(mocks.LeaveCreator)
	leaves.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)
	f.bootstrap.Leaves = leaves

	resp, err := f.authSvc.Signup(ctx, dto.SignupDto{Name: "Jane Doe", Email: "fault@example.com", Password: "pw", UserType: "employee"})
	require.NoError(t, err)
	require.NotNil(t, resp.EmployeeID)

	attendance, err := f.attendance.FindByEmployeeID(ctx, *resp.EmployeeID)
	require.NoError(t, err)
	assert.Len(t, attendance, 5)
	payrolls, err := f.payrolls.FindByEmployeeID(ctx, *resp.EmployeeID)
	require.NoError(t, err)
	assert.Len(t, payrolls, 1)
	stored, err := f.leaves.FindByEmployeeID(ctx, *resp.EmployeeID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hash, err := utils.HashPassword("right")
	require.NoError(t, err)
	user := &models.User{Name: "Emp Loyee", Email: "emp@example.com", PasswordHash: hash, UserType: "employee"}
	require.NoError(t, f.users.CreateUser(ctx, user))
	before, err := f.users.FindByEmail(ctx, "emp@example.com")
	require.NoError(t, err)

	_, err = f.authSvc.Login(ctx, dto.LoginDto{Email: "emp@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid email or password.", err.Error())

	_, err = f.authSvc.Login(ctx, dto.LoginDto{Email: "nobody@example.com", Password: "right"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid email or password.", err.Error())

	after, err := f.users.FindByEmail(ctx, "emp@example.com")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	count, err := f.employees.Count(ctx, "", nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLoginBackfillsEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hash, err := utils.HashPassword("pw")
	require.NoError(t, err)
	user := &models.User{Name: "Late Comer", Email: "late@example.com", PasswordHash: hash, UserType: "EMPLOYEE"}
	require.NoError(t, f.users.CreateUser(ctx, user))

	resp, err := f.authSvc.Login(ctx, dto.LoginDto{Email: "Late@Example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", resp.Message)
	require.NotNil(t, resp.EmployeeID)

	stored, err := f.users.FindByEmail(ctx, "late@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.EmployeeID)
	assert.Equal(t, *resp.EmployeeID, *stored.EmployeeID)

	employee, err := f.employees.FindByID(ctx, *resp.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, "Late", employee.FirstName)
	assert.Equal(t, "Comer", employee.LastName)

	attendance, err := f.attendance.FindByEmployeeID(ctx, employee.ID)
	require.NoError(t, err)
	assert.Len(t, attendance, 5)

	again, err := f.authSvc.Login(ctx, dto.LoginDto{Email: "late@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, *resp.EmployeeID, *again.EmployeeID)

	count, err := f.employees.Count(ctx, "", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLoginBackfillLinksExistingEmployee(t *testing.T) {
	users := new(mocks.UserStore)
	employees := new(mocks.EmployeeDirectory)

	hash, err := utils.HashPassword("pw")
	require.NoError(t, err)
	users.On("FindByEmail", mock.Anything, "old@example.com").
		Return(&models.User{ID: 4, Email: "old@example.com", PasswordHash: hash, UserType: "employee"}, nil)
	employees.On("FindByEmail", mock.Anything, "old@example.com").Return(&models.Employee{ID: 9}, nil)
	users.On("LinkEmployee", mock.Anything, uint(4), uint(9)).Return(nil)

	svc := NewAuthService(users, employees, nil, nil, "", 0)
	resp, err := svc.Login(context.Background(), dto.LoginDto{Email: "old@example.com", Password: "pw"})
	require.NoError(t, err)
	require.NotNil(t, resp.EmployeeID)
	assert.Equal(t, uint(9), *resp.EmployeeID)
	assert.Empty(t, resp.Token)

	employees.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	users.AssertExpectations(t)
}

func TestSignupEmployeeRequiresName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.authSvc.Signup(ctx, dto.SignupDto{Name: "   ", Email: "blank@example.com", Password: "pw", UserType: "employee"})
	require.ErrorIs(t, err, ErrInvalidInput)

	exists, err := f.users.ExistsByEmail(ctx, "blank@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	count, err := f.employees.Count(ctx, "", nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLoginEmptyCredentialsSkipLookup(t *testing.T) {
	users := new(mocks.UserStore)
	svc := NewAuthService(users, new(mocks.EmployeeDirectory), nil, nil, "", 0)

	for _, in := range []dto.LoginDto{{}, {Email: "a@example.com"}, {Password: "pw"}} {
		_, err := svc.Login(context.Background(), in)
		assert.ErrorIs(t, err, ErrUnauthorized)
	}
	users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}
