package services

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Sneha051188/employee-management-system/internal/dto"
	"github.com/Sneha051188/employee-management-system/internal/models"
	"github.com/Sneha051188/employee-management-system/internal/stores"
	"github.com/Sneha051188/employee-management-system/internal/utils"
)

const (
	UserTypeEmployee = "employee"

	defaultEmployeeRole   = "Employee"
	defaultEmployeeSalary = 50000

	msgSignupSuccess      = "Signup successful"
	msgLoginSuccess       = "Login successful"
	msgEmailExists        = "Email already exists"
	msgNameRequired       = "name is required for employee signup"

	MsgInvalidCredentials = "Invalid email or password."
)

// EmployeeDirectory is the part of the employee store the auth flow needs.
type EmployeeDirectory interface {
	FindByEmail(ctx context.Context, email string) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
}

type AuthService struct {
	Users            stores.UserStore
	Employees        EmployeeDirectory
	Bootstrap        *Bootstrapper
	Log              *logrus.Logger
	Now              func() time.Time
	JwtSecret        string
	JwtAccessMinutes int
}

func NewAuthService(users stores.UserStore, employees EmployeeDirectory, bootstrap *Bootstrapper, log *logrus.Logger, jwtSecret string, jwtAccessMinutes int) *AuthService {
	return &AuthService{
		Users:            users,
		Employees:        employees,
		Bootstrap:        bootstrap,
		Log:              log,
		Now:              time.Now,
		JwtSecret:        jwtSecret,
		JwtAccessMinutes: jwtAccessMinutes,
	}
}

func (s *AuthService) Signup(ctx context.Context, in dto.SignupDto) (*dto.AuthResponseDto, error) {
	email := models.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, invalidInput("email and password are required")
	}

	exists, err := s.Users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "check user email")
	}
	if exists {
		return nil, conflict(msgEmailExists)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		UserType:     in.UserType,
	}

	if isEmployeeUser(user.UserType) {
		if user.Name == "" {
			return nil, invalidInput(msgNameRequired)
		}
		employeeID, err := s.resolveEmployee(ctx, user.Name, email)
		if err != nil {
			return nil, err
		}
		user.EmployeeID = &employeeID
	}

	if err := s.Users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict(msgEmailExists)
		}
		return nil, errors.Wrap(err, "create user")
	}

	return s.respond(user, msgSignupSuccess)
}

func (s *AuthService) Login(ctx context.Context, in dto.LoginDto) (*dto.AuthResponseDto, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, unauthorized(MsgInvalidCredentials)
	}

	user, err := s.Users.FindByEmail(ctx, in.Email)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, unauthorized(MsgInvalidCredentials)
		}
		return nil, errors.Wrap(err, "load user")
	}
	if !utils.CheckPassword(user.PasswordHash, in.Password) {
		return nil, unauthorized(MsgInvalidCredentials)
	}

	// Read-modify-write on the user row; concurrent first logins may each provision an employee.
	if isEmployeeUser(user.UserType) && user.EmployeeID == nil {
		employeeID, err := s.resolveEmployee(ctx, user.Name, user.Email)
		if err != nil {
			return nil, err
		}
		if err := s.Users.LinkEmployee(ctx, user.ID, employeeID); err != nil {
			return nil, errors.Wrap(err, "link employee")
		}
		user.EmployeeID = &employeeID
	}

	return s.respond(user, msgLoginSuccess)
}

// resolveEmployee reuses the employee registered under email, or provisions and bootstraps a new one.
func (s *AuthService) resolveEmployee(ctx context.Context, name, email string) (uint, error) {
	existing, err := s.Employees.FindByEmail(ctx, email)
	if err == nil {
		return existing.ID, nil
	}
	if !isRecordNotFound(err) {
		return 0, errors.Wrap(err, "load employee by email")
	}

	firstName, lastName := SplitName(name)
	employee := &models.Employee{
		FirstName:     firstName,
		LastName:      lastName,
		Email:         email,
		Role:          defaultEmployeeRole,
		Salary:        defaultEmployeeSalary,
		DateOfJoining: models.DateOf(s.now()),
	}
	if err := s.Employees.Create(ctx, employee); err != nil {
		return 0, errors.Wrap(err, "create employee")
	}

	if s.Bootstrap != nil {
		result := s.Bootstrap.Run(ctx, employee.ID, employee.Salary)
		if failed := result.Failed(); len(failed) > 0 && s.Log != nil {
			s.Log.WithFields(logrus.Fields{
				"employeeId": employee.ID,
				"failed":     len(failed),
			}).Warn("employee bootstrap incomplete")
		}
	}
	return employee.ID, nil
}

func (s *AuthService) respond(user *models.User, message string) (*dto.AuthResponseDto, error) {
	out := dto.ToAuthResponse(user, message)
	if s.JwtSecret == "" {
		return out, nil
	}
	token, err := utils.GenerateAccessToken(user.ID, user.UserType, user.EmployeeID, s.JwtSecret, s.JwtAccessMinutes)
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}
	out.Token = token
	return out, nil
}

func (s *AuthService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func isEmployeeUser(userType string) bool {
	return strings.EqualFold(strings.TrimSpace(userType), UserTypeEmployee)
}

// SplitName returns the first whitespace-separated token and the rest joined by single spaces.
func SplitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
