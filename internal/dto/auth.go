package dto

import "github.com/Sneha051188/employee-management-system/internal/models"

type SignupDto struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType"`
}

// LoginDto carries no binding rules: missing credentials fail as bad credentials.
type LoginDto struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponseDto struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	UserType   string `json:"userType"`
	EmployeeID *uint  `json:"employeeId"`
	Message    string `json:"message"`
	Token      string `json:"token,omitempty"`
}

func ToAuthResponse(user *models.User, message string) *AuthResponseDto {
	if user == nil {
		return nil
	}
	return &AuthResponseDto{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		UserType:   user.UserType,
		EmployeeID: user.EmployeeID,
		Message:    message,
	}
}
