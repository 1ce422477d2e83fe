package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName     string    `gorm:"size:120" json:"firstName"`
	LastName      string    `gorm:"size:120" json:"lastName"`
	Email         string    `gorm:"index;size:255" json:"email"`
	Role          string    `gorm:"size:50" json:"role"`
	Salary        float64   `gorm:"type:decimal(12,2)" json:"salary"`
	DateOfJoining time.Time `gorm:"type:date" json:"dateOfJoining"`
	DepartmentID  *uint     `gorm:"index" json:"departmentId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (e *Employee) BeforeSave(tx *gorm.DB) error {
	e.Email = NormalizeEmail(e.Email)
	return nil
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
