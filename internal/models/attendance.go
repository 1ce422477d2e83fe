package models

import "time"

// Attendance allows any number of rows per employee and day.
type Attendance struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID uint      `gorm:"index;not null" json:"employeeId"`
	Date       time.Time `gorm:"type:date;index;not null" json:"date"`
	Status     string    `gorm:"size:50" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Attendance) TableName() string {
	return "attendance"
}
