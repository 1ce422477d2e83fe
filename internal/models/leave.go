package models

import "time"

type Leave struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID uint      `gorm:"index;not null" json:"employeeId"`
	LeaveType  string    `gorm:"size:50;not null" json:"leaveType"`
	StartDate  time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate    time.Time `gorm:"type:date;not null" json:"endDate"`
	Status     string    `gorm:"size:20;index;not null" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Leave) TableName() string {
	return "leaves"
}
