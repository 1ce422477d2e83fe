package models

import "time"

// Payroll.NetSalary is stored as given and never derived from the other amounts.
type Payroll struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID  uint      `gorm:"index;not null" json:"employeeId"`
	Month       string    `gorm:"size:50;index;not null" json:"month"`
	BasicSalary float64   `gorm:"type:decimal(12,2);not null" json:"basicSalary"`
	Bonus       float64   `gorm:"type:decimal(12,2)" json:"bonus"`
	Deductions  float64   `gorm:"type:decimal(12,2)" json:"deductions"`
	NetSalary   float64   `gorm:"type:decimal(12,2);not null" json:"netSalary"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Payroll) TableName() string {
	return "payroll"
}
