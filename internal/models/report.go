package models

import (
	"time"

	"gorm.io/gorm"
)

type Report struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReportType  string    `gorm:"size:100;index;not null" json:"reportType"`
	Description string    `gorm:"size:1000" json:"description"`
	CreatedDate time.Time `gorm:"type:date;not null" json:"createdDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.CreatedDate.IsZero() {
		r.CreatedDate = DateOf(time.Now())
	}
	return nil
}
