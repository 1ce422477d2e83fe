package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/Sneha051188/employee-management-system/internal/models"
)

// Date is a calendar day exchanged as "YYYY-MM-DD". The zero value encodes as null.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return Date{Time: models.DateOf(t)}
}

func MustParseDate(value string) Date {
	parsed, err := models.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return Date{Time: parsed}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(models.DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := models.ParseDate(raw)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(models.DateLayout)
}
