package models

import "time"

// HealthRecord holds one day's health check for a student. At most one record
// exists per (student, record_date).
type HealthRecord struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	StudentID    string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	RecordDate   time.Time `json:"record_date" gorm:"not null;index;type:date;uniqueIndex:uq_health_student_date" validate:"required"`
	WeightKg     *float64  `json:"weight_kg,omitempty" gorm:"type:numeric(5,2)"`
	TemperatureC float64   `json:"temperature_c" gorm:"not null;type:numeric(4,1)" validate:"required"`
	Note         *string   `json:"note,omitempty" gorm:"type:varchar(255)"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
