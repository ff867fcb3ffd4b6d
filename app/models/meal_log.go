package models

import "time"

// MealLog records whether a student ate on a given day. At most one row exists
// per (student, log_date). Rows inside a PAID invoice's month are read-only.
type MealLog struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	StudentID string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	LogDate   time.Time `json:"log_date" gorm:"not null;index;type:date;uniqueIndex:uq_meal_student_date" validate:"required"`
	Ate       bool      `json:"ate" gorm:"not null;default:true"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
