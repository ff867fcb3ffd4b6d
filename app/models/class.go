package models

import "time"

type Class struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name         string    `json:"name" gorm:"not null" validate:"required"`
	TeacherID    *string   `json:"teacher_id,omitempty" gorm:"uniqueIndex;type:uuid" validate:"omitempty,uuid"`
	StudentCount int       `json:"student_count" gorm:"-"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Teacher *User `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
}
