package models

import "time"

type Student struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ClassID       string    `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FullName      string    `json:"full_name" gorm:"not null" validate:"required"`
	DateOfBirth   time.Time `json:"date_of_birth" gorm:"not null;type:date" validate:"required"`
	Gender        Gender    `json:"gender" gorm:"not null;type:char(1)" validate:"required,oneof=M F"`
	GuardianName  string    `json:"guardian_name" gorm:"not null" validate:"required"`
	GuardianPhone string    `json:"guardian_phone" gorm:"not null;type:varchar(20)" validate:"required"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Class *Class `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}
