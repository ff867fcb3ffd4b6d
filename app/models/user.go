package models

import "time"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null" validate:"required"`
	Password  string    `json:"-" gorm:"not null" validate:"required,min=4"`
	Role      Role      `json:"role" gorm:"not null;type:varchar(10)" validate:"required,oneof=ADMIN TEACHER"`
	FullName  string    `json:"full_name" gorm:"not null" validate:"required"`
	Phone     *string   `json:"phone,omitempty" gorm:"type:varchar(20)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Class *Class `json:"class,omitempty" gorm:"-"`
}

// IsAdmin reports whether the account has the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsTeacher reports whether the account has the TEACHER role.
func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}
