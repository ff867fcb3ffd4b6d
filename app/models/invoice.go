package models

import "time"

// Invoice captures a student's monthly charge as a snapshot at generation
// time. One row per (student, billing_month); once PAID the snapshot is the
// authoritative figure for that month.
type Invoice struct {
	ID            int64         `json:"id" gorm:"primaryKey"`
	StudentID     string        `json:"student_id" gorm:"not null;index;type:uuid;uniqueIndex:uq_invoice_student_month" validate:"required,uuid"`
	BillingMonth  string        `json:"billing_month" gorm:"not null;type:varchar(7);uniqueIndex:uq_invoice_student_month" validate:"required"`
	TuitionFee    int64         `json:"tuition_fee" gorm:"not null"`
	MealUnitPrice int64         `json:"meal_unit_price" gorm:"not null"`
	MealDays      int           `json:"meal_days" gorm:"not null"`
	TotalAmount   int64         `json:"total_amount" gorm:"not null"`
	Status        InvoiceStatus `json:"status" gorm:"not null;default:'UNPAID';type:varchar(10)"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	CollectedBy   *string       `json:"collected_by,omitempty" gorm:"type:uuid"`

	Student   *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Collector *User    `json:"collector,omitempty" gorm:"foreignKey:CollectedBy;references:ID"`
}

// IsPaid reports whether the invoice has been settled.
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoicePaid
}
