package models

// Role defines the two account roles in the system.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

// InvoiceStatus defines the invoice lifecycle states.
type InvoiceStatus string

const (
	InvoiceUnpaid InvoiceStatus = "UNPAID"
	InvoicePaid   InvoiceStatus = "PAID"
)
