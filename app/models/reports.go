package models

// DashboardStats holds the headline counts for the admin dashboard.
type DashboardStats struct {
	TotalStudents int `json:"total_students"`
	TotalClasses  int `json:"total_classes"`
	TotalTeachers int `json:"total_teachers"`
}

// GenderCount is the school- or class-wide gender distribution.
type GenderCount struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

// ClassSize is one row of the per-class roster-size table.
type ClassSize struct {
	ClassID      string `json:"class_id"`
	ClassName    string `json:"class_name"`
	StudentCount int    `json:"student_count"`
}

// MonthRevenue is one row of the revenue-by-month table (PAID invoices only).
type MonthRevenue struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}

// AdminReport aggregates everything the admin reports page and PDF need.
type AdminReport struct {
	TotalStudents       int            `json:"total_students"`
	TotalClasses        int            `json:"total_classes"`
	CurrentMonth        string         `json:"current_month"`
	CurrentMonthRevenue int64          `json:"current_month_revenue"`
	Gender              GenderCount    `json:"gender"`
	ClassSizes          []ClassSize    `json:"class_sizes"`
	Revenue             []MonthRevenue `json:"revenue"`
}

// ClassReport aggregates one class's figures for a billing month.
type ClassReport struct {
	ClassID      string      `json:"class_id"`
	ClassName    string      `json:"class_name"`
	TeacherName  string      `json:"teacher_name"`
	Month        string      `json:"month"`
	StudentCount int         `json:"student_count"`
	Gender       GenderCount `json:"gender"`
	Revenue      int64       `json:"revenue"`
	Invoices     []*Invoice  `json:"invoices"`
}
