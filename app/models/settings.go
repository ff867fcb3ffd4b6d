package models

// Settings is the single global configuration row (id=1). It holds the rates
// the billing engine reads and the roster capacity limit.
type Settings struct {
	ID                  int   `json:"id" gorm:"primaryKey"`
	TuitionFeeMonthly   int64 `json:"tuition_fee_monthly" gorm:"not null" validate:"required,gt=0"`
	MealPricePerDay     int64 `json:"meal_price_per_day" gorm:"not null" validate:"required,gte=0"`
	MaxStudentsPerClass int   `json:"max_students_per_class" gorm:"not null" validate:"required,gt=0"`
}

// Default settings used when the singleton row is absent.
const (
	DefaultTuitionFeeMonthly   int64 = 1500000
	DefaultMealPricePerDay     int64 = 25000
	DefaultMaxStudentsPerClass       = 25
)
