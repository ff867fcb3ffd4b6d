package database

import (
	"database/sql"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

// GetSettings returns the singleton settings row, creating it with defaults
// on first access.
func GetSettings(db *sql.DB) (*models.Settings, error) {
	s := &models.Settings{}
	query := `SELECT id, tuition_fee_monthly, meal_price_per_day, max_students_per_class
			  FROM settings WHERE id = 1`

	err := db.QueryRow(query).Scan(&s.ID, &s.TuitionFeeMonthly, &s.MealPricePerDay, &s.MaxStudentsPerClass)
	if err == sql.ErrNoRows {
		return createDefaultSettings(db)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func createDefaultSettings(db *sql.DB) (*models.Settings, error) {
	s := &models.Settings{
		ID:                  1,
		TuitionFeeMonthly:   models.DefaultTuitionFeeMonthly,
		MealPricePerDay:     models.DefaultMealPricePerDay,
		MaxStudentsPerClass: models.DefaultMaxStudentsPerClass,
	}
	// ON CONFLICT covers a concurrent first access.
	query := `INSERT INTO settings (id, tuition_fee_monthly, meal_price_per_day, max_students_per_class)
			  VALUES (1, $1, $2, $3)
			  ON CONFLICT (id) DO NOTHING`
	if _, err := db.Exec(query, s.TuitionFeeMonthly, s.MealPricePerDay, s.MaxStudentsPerClass); err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateTuitionSettings stores the billing rates.
func UpdateTuitionSettings(db *sql.DB, tuitionFee, mealPrice int64) error {
	query := `UPDATE settings SET tuition_fee_monthly = $1, meal_price_per_day = $2 WHERE id = 1`
	res, err := db.Exec(query, tuitionFee, mealPrice)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateCapacitySettings stores the roster capacity limit.
func UpdateCapacitySettings(db *sql.DB, maxStudents int) error {
	query := `UPDATE settings SET max_students_per_class = $1 WHERE id = 1`
	res, err := db.Exec(query, maxStudents)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
