package database

import (
	"database/sql"
	"time"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

// GetMealLogsByDate returns the roster's meal logs for one day, keyed by
// student id.
func GetMealLogsByDate(db *sql.DB, classID string, date time.Time) (map[string]*models.MealLog, error) {
	query := `SELECT m.id, m.student_id, m.log_date, m.ate
			  FROM meal_logs m
			  JOIN students s ON s.id = m.student_id
			  WHERE s.class_id = $1 AND m.log_date = $2`

	rows, err := db.Query(query, classID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make(map[string]*models.MealLog)
	for rows.Next() {
		m := &models.MealLog{}
		if err := rows.Scan(&m.ID, &m.StudentID, &m.LogDate, &m.Ate); err != nil {
			return nil, err
		}
		logs[m.StudentID] = m
	}
	return logs, rows.Err()
}

// GetLockedStudentIDs returns the students of a class whose invoice for the
// given billing month is PAID. Their meal logs in that month are read-only.
func GetLockedStudentIDs(db *sql.DB, classID, billingMonth string) (map[string]bool, error) {
	query := `SELECT i.student_id
			  FROM invoices i
			  JOIN students s ON s.id = i.student_id
			  WHERE s.class_id = $1 AND i.billing_month = $2 AND i.status = 'PAID'`

	rows, err := db.Query(query, classID, billingMonth)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locked := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		locked[id] = true
	}
	return locked, rows.Err()
}

// UpsertMealLog writes the single meal flag for (student, date). The write is
// refused with ErrMealsLocked when the covering month's invoice is already
// PAID, so settled attendance stays immutable.
func UpsertMealLog(db *sql.DB, studentID string, date time.Time, ate bool) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Share-lock the month's invoice row so a concurrent ConfirmPayment
	// (FOR UPDATE) cannot settle it between this check and the write.
	billingMonth := date.Format("2006-01")
	var status models.InvoiceStatus
	err = tx.QueryRow(`SELECT status FROM invoices
					   WHERE student_id = $1 AND billing_month = $2 FOR SHARE`,
		studentID, billingMonth).Scan(&status)
	if err == nil && status == models.InvoicePaid {
		return ErrMealsLocked
	}
	if err != nil && err != sql.ErrNoRows {
		return err
	}

	query := `INSERT INTO meal_logs (student_id, log_date, ate)
			  VALUES ($1, $2, $3)
			  ON CONFLICT ON CONSTRAINT uq_meal_student_date
			  DO UPDATE SET ate = EXCLUDED.ate`
	if _, err := tx.Exec(query, studentID, date, ate); err != nil {
		return MapError(err)
	}

	return tx.Commit()
}

// CountMealDays counts ate=true logs for a student within [start, end].
func CountMealDays(db *sql.DB, studentID string, start, end time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM meal_logs
			  WHERE student_id = $1 AND ate = TRUE AND log_date >= $2 AND log_date <= $3`
	err := db.QueryRow(query, studentID, start, end).Scan(&count)
	return count, err
}

// CountMealDaysByStudent aggregates ate=true logs per student for a class
// within [start, end].
func CountMealDaysByStudent(db *sql.DB, classID string, start, end time.Time) (map[string]int, error) {
	query := `SELECT m.student_id, COUNT(*)
			  FROM meal_logs m
			  JOIN students s ON s.id = m.student_id
			  WHERE s.class_id = $1 AND m.ate = TRUE AND m.log_date >= $2 AND m.log_date <= $3
			  GROUP BY m.student_id`

	rows, err := db.Query(query, classID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	return counts, rows.Err()
}
