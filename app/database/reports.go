package database

import (
	"database/sql"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

// GetDashboardStats returns the headline counts for the admin dashboard.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&stats.TotalStudents)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM classes`).Scan(&stats.TotalClasses)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM users WHERE role = 'TEACHER'`).Scan(&stats.TotalTeachers)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// GetGenderCounts returns the school-wide gender distribution. Pass a class
// id to scope it to one class.
func GetGenderCounts(db *sql.DB, classID string) (models.GenderCount, error) {
	var gender models.GenderCount

	query := `SELECT gender, COUNT(*) FROM students GROUP BY gender`
	args := []interface{}{}
	if classID != "" {
		query = `SELECT gender, COUNT(*) FROM students WHERE class_id = $1 GROUP BY gender`
		args = append(args, classID)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return gender, err
	}
	defer rows.Close()

	for rows.Next() {
		var g models.Gender
		var count int
		if err := rows.Scan(&g, &count); err != nil {
			return gender, err
		}
		switch g {
		case models.Male:
			gender.Male = count
		case models.Female:
			gender.Female = count
		}
	}
	return gender, rows.Err()
}

// GetClassSizes returns the roster size of every class, ordered by name.
// Classes without students count as zero.
func GetClassSizes(db *sql.DB) ([]models.ClassSize, error) {
	query := `SELECT c.id, c.name, COUNT(s.id)
			  FROM classes c
			  LEFT JOIN students s ON s.class_id = c.id
			  GROUP BY c.id, c.name
			  ORDER BY c.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sizes []models.ClassSize
	for rows.Next() {
		var cs models.ClassSize
		if err := rows.Scan(&cs.ClassID, &cs.ClassName, &cs.StudentCount); err != nil {
			return nil, err
		}
		sizes = append(sizes, cs)
	}
	return sizes, rows.Err()
}

// GetMonthRevenue sums PAID invoice totals for one billing month. Returns
// zero when no invoice is settled. Pass a class id to scope to one class.
func GetMonthRevenue(db *sql.DB, billingMonth, classID string) (int64, error) {
	var total sql.NullInt64

	query := `SELECT SUM(total_amount) FROM invoices WHERE status = 'PAID' AND billing_month = $1`
	args := []interface{}{billingMonth}
	if classID != "" {
		query = `SELECT SUM(i.total_amount)
				 FROM invoices i
				 JOIN students s ON s.id = i.student_id
				 WHERE i.status = 'PAID' AND i.billing_month = $1 AND s.class_id = $2`
		args = append(args, classID)
	}

	if err := db.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total.Int64, nil
}

// GetRevenueByMonth returns PAID revenue grouped by billing month, most
// recent first. A limit of 0 means all months.
func GetRevenueByMonth(db *sql.DB, limit int) ([]models.MonthRevenue, error) {
	query := `SELECT billing_month, SUM(total_amount)
			  FROM invoices WHERE status = 'PAID'
			  GROUP BY billing_month
			  ORDER BY billing_month DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revenue []models.MonthRevenue
	for rows.Next() {
		var mr models.MonthRevenue
		if err := rows.Scan(&mr.Month, &mr.Total); err != nil {
			return nil, err
		}
		revenue = append(revenue, mr)
	}
	return revenue, rows.Err()
}
