package database

import (
	"database/sql"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

// hashPassword hashes a password using bcrypt.
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// Seed ensures a usable baseline exists: the settings row, an admin account,
// one teacher with one class, two students, a run of meal logs, one health
// record and one invoice. Every step checks before inserting, so the routine
// can run repeatedly.
func Seed(db *sql.DB) error {
	settings, err := GetSettings(db)
	if err != nil {
		return err
	}

	adminID, err := ensureUser(db, "admin", "admin", models.RoleAdmin, "Administrator", "0900000000")
	if err != nil {
		return err
	}
	log.Printf("Seed: admin account ready (%s)", adminID)

	teacherID, err := ensureUser(db, "teacher1", "admin", models.RoleTeacher, "Teacher One", "0911111111")
	if err != nil {
		return err
	}

	classID, err := ensureClass(db, teacherID)
	if err != nil {
		return err
	}

	studentIDs, err := ensureStudents(db, classID)
	if err != nil {
		return err
	}

	today := time.Now()
	startMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		d := startMonth.AddDate(0, 0, i)
		for _, sid := range studentIDs {
			if err := ensureMealLog(db, sid, d); err != nil {
				return err
			}
		}
	}

	if err := ensureHealthRecord(db, studentIDs[0], today); err != nil {
		return err
	}

	if err := ensureInvoice(db, studentIDs[0], settings); err != nil {
		return err
	}

	log.Println("Seed completed")
	return nil
}

func ensureUser(db *sql.DB, username, password string, role models.Role, fullName, phone string) (string, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM users WHERE username = $1`, username).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", err
	}
	err = db.QueryRow(`INSERT INTO users (username, password, role, full_name, phone)
					   VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		username, hash, role, fullName, phone).Scan(&id)
	return id, err
}

func ensureClass(db *sql.DB, teacherID string) (string, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM classes WHERE teacher_id = $1`, teacherID).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	// Prefer adopting an unassigned class over creating a new one.
	err = db.QueryRow(`SELECT id FROM classes WHERE teacher_id IS NULL LIMIT 1`).Scan(&id)
	if err == nil {
		_, err = db.Exec(`UPDATE classes SET teacher_id = $1, updated_at = NOW() WHERE id = $2`, teacherID, id)
		return id, err
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	err = db.QueryRow(`INSERT INTO classes (name, teacher_id) VALUES ($1, $2) RETURNING id`,
		"Lá 1", teacherID).Scan(&id)
	return id, err
}

func ensureStudents(db *sql.DB, classID string) ([]string, error) {
	rows, err := db.Query(`SELECT id FROM students WHERE class_id = $1 ORDER BY created_at`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		return ids, nil
	}

	samples := []struct {
		name     string
		dob      time.Time
		gender   models.Gender
		guardian string
		phone    string
	}{
		{"Nguyễn Gia Hân", time.Date(2020, 8, 10, 0, 0, 0, 0, time.UTC), models.Female, "Nguyễn Triều Nguyệt", "0965544789"},
		{"Trần Minh Khang", time.Date(2020, 3, 5, 0, 0, 0, 0, time.UTC), models.Male, "Trần Thị Hoa", "0901234567"},
	}
	for _, s := range samples {
		var id string
		err := db.QueryRow(`INSERT INTO students (class_id, full_name, date_of_birth, gender, guardian_name, guardian_phone)
							VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			classID, s.name, s.dob, s.gender, s.guardian, s.phone).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func ensureMealLog(db *sql.DB, studentID string, date time.Time) error {
	_, err := db.Exec(`INSERT INTO meal_logs (student_id, log_date, ate)
					   VALUES ($1, $2, TRUE)
					   ON CONFLICT ON CONSTRAINT uq_meal_student_date DO NOTHING`,
		studentID, date)
	return err
}

func ensureHealthRecord(db *sql.DB, studentID string, date time.Time) error {
	weight := 15.0
	note := "Bình thường"
	_, err := db.Exec(`INSERT INTO health_records (student_id, record_date, weight_kg, temperature_c, note)
					   VALUES ($1, $2, $3, $4, $5)
					   ON CONFLICT ON CONSTRAINT uq_health_student_date DO NOTHING`,
		studentID, date, weight, 36.8, note)
	return err
}

func ensureInvoice(db *sql.DB, studentID string, settings *models.Settings) error {
	today := time.Now()
	month := today.Format("2006-01")

	var id int64
	err := db.QueryRow(`SELECT id FROM invoices WHERE student_id = $1 AND billing_month = $2`,
		studentID, month).Scan(&id)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	mealDays, err := CountMealDays(db, studentID, start, end)
	if err != nil {
		return err
	}

	total := settings.TuitionFeeMonthly + int64(mealDays)*settings.MealPricePerDay
	_, err = db.Exec(`INSERT INTO invoices
					  (student_id, billing_month, tuition_fee, meal_unit_price, meal_days, total_amount, status)
					  VALUES ($1, $2, $3, $4, $5, $6, 'UNPAID')`,
		studentID, month, settings.TuitionFeeMonthly, settings.MealPricePerDay, mealDays, total)
	return err
}
