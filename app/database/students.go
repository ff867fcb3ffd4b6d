package database

import (
	"database/sql"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

// GetStudentsByClass returns the roster of a class, newest first.
func GetStudentsByClass(db *sql.DB, classID string) ([]*models.Student, error) {
	query := `SELECT id, class_id, full_name, date_of_birth, gender, guardian_name, guardian_phone,
			  created_at, updated_at
			  FROM students WHERE class_id = $1 ORDER BY created_at DESC`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.ClassID, &s.FullName, &s.DateOfBirth, &s.Gender,
			&s.GuardianName, &s.GuardianPhone, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentsByClassOrdered returns the roster sorted by name, for the daily
// log pages.
func GetStudentsByClassOrdered(db *sql.DB, classID string) ([]*models.Student, error) {
	query := `SELECT id, class_id, full_name, date_of_birth, gender, guardian_name, guardian_phone,
			  created_at, updated_at
			  FROM students WHERE class_id = $1 ORDER BY full_name`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.ClassID, &s.FullName, &s.DateOfBirth, &s.Gender,
			&s.GuardianName, &s.GuardianPhone, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT id, class_id, full_name, date_of_birth, gender, guardian_name, guardian_phone,
			  created_at, updated_at
			  FROM students WHERE id = $1`

	err := db.QueryRow(query, studentID).Scan(&s.ID, &s.ClassID, &s.FullName, &s.DateOfBirth,
		&s.Gender, &s.GuardianName, &s.GuardianPhone, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}
	return s, nil
}

func CountStudentsInClass(db *sql.DB, classID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE class_id = $1`, classID).Scan(&count)
	return count, err
}

// CreateStudent inserts a student. The transaction counts the roster first
// and refuses to exceed maxStudents, so a full class stays unchanged.
func CreateStudent(db *sql.DB, student *models.Student, maxStudents int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRow(`SELECT COUNT(*) FROM students WHERE class_id = $1`, student.ClassID).Scan(&count)
	if err != nil {
		return err
	}
	if count >= maxStudents {
		return ErrClassFull
	}

	query := `INSERT INTO students (class_id, full_name, date_of_birth, gender, guardian_name, guardian_phone)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query, student.ClassID, student.FullName, student.DateOfBirth,
		student.Gender, student.GuardianName, student.GuardianPhone).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return MapError(err)
	}

	return tx.Commit()
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students
			  SET full_name = $1, date_of_birth = $2, gender = $3,
			      guardian_name = $4, guardian_phone = $5, updated_at = NOW()
			  WHERE id = $6`
	res, err := db.Exec(query, student.FullName, student.DateOfBirth, student.Gender,
		student.GuardianName, student.GuardianPhone, student.ID)
	if err != nil {
		return MapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteStudent(db *sql.DB, studentID string) error {
	res, err := db.Exec(`DELETE FROM students WHERE id = $1`, studentID)
	if err != nil {
		return MapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
