package database

import (
	"database/sql"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password, role, full_name, phone, created_at, updated_at
			  FROM users WHERE username = $1`

	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.Role,
		&user.FullName, &user.Phone, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, MapError(err)
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password, role, full_name, phone, created_at, updated_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.Password, &user.Role,
		&user.FullName, &user.Phone, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, MapError(err)
	}
	return user, nil
}

// GetTeachers returns all TEACHER accounts with their assigned class, newest
// first.
func GetTeachers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT u.id, u.username, u.full_name, u.phone, u.created_at,
			  c.id, c.name
			  FROM users u
			  LEFT JOIN classes c ON c.teacher_id = u.id
			  WHERE u.role = 'TEACHER'
			  ORDER BY u.created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.User
	for rows.Next() {
		t := &models.User{Role: models.RoleTeacher}
		var classID, className sql.NullString
		if err := rows.Scan(&t.ID, &t.Username, &t.FullName, &t.Phone, &t.CreatedAt,
			&classID, &className); err != nil {
			return nil, err
		}
		if classID.Valid {
			id := classID.String
			t.Class = &models.Class{ID: id, Name: className.String, TeacherID: &t.ID}
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// GetUnassignedTeachers returns TEACHER accounts without a class, for
// assignment dropdowns.
func GetUnassignedTeachers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT u.id, u.username, u.full_name
			  FROM users u
			  LEFT JOIN classes c ON c.teacher_id = u.id
			  WHERE u.role = 'TEACHER' AND c.id IS NULL
			  ORDER BY u.full_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.User
	for rows.Next() {
		t := &models.User{Role: models.RoleTeacher}
		if err := rows.Scan(&t.ID, &t.Username, &t.FullName); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// CreateTeacher inserts a TEACHER account and optionally assigns it to an
// unassigned class, in one transaction.
func CreateTeacher(db *sql.DB, user *models.User, classID *string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO users (username, password, role, full_name, phone)
			  VALUES ($1, $2, 'TEACHER', $3, $4)
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query, user.Username, user.Password, user.FullName, user.Phone).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return MapError(err)
	}

	if classID != nil {
		res, err := tx.Exec(`UPDATE classes SET teacher_id = $1, updated_at = NOW()
							 WHERE id = $2 AND teacher_id IS NULL`, user.ID, *classID)
		if err != nil {
			return MapError(err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrClassTaken
		}
	}

	return tx.Commit()
}

// UpdateTeacher updates profile fields, optionally the password hash, and
// moves the class assignment. Passing a nil classID unassigns the teacher.
func UpdateTeacher(db *sql.DB, teacherID, fullName string, phone *string, passwordHash string, classID *string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE users SET full_name = $1, phone = $2, updated_at = NOW()
						 WHERE id = $3 AND role = 'TEACHER'`, fullName, phone, teacherID)
	if err != nil {
		return MapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if passwordHash != "" {
		if _, err := tx.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`,
			passwordHash, teacherID); err != nil {
			return MapError(err)
		}
	}

	// Release the current assignment before applying the new one.
	if _, err := tx.Exec(`UPDATE classes SET teacher_id = NULL, updated_at = NOW()
						  WHERE teacher_id = $1`, teacherID); err != nil {
		return MapError(err)
	}

	if classID != nil {
		res, err := tx.Exec(`UPDATE classes SET teacher_id = $1, updated_at = NOW()
							 WHERE id = $2 AND teacher_id IS NULL`, teacherID, *classID)
		if err != nil {
			return MapError(err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrClassTaken
		}
	}

	return tx.Commit()
}

func DeleteTeacher(db *sql.DB, teacherID string) error {
	res, err := db.Exec(`DELETE FROM users WHERE id = $1 AND role = 'TEACHER'`, teacherID)
	if err != nil {
		return MapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}
