package database

import (
	"database/sql"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

// GetClasses returns all classes with teacher name and roster size, newest
// first.
func GetClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT c.id, c.name, c.teacher_id, c.created_at, c.updated_at,
			  u.full_name, COUNT(s.id)
			  FROM classes c
			  LEFT JOIN users u ON u.id = c.teacher_id
			  LEFT JOIN students s ON s.class_id = c.id
			  GROUP BY c.id, c.name, c.teacher_id, c.created_at, c.updated_at, u.full_name
			  ORDER BY c.created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		c := &models.Class{}
		var teacherName sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.TeacherID, &c.CreatedAt, &c.UpdatedAt,
			&teacherName, &c.StudentCount); err != nil {
			return nil, err
		}
		if c.TeacherID != nil && teacherName.Valid {
			c.Teacher = &models.User{ID: *c.TeacherID, FullName: teacherName.String, Role: models.RoleTeacher}
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

func GetClassByID(db *sql.DB, classID string) (*models.Class, error) {
	c := &models.Class{}
	query := `SELECT id, name, teacher_id, created_at, updated_at FROM classes WHERE id = $1`

	err := db.QueryRow(query, classID).Scan(&c.ID, &c.Name, &c.TeacherID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}
	return c, nil
}

// GetClassByTeacher returns the class owned by a teacher, or ErrNotFound when
// the teacher is unassigned.
func GetClassByTeacher(db *sql.DB, teacherID string) (*models.Class, error) {
	c := &models.Class{}
	query := `SELECT id, name, teacher_id, created_at, updated_at FROM classes WHERE teacher_id = $1`

	err := db.QueryRow(query, teacherID).Scan(&c.ID, &c.Name, &c.TeacherID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}
	return c, nil
}

// GetUnassignedClasses returns classes without a teacher, for assignment
// dropdowns.
func GetUnassignedClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT id, name FROM classes WHERE teacher_id IS NULL ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		c := &models.Class{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// CreateClass inserts a class. When a teacher is given, the transaction first
// verifies the teacher exists and is not already assigned elsewhere; the
// unique index on teacher_id backs the check.
func CreateClass(db *sql.DB, class *models.Class) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if class.TeacherID != nil {
		if err := checkTeacherAssignable(tx, *class.TeacherID, ""); err != nil {
			return err
		}
	}

	query := `INSERT INTO classes (name, teacher_id) VALUES ($1, $2)
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query, class.Name, class.TeacherID).
		Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		return MapError(err)
	}

	return tx.Commit()
}

// UpdateClass renames a class and reassigns its teacher.
func UpdateClass(db *sql.DB, classID, name string, teacherID *string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if teacherID != nil {
		if err := checkTeacherAssignable(tx, *teacherID, classID); err != nil {
			return err
		}
	}

	res, err := tx.Exec(`UPDATE classes SET name = $1, teacher_id = $2, updated_at = NOW()
						 WHERE id = $3`, name, teacherID, classID)
	if err != nil {
		return MapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// DeleteClass removes a class. The RESTRICT foreign key refuses deletion
// while students remain, surfaced as ErrClassHasStudents.
func DeleteClass(db *sql.DB, classID string) error {
	res, err := db.Exec(`DELETE FROM classes WHERE id = $1`, classID)
	if err != nil {
		return MapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// checkTeacherAssignable verifies the user is a TEACHER and owns no class
// other than excludeClassID.
func checkTeacherAssignable(tx *sql.Tx, teacherID, excludeClassID string) error {
	var id string
	err := tx.QueryRow(`SELECT id FROM users WHERE id = $1 AND role = 'TEACHER'`, teacherID).Scan(&id)
	if err != nil {
		return MapError(err)
	}

	var existing string
	err = tx.QueryRow(`SELECT id FROM classes WHERE teacher_id = $1 AND id != $2`,
		teacherID, excludeClassID).Scan(&existing)
	if err == nil {
		return ErrTeacherAssigned
	}
	if err != sql.ErrNoRows {
		return err
	}
	return nil
}
