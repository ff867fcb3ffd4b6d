package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

func TestCreateClassWithTeacher(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	teacherID := "teacher-1"

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users").
		WithArgs("teacher-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("teacher-1"))
	mock.ExpectQuery("SELECT id FROM classes").
		WithArgs("teacher-1", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("INSERT INTO classes").
		WithArgs("Lá 1", "teacher-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("class-1", now, now))
	mock.ExpectCommit()

	class := &models.Class{Name: "Lá 1", TeacherID: &teacherID}
	require.NoError(t, CreateClass(db, class))
	assert.Equal(t, "class-1", class.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClassTeacherAlreadyAssigned(t *testing.T) {
	// A teacher holding another class cannot be given a second one.
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	teacherID := "teacher-1"

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users").
		WithArgs("teacher-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("teacher-1"))
	mock.ExpectQuery("SELECT id FROM classes").
		WithArgs("teacher-1", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("class-other"))
	mock.ExpectRollback()

	err = CreateClass(db, &models.Class{Name: "Lá 2", TeacherID: &teacherID})
	assert.ErrorIs(t, err, ErrTeacherAssigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateClassKeepsOwnTeacher(t *testing.T) {
	// Reassigning the same teacher to the same class is not a conflict;
	// the class under edit is excluded from the ownership check.
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	teacherID := "teacher-1"

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users").
		WithArgs("teacher-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("teacher-1"))
	mock.ExpectQuery("SELECT id FROM classes").
		WithArgs("teacher-1", "class-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("UPDATE classes").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, UpdateClass(db, "class-1", "Lá 1B", &teacherID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateClassTeacherAssignedElsewhere(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	teacherID := "teacher-1"

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users").
		WithArgs("teacher-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("teacher-1"))
	mock.ExpectQuery("SELECT id FROM classes").
		WithArgs("teacher-1", "class-2").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("class-1"))
	mock.ExpectRollback()

	err = UpdateClass(db, "class-2", "Lá 2", &teacherID)
	assert.ErrorIs(t, err, ErrTeacherAssigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClassUnknownTeacher(t *testing.T) {
	// Assigning a user id that is not a TEACHER account fails the
	// assignability check up front.
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	teacherID := "admin-1"

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users").
		WithArgs("admin-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err = CreateClass(db, &models.Class{Name: "Lá 3", TeacherID: &teacherID})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
