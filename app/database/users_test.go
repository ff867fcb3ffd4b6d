package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

func sampleTeacher() *models.User {
	return &models.User{
		Username: "teacher2",
		Password: "$2a$14$hash",
		Role:     models.RoleTeacher,
		FullName: "Cô Mai",
	}
}

func TestCreateTeacherWithClass(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	classID := "class-1"

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("teacher-2", now, now))
	mock.ExpectExec("UPDATE classes").
		WithArgs("teacher-2", "class-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user := sampleTeacher()
	require.NoError(t, CreateTeacher(db, user, &classID))
	assert.Equal(t, "teacher-2", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTeacherClassTaken(t *testing.T) {
	// The assignment only lands on a class without a teacher; zero rows
	// means someone else holds it and the whole create rolls back.
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	classID := "class-1"

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("teacher-2", now, now))
	mock.ExpectExec("UPDATE classes").
		WithArgs("teacher-2", "class-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = CreateTeacher(db, sampleTeacher(), &classID)
	assert.ErrorIs(t, err, ErrClassTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTeacherMovesAssignment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	classID := "class-2"

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users SET full_name").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE classes SET teacher_id = NULL").
		WithArgs("teacher-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE classes SET teacher_id = \\$1").
		WithArgs("teacher-1", "class-2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, UpdateTeacher(db, "teacher-1", "Cô Lan", nil, "", &classID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTeacherTargetClassTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	classID := "class-2"

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users SET full_name").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE classes SET teacher_id = NULL").
		WithArgs("teacher-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE classes SET teacher_id = \\$1").
		WithArgs("teacher-1", "class-2").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = UpdateTeacher(db, "teacher-1", "Cô Lan", nil, "", &classID)
	assert.ErrorIs(t, err, ErrClassTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}
