package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

func sampleStudent() *models.Student {
	return &models.Student{
		ClassID:       "class-1",
		FullName:      "Nguyễn Gia Hân",
		DateOfBirth:   time.Date(2021, 3, 12, 0, 0, 0, 0, time.UTC),
		Gender:        models.Female,
		GuardianName:  "Nguyễn Văn An",
		GuardianPhone: "0901234567",
	}
}

func TestCreateStudent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM students").
		WithArgs("class-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(24))
	mock.ExpectQuery("INSERT INTO students").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("student-1", now, now))
	mock.ExpectCommit()

	student := sampleStudent()
	require.NoError(t, CreateStudent(db, student, 25))
	assert.Equal(t, "student-1", student.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStudentClassFull(t *testing.T) {
	// At capacity the transaction stops before the insert, so the roster
	// count cannot change.
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM students").
		WithArgs("class-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectRollback()

	err = CreateStudent(db, sampleStudent(), 25)
	assert.ErrorIs(t, err, ErrClassFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStudentOverCapacity(t *testing.T) {
	// A lowered capacity limit also rejects when the roster already
	// exceeds it.
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM students").
		WithArgs("class-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(30))
	mock.ExpectRollback()

	err = CreateStudent(db, sampleStudent(), 25)
	assert.ErrorIs(t, err, ErrClassFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}
