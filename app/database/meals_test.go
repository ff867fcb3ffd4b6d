package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertMealLog(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logDate := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM invoices").
		WithArgs("student-1", "2025-09").
		WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectExec("INSERT INTO meal_logs").
		WithArgs("student-1", logDate, true).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, UpsertMealLog(db, "student-1", logDate, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertMealLogUnpaidInvoiceAllows(t *testing.T) {
	// An UNPAID invoice for the month does not freeze attendance, it only
	// holds the lock until commit.
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logDate := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM invoices").
		WithArgs("student-1", "2025-09").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("UNPAID"))
	mock.ExpectExec("INSERT INTO meal_logs").
		WithArgs("student-1", logDate, false).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, UpsertMealLog(db, "student-1", logDate, false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertMealLogSettledMonthLocked(t *testing.T) {
	// Once the month's invoice is PAID every meal write for that month is
	// refused; the log date decides the month that gets checked.
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM invoices").
		WithArgs("student-1", "2025-09").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("PAID"))
	mock.ExpectRollback()

	err = UpsertMealLog(db, "student-1", time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), true)
	assert.ErrorIs(t, err, ErrMealsLocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}
