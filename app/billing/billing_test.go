package billing

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

func testSettings() *models.Settings {
	return &models.Settings{
		ID:                  1,
		TuitionFeeMonthly:   1500000,
		MealPricePerDay:     25000,
		MaxStudentsPerClass: 25,
	}
}

func TestNewCharge(t *testing.T) {
	charge := NewCharge(testSettings(), 5)
	assert.Equal(t, int64(1500000), charge.TuitionFee)
	assert.Equal(t, int64(25000), charge.MealUnitPrice)
	assert.Equal(t, 5, charge.MealDays)
	assert.Equal(t, int64(1625000), charge.Total)
}

func TestNewChargeZeroMealDays(t *testing.T) {
	charge := NewCharge(testSettings(), 0)
	assert.Equal(t, int64(1500000), charge.Total)
}

func TestGenerateOrUpdateInvoiceCreates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, status FROM invoices").
		WithArgs("student-1", "2025-09").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM meal_logs").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery("INSERT INTO invoices").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	inv, err := GenerateOrUpdateInvoice(db, "student-1", "2025-09", testSettings())
	require.NoError(t, err)
	assert.Equal(t, int64(7), inv.ID)
	assert.Equal(t, 5, inv.MealDays)
	assert.Equal(t, int64(1625000), inv.TotalAmount)
	assert.Equal(t, models.InvoiceUnpaid, inv.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateOrUpdateInvoiceRefreshesUnpaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, status FROM invoices").
		WithArgs("student-1", "2025-09").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(3, "UNPAID"))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM meal_logs").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
	mock.ExpectExec("UPDATE invoices").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	inv, err := GenerateOrUpdateInvoice(db, "student-1", "2025-09", testSettings())
	require.NoError(t, err)
	assert.Equal(t, int64(3), inv.ID)
	assert.Equal(t, int64(1750000), inv.TotalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateOrUpdateInvoiceLockedWhenPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, status FROM invoices").
		WithArgs("student-1", "2025-09").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(3, "PAID"))
	mock.ExpectRollback()

	_, err = GenerateOrUpdateInvoice(db, "student-1", "2025-09", testSettings())
	assert.ErrorIs(t, err, database.ErrInvoiceLocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateOrUpdateInvoiceInvalidMonth(t *testing.T) {
	_, err := GenerateOrUpdateInvoice(nil, "student-1", "09/2025", testSettings())
	assert.Error(t, err)
}

func TestGenerateOrUpdateInvoiceRaceSurfacesConflict(t *testing.T) {
	// Two generations racing past the row-lock check both see no row; the
	// loser's insert hits the unique constraint and must come back as the
	// conflict sentinel, not a raw driver error.
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, status FROM invoices").
		WithArgs("student-1", "2025-09").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM meal_logs").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery("INSERT INTO invoices").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_invoice_student_month"})
	mock.ExpectRollback()

	_, err = GenerateOrUpdateInvoice(db, "student-1", "2025-09", testSettings())
	assert.ErrorIs(t, err, database.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmPayment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	paidAt := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT i.student_id, i.billing_month").
		WithArgs(int64(3), "class-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"student_id", "billing_month", "tuition_fee", "meal_unit_price",
			"meal_days", "total_amount", "status",
		}).AddRow("student-1", "2025-09", 1500000, 25000, 5, 1625000, "UNPAID"))
	mock.ExpectQuery("UPDATE invoices").
		WithArgs("teacher-1", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"paid_at"}).AddRow(paidAt))
	mock.ExpectCommit()

	inv, err := ConfirmPayment(db, 3, "class-1", "teacher-1")
	require.NoError(t, err)
	assert.True(t, inv.IsPaid())
	require.NotNil(t, inv.PaidAt)
	assert.Equal(t, paidAt, *inv.PaidAt)
	require.NotNil(t, inv.CollectedBy)
	assert.Equal(t, "teacher-1", *inv.CollectedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmPaymentAlreadyPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT i.student_id, i.billing_month").
		WithArgs(int64(3), "class-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"student_id", "billing_month", "tuition_fee", "meal_unit_price",
			"meal_days", "total_amount", "status",
		}).AddRow("student-1", "2025-09", 1500000, 25000, 5, 1625000, "PAID"))
	mock.ExpectRollback()

	_, err = ConfirmPayment(db, 3, "class-1", "teacher-1")
	assert.ErrorIs(t, err, database.ErrAlreadyPaid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmPaymentOtherClass(t *testing.T) {
	// An invoice whose student sits in another class is invisible to the
	// settling teacher, even inside the transaction.
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT i.student_id, i.billing_month").
		WithArgs(int64(3), "class-2").
		WillReturnRows(sqlmock.NewRows([]string{
			"student_id", "billing_month", "tuition_fee", "meal_unit_price",
			"meal_days", "total_amount", "status",
		}))
	mock.ExpectRollback()

	_, err = ConfirmPayment(db, 3, "class-2", "teacher-2")
	assert.ErrorIs(t, err, database.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmPaymentNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT i.student_id, i.billing_month").
		WithArgs(int64(99), "class-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"student_id", "billing_month", "tuition_fee", "meal_unit_price",
			"meal_days", "total_amount", "status",
		}))
	mock.ExpectRollback()

	_, err = ConfirmPayment(db, 99, "class-1", "teacher-1")
	assert.ErrorIs(t, err, database.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
