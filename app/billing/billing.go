// Package billing computes monthly tuition charges and drives the invoice
// lifecycle: generate or refresh an UNPAID snapshot, refuse changes to a
// settled invoice, confirm payment exactly once.
package billing

import (
	"database/sql"
	"time"

	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

// Charge is the monthly amount owed by one student. Total is always
// TuitionFee + MealDays * MealUnitPrice.
type Charge struct {
	TuitionFee    int64 `json:"tuition_fee"`
	MealUnitPrice int64 `json:"meal_unit_price"`
	MealDays      int   `json:"meal_days"`
	Total         int64 `json:"total"`
}

// NewCharge builds a Charge from the configured rates and a meal-day count.
func NewCharge(settings *models.Settings, mealDays int) Charge {
	c := Charge{
		TuitionFee:    settings.TuitionFeeMonthly,
		MealUnitPrice: settings.MealPricePerDay,
		MealDays:      mealDays,
	}
	c.Total = c.TuitionFee + int64(c.MealDays)*c.MealUnitPrice
	return c
}

// ComputeMonthlyCharge projects what a student owes for a billing month from
// current meal logs and rates. Nothing is persisted.
func ComputeMonthlyCharge(db *sql.DB, studentID, month string, settings *models.Settings) (Charge, error) {
	start, end, err := MonthRange(month)
	if err != nil {
		return Charge{}, err
	}
	mealDays, err := database.CountMealDays(db, studentID, start, end)
	if err != nil {
		return Charge{}, err
	}
	return NewCharge(settings, mealDays), nil
}

// GenerateOrUpdateInvoice recomputes the charge and writes it as the
// (student, month) invoice snapshot. A PAID invoice is never touched; the
// call fails with ErrInvoiceLocked. The row is locked for the duration of
// the transaction so two generations cannot interleave.
func GenerateOrUpdateInvoice(db *sql.DB, studentID, month string, settings *models.Settings) (*models.Invoice, error) {
	start, end, err := MonthRange(month)
	if err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var existingID int64
	var status models.InvoiceStatus
	err = tx.QueryRow(`SELECT id, status FROM invoices
					   WHERE student_id = $1 AND billing_month = $2 FOR UPDATE`,
		studentID, month).Scan(&existingID, &status)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	if err == nil && status == models.InvoicePaid {
		return nil, database.ErrInvoiceLocked
	}

	var mealDays int
	err = tx.QueryRow(`SELECT COUNT(*) FROM meal_logs
					   WHERE student_id = $1 AND ate = TRUE AND log_date >= $2 AND log_date <= $3`,
		studentID, start, end).Scan(&mealDays)
	if err != nil {
		return nil, err
	}

	charge := NewCharge(settings, mealDays)
	inv := &models.Invoice{
		StudentID:     studentID,
		BillingMonth:  month,
		TuitionFee:    charge.TuitionFee,
		MealUnitPrice: charge.MealUnitPrice,
		MealDays:      charge.MealDays,
		TotalAmount:   charge.Total,
		Status:        models.InvoiceUnpaid,
	}

	if existingID == 0 {
		// Two generations can race past the FOR UPDATE when the row does
		// not exist yet; the unique constraint catches the loser.
		err = tx.QueryRow(`INSERT INTO invoices
						   (student_id, billing_month, tuition_fee, meal_unit_price, meal_days, total_amount, status)
						   VALUES ($1, $2, $3, $4, $5, $6, 'UNPAID')
						   RETURNING id`,
			studentID, month, charge.TuitionFee, charge.MealUnitPrice, charge.MealDays, charge.Total,
		).Scan(&inv.ID)
	} else {
		inv.ID = existingID
		_, err = tx.Exec(`UPDATE invoices
						  SET tuition_fee = $1, meal_unit_price = $2, meal_days = $3, total_amount = $4
						  WHERE id = $5`,
			charge.TuitionFee, charge.MealUnitPrice, charge.MealDays, charge.Total, existingID)
	}
	if err != nil {
		return nil, database.MapError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return inv, nil
}

// ConfirmPayment settles an UNPAID invoice: status PAID, payment timestamp,
// collecting user. The invoice must belong to a student of classID; the
// check runs inside the transaction so a roster move cannot slip between an
// ownership read and the settle. Confirming an already-PAID invoice returns
// ErrAlreadyPaid and changes nothing.
func ConfirmPayment(db *sql.DB, invoiceID int64, classID, actorID string) (*models.Invoice, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	inv := &models.Invoice{ID: invoiceID}
	err = tx.QueryRow(`SELECT i.student_id, i.billing_month, i.tuition_fee, i.meal_unit_price,
					   i.meal_days, i.total_amount, i.status
					   FROM invoices i
					   JOIN students s ON s.id = i.student_id
					   WHERE i.id = $1 AND s.class_id = $2
					   FOR UPDATE OF i`, invoiceID, classID).
		Scan(&inv.StudentID, &inv.BillingMonth, &inv.TuitionFee, &inv.MealUnitPrice,
			&inv.MealDays, &inv.TotalAmount, &inv.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrNotFound
		}
		return nil, err
	}

	if inv.Status == models.InvoicePaid {
		return nil, database.ErrAlreadyPaid
	}

	var paidAt time.Time
	err = tx.QueryRow(`UPDATE invoices
					   SET status = 'PAID', paid_at = NOW(), collected_by = $1
					   WHERE id = $2
					   RETURNING paid_at`, actorID, invoiceID).Scan(&paidAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	inv.Status = models.InvoicePaid
	inv.PaidAt = &paidAt
	inv.CollectedBy = &actorID
	return inv, nil
}
