package database

import (
	"database/sql"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

func GetInvoiceByID(db *sql.DB, invoiceID int64) (*models.Invoice, error) {
	inv := &models.Invoice{Student: &models.Student{}}
	query := `SELECT i.id, i.student_id, i.billing_month, i.tuition_fee, i.meal_unit_price,
			  i.meal_days, i.total_amount, i.status, i.paid_at, i.collected_by,
			  s.id, s.class_id, s.full_name
			  FROM invoices i
			  JOIN students s ON s.id = i.student_id
			  WHERE i.id = $1`

	err := db.QueryRow(query, invoiceID).Scan(
		&inv.ID, &inv.StudentID, &inv.BillingMonth, &inv.TuitionFee, &inv.MealUnitPrice,
		&inv.MealDays, &inv.TotalAmount, &inv.Status, &inv.PaidAt, &inv.CollectedBy,
		&inv.Student.ID, &inv.Student.ClassID, &inv.Student.FullName,
	)
	if err != nil {
		return nil, MapError(err)
	}
	return inv, nil
}

// GetInvoicesByClassMonth returns a class's invoices for one billing month,
// keyed by student id.
func GetInvoicesByClassMonth(db *sql.DB, classID, billingMonth string) (map[string]*models.Invoice, error) {
	query := `SELECT i.id, i.student_id, i.billing_month, i.tuition_fee, i.meal_unit_price,
			  i.meal_days, i.total_amount, i.status, i.paid_at, i.collected_by
			  FROM invoices i
			  JOIN students s ON s.id = i.student_id
			  WHERE s.class_id = $1 AND i.billing_month = $2`

	rows, err := db.Query(query, classID, billingMonth)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make(map[string]*models.Invoice)
	for rows.Next() {
		inv := &models.Invoice{}
		if err := rows.Scan(&inv.ID, &inv.StudentID, &inv.BillingMonth, &inv.TuitionFee,
			&inv.MealUnitPrice, &inv.MealDays, &inv.TotalAmount, &inv.Status,
			&inv.PaidAt, &inv.CollectedBy); err != nil {
			return nil, err
		}
		invoices[inv.StudentID] = inv
	}
	return invoices, rows.Err()
}

// ListInvoicesByClassMonth returns the month's invoices with student names,
// unpaid first then by student name, for the class report.
func ListInvoicesByClassMonth(db *sql.DB, classID, billingMonth string) ([]*models.Invoice, error) {
	query := `SELECT i.id, i.student_id, i.billing_month, i.tuition_fee, i.meal_unit_price,
			  i.meal_days, i.total_amount, i.status, i.paid_at, i.collected_by,
			  s.full_name
			  FROM invoices i
			  JOIN students s ON s.id = i.student_id
			  WHERE s.class_id = $1 AND i.billing_month = $2
			  ORDER BY i.status DESC, s.full_name`

	rows, err := db.Query(query, classID, billingMonth)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		inv := &models.Invoice{Student: &models.Student{}}
		if err := rows.Scan(&inv.ID, &inv.StudentID, &inv.BillingMonth, &inv.TuitionFee,
			&inv.MealUnitPrice, &inv.MealDays, &inv.TotalAmount, &inv.Status,
			&inv.PaidAt, &inv.CollectedBy, &inv.Student.FullName); err != nil {
			return nil, err
		}
		inv.Student.ID = inv.StudentID
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}
