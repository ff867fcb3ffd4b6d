package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

func TestBuildAdminReportPDF(t *testing.T) {
	report := &models.AdminReport{
		TotalStudents:       42,
		TotalClasses:        3,
		CurrentMonth:        "2025-09",
		CurrentMonthRevenue: 4875000,
		Gender:              models.GenderCount{Male: 22, Female: 20},
		ClassSizes: []models.ClassSize{
			{ClassID: "c-1", ClassName: "Lá 1", StudentCount: 15},
			{ClassID: "c-2", ClassName: "Mầm 2", StudentCount: 27},
		},
		Revenue: []models.MonthRevenue{
			{Month: "2025-09", Total: 4875000},
			{Month: "2025-08", Total: 3250000},
		},
	}

	buf, err := BuildAdminReportPDF(report)
	require.NoError(t, err)
	assert.True(t, buf.Len() > 0)
	// PDF files open with the %PDF magic.
	assert.Equal(t, "%PDF", buf.String()[:4])
}

func TestBuildAdminReportPDFEmpty(t *testing.T) {
	buf, err := BuildAdminReportPDF(&models.AdminReport{CurrentMonth: "2025-09"})
	require.NoError(t, err)
	assert.True(t, buf.Len() > 0)
}

func TestBuildClassReportPDF(t *testing.T) {
	paidAt := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	report := &models.ClassReport{
		ClassID:      "c-1",
		ClassName:    "Lá 1",
		TeacherName:  "Cô Lan",
		Month:        "2025-09",
		StudentCount: 2,
		Gender:       models.GenderCount{Male: 1, Female: 1},
		Revenue:      1625000,
		Invoices: []*models.Invoice{
			{
				ID: 1, StudentID: "s-1", BillingMonth: "2025-09",
				MealDays: 5, TotalAmount: 1625000,
				Status: models.InvoicePaid, PaidAt: &paidAt,
				Student: &models.Student{ID: "s-1", FullName: "Nguyễn Gia Hân"},
			},
			{
				ID: 2, StudentID: "s-2", BillingMonth: "2025-09",
				MealDays: 4, TotalAmount: 1600000,
				Status: models.InvoiceUnpaid,
				Student: &models.Student{ID: "s-2", FullName: "Trần Minh Khang"},
			},
		},
	}

	buf, err := BuildClassReportPDF(report)
	require.NoError(t, err)
	assert.True(t, buf.Len() > 0)
	assert.Equal(t, "%PDF", buf.String()[:4])
}

func TestBuildClassReportPDFNoInvoices(t *testing.T) {
	buf, err := BuildClassReportPDF(&models.ClassReport{
		ClassName: "Lá 1", TeacherName: "Cô Lan", Month: "2025-09",
	})
	require.NoError(t, err)
	assert.True(t, buf.Len() > 0)
}

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0", formatVND(0))
	assert.Equal(t, "500", formatVND(500))
	assert.Equal(t, "25.000", formatVND(25000))
	assert.Equal(t, "1.625.000", formatVND(1625000))
	assert.Equal(t, "-1.500.000", formatVND(-1500000))
}
