package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

// The built-in fonts only cover latin-1, so every fixed label is written
// without diacritics. Names coming from the database pass through the
// cp1252 translator and degrade gracefully.

// BuildAdminReportPDF renders the school-wide report into a PDF buffer.
func BuildAdminReportPDF(report *models.AdminReport) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	writeHeader(pdf, "BAO CAO TONG QUAN TRUONG")

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, "TONG QUAN")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 6, "Tong so tre:")
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%d", report.TotalStudents))
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 6, "Tong so lop:")
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%d", report.TotalClasses))
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 6, fmt.Sprintf("Doanh thu thang %s:", report.CurrentMonth))
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, formatVND(report.CurrentMonthRevenue))
	pdf.Ln(10)

	writeGenderSection(pdf, report.Gender)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, "SI SO TUNG LOP")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(110, 7, "Lop", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 7, "So tre", "1", 0, "C", true, 0, "")
	pdf.Ln(7)

	pdf.SetFont("Arial", "", 9)
	for _, cs := range report.ClassSizes {
		pdf.CellFormat(110, 6, tr(cs.ClassName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%d", cs.StudentCount), "1", 0, "C", false, 0, "")
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, "DOANH THU THEO THANG")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(60, 7, "Thang", "1", 0, "C", true, 0, "")
	pdf.CellFormat(90, 7, "Doanh thu (VND)", "1", 0, "R", true, 0, "")
	pdf.Ln(7)

	pdf.SetFont("Arial", "", 9)
	if len(report.Revenue) == 0 {
		pdf.CellFormat(150, 6, "Chua co hoa don nao duoc thu", "1", 0, "C", false, 0, "")
		pdf.Ln(6)
	}
	for _, mr := range report.Revenue {
		pdf.CellFormat(60, 6, mr.Month, "1", 0, "C", false, 0, "")
		pdf.CellFormat(90, 6, formatVND(mr.Total), "1", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	writeFooter(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

// BuildClassReportPDF renders one class's month report into a PDF buffer.
func BuildClassReportPDF(report *models.ClassReport) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	writeHeader(pdf, "BAO CAO LOP")

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 6, "Lop:")
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, tr(report.ClassName))
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 6, "Giao vien phu trach:")
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, tr(report.TeacherName))
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 6, "Si so:")
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%d", report.StudentCount))
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 6, fmt.Sprintf("Doanh thu thang %s:", report.Month))
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, formatVND(report.Revenue))
	pdf.Ln(10)

	writeGenderSection(pdf, report.Gender)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("HOA DON THANG %s", report.Month))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(60, 7, "Hoc sinh", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "So bua an", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Tong tien (VND)", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Trang thai", "1", 0, "C", true, 0, "")
	pdf.Ln(7)

	pdf.SetFont("Arial", "", 9)
	if len(report.Invoices) == 0 {
		pdf.CellFormat(160, 6, "Chua co hoa don nao trong thang", "1", 0, "C", false, 0, "")
		pdf.Ln(6)
	}
	for _, inv := range report.Invoices {
		name := ""
		if inv.Student != nil {
			name = inv.Student.FullName
		}
		status := "Chua thu"
		if inv.IsPaid() {
			status = "Da thu"
		}
		pdf.CellFormat(60, 6, tr(name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", inv.MealDays), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, formatVND(inv.TotalAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, status, "1", 0, "C", false, 0, "")
		pdf.Ln(6)
	}

	writeFooter(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func writeHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 8, "TRUONG MAM NON")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Ngay lap: %s", time.Now().Format("02/01/2006")))
	pdf.Ln(4)
	pdf.SetDrawColor(40, 145, 108)
	pdf.SetLineWidth(0.5)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 9, title)
	pdf.Ln(12)
}

func writeGenderSection(pdf *gofpdf.Fpdf, gender models.GenderCount) {
	total := gender.Male + gender.Female

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, "TI LE GIOI TINH")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 6, "Nam:")
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%d (%s)", gender.Male, percent(gender.Male, total)))
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 6, "Nu:")
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%d (%s)", gender.Female, percent(gender.Female, total)))
	pdf.Ln(10)
}

func writeFooter(pdf *gofpdf.Fpdf) {
	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 4, "*** Tai lieu duoc tao tu dong boi he thong quan ly truong mam non ***")
}

func percent(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)*100/float64(total))
}

// formatVND groups digits with dots the way amounts are written locally.
func formatVND(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	neg := false
	if amount < 0 {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
