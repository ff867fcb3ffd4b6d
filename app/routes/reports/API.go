package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/billing"
	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/auth"
)

func AdminReportAPI(c *fiber.Ctx) error {
	report, err := buildAdminReport(0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Không thể tổng hợp báo cáo",
		})
	}
	return c.JSON(report)
}

func ClassReportAPI(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	user := c.Locals("user").(*models.User)
	month := billing.NormalizeMonth(c.Query("month"))

	report, err := buildClassReport(classroom, user, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Không thể tổng hợp báo cáo",
		})
	}
	return c.JSON(report)
}

// buildAdminReport assembles the school-wide figures. revenueLimit bounds
// the revenue-by-month table, 0 meaning every settled month.
func buildAdminReport(revenueLimit int) (*models.AdminReport, error) {
	db := config.GetDB()

	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return nil, err
	}

	gender, err := database.GetGenderCounts(db, "")
	if err != nil {
		return nil, err
	}

	sizes, err := database.GetClassSizes(db)
	if err != nil {
		return nil, err
	}

	month := billing.CurrentMonth()
	monthRevenue, err := database.GetMonthRevenue(db, month, "")
	if err != nil {
		return nil, err
	}

	revenue, err := database.GetRevenueByMonth(db, revenueLimit)
	if err != nil {
		return nil, err
	}

	return &models.AdminReport{
		TotalStudents:       stats.TotalStudents,
		TotalClasses:        stats.TotalClasses,
		CurrentMonth:        month,
		CurrentMonthRevenue: monthRevenue,
		Gender:              gender,
		ClassSizes:          sizes,
		Revenue:             revenue,
	}, nil
}

func buildClassReport(classroom *models.Class, teacher *models.User, month string) (*models.ClassReport, error) {
	db := config.GetDB()

	count, err := database.CountStudentsInClass(db, classroom.ID)
	if err != nil {
		return nil, err
	}

	gender, err := database.GetGenderCounts(db, classroom.ID)
	if err != nil {
		return nil, err
	}

	revenue, err := database.GetMonthRevenue(db, month, classroom.ID)
	if err != nil {
		return nil, err
	}

	invoices, err := database.ListInvoicesByClassMonth(db, classroom.ID, month)
	if err != nil {
		return nil, err
	}

	return &models.ClassReport{
		ClassID:      classroom.ID,
		ClassName:    classroom.Name,
		TeacherName:  teacher.FullName,
		Month:        month,
		StudentCount: count,
		Gender:       gender,
		Revenue:      revenue,
		Invoices:     invoices,
	}, nil
}
