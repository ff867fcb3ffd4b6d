package reports

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/billing"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/auth"
)

func SetupReportsRoutes(app *fiber.App) {
	admin := app.Group("/admin/reports")
	admin.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	admin.Get("/", AdminReportsPage)
	admin.Get("/export-pdf", ExportAdminReportPDF)

	teacher := app.Group("/teacher/reports")
	teacher.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleTeacher))
	teacher.Get("/", TeacherReportsPage)
	teacher.Get("/export-pdf", ExportClassReportPDF)

	adminAPI := app.Group("/api/admin/reports")
	adminAPI.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	adminAPI.Get("/", AdminReportAPI)

	teacherAPI := app.Group("/api/teacher/reports")
	teacherAPI.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleTeacher))
	teacherAPI.Get("/", ClassReportAPI)
}

func AdminReportsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	report, err := buildAdminReport(0)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("admin/reports", fiber.Map{
		"Title":       "Báo cáo - Trường Mầm Non",
		"CurrentPage": "reports",
		"user":        user,
		"report":      report,
	})
}

func TeacherReportsPage(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	user := c.Locals("user").(*models.User)
	month := billing.NormalizeMonth(c.Query("month"))

	report, err := buildClassReport(classroom, user, month)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("teacher/reports", fiber.Map{
		"Title":       "Báo cáo lớp - Trường Mầm Non",
		"CurrentPage": "reports",
		"user":        user,
		"classroom":   classroom,
		"month":       month,
		"report":      report,
	})
}

// ExportAdminReportPDF streams the school-wide report as a PDF download.
// The revenue table covers the six most recent settled months.
func ExportAdminReportPDF(c *fiber.Ctx) error {
	report, err := buildAdminReport(6)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	buf, err := BuildAdminReportPDF(report)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	filename := fmt.Sprintf("bao_cao_admin_%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}

// ExportClassReportPDF streams the class month report as a PDF download.
func ExportClassReportPDF(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	user := c.Locals("user").(*models.User)
	month := billing.NormalizeMonth(c.Query("month"))

	report, err := buildClassReport(classroom, user, month)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	buf, err := BuildClassReportPDF(report)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	filename := fmt.Sprintf("bao_cao_%s_%s.pdf", classroom.Name, month)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}
