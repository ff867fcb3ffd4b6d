package health

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/auth"
)

func SetupHealthRoutes(app *fiber.App) {
	pages := app.Group("/teacher/health")
	pages.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleTeacher))
	pages.Get("/", HealthPage)

	api := app.Group("/api/teacher/health")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleTeacher))
	api.Post("/:studentID", UpsertHealthRecordAPI)
}

// parseDate resolves a YYYY-MM-DD query value, falling back to today.
func parseDate(value string) time.Time {
	if value != "" {
		if d, err := time.Parse("2006-01-02", value); err == nil {
			return d
		}
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// HealthPage lists the roster with the day's health records.
func HealthPage(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	db := config.GetDB()
	user := c.Locals("user").(*models.User)
	recordDate := parseDate(c.Query("date"))

	students, err := database.GetStudentsByClassOrdered(db, classroom.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	records, err := database.GetHealthRecordsByDate(db, classroom.ID, recordDate)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("teacher/health/list", fiber.Map{
		"Title":       "Sức khỏe - Trường Mầm Non",
		"CurrentPage": "health",
		"user":        user,
		"classroom":   classroom,
		"recordDate":  recordDate.Format("2006-01-02"),
		"students":    students,
		"records":     records,
	})
}
