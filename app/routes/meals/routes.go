package meals

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/billing"
	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/auth"
)

func SetupMealsRoutes(app *fiber.App) {
	pages := app.Group("/teacher/meals")
	pages.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleTeacher))
	pages.Get("/", MealsPage)

	api := app.Group("/api/teacher/meals")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleTeacher))
	api.Post("/", SaveMealLogsAPI)
}

// parseDate resolves a YYYY-MM-DD value, falling back to today.
func parseDate(value string) time.Time {
	if value != "" {
		if d, err := time.Parse("2006-01-02", value); err == nil {
			return d
		}
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// MealsPage lists the roster with the day's meal flags; students whose month
// is already settled are marked locked.
func MealsPage(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	db := config.GetDB()
	user := c.Locals("user").(*models.User)
	logDate := parseDate(c.Query("date"))

	students, err := database.GetStudentsByClassOrdered(db, classroom.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	logs, err := database.GetMealLogsByDate(db, classroom.ID, logDate)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	locked, err := database.GetLockedStudentIDs(db, classroom.ID, logDate.Format(billing.MonthKeyLayout))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("teacher/meals/list", fiber.Map{
		"Title":       "Ăn uống - Trường Mầm Non",
		"CurrentPage": "meals",
		"user":        user,
		"classroom":   classroom,
		"logDate":     logDate.Format("2006-01-02"),
		"students":    students,
		"logs":        logs,
		"locked":      locked,
	})
}
