package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	pages := app.Group("/teacher/students")
	pages.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleTeacher))
	pages.Get("/", StudentsPage)

	api := app.Group("/api/teacher/students")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleTeacher))
	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentByIDAPI)
	api.Post("/", CreateStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)
}

func StudentsPage(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	db := config.GetDB()
	user := c.Locals("user").(*models.User)

	students, err := database.GetStudentsByClass(db, classroom.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	settings, err := database.GetSettings(db)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("teacher/students/list", fiber.Map{
		"Title":       "Học sinh - Trường Mầm Non",
		"CurrentPage": "students",
		"user":        user,
		"classroom":   classroom,
		"students":    students,
		"maxStudents": settings.MaxStudentsPerClass,
	})
}
