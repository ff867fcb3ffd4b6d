package teachers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/auth"
)

func SetupTeachersRoutes(app *fiber.App) {
	pages := app.Group("/admin/teachers")
	pages.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	pages.Get("/", TeachersPage)

	api := app.Group("/api/admin/teachers")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	api.Get("/", GetTeachersAPI)
	api.Post("/", CreateTeacherAPI)
	api.Put("/:id", UpdateTeacherAPI)
	api.Delete("/:id", DeleteTeacherAPI)
}

func TeachersPage(c *fiber.Ctx) error {
	db := config.GetDB()
	user := c.Locals("user").(*models.User)

	teachers, err := database.GetTeachers(db)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	classesUnassigned, err := database.GetUnassignedClasses(db)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("admin/teachers/list", fiber.Map{
		"Title":             "Quản lý giáo viên - Trường Mầm Non",
		"CurrentPage":       "teachers",
		"user":              user,
		"teachers":          teachers,
		"classesUnassigned": classesUnassigned,
	})
}
