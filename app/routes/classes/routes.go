package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/auth"
)

func SetupClassesRoutes(app *fiber.App) {
	pages := app.Group("/admin/classes")
	pages.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	pages.Get("/", ClassesPage)

	api := app.Group("/api/admin/classes")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	api.Get("/", GetClassesAPI)
	api.Post("/", CreateClassAPI)
	api.Put("/:id", UpdateClassAPI)
	api.Delete("/:id", DeleteClassAPI)
}

func ClassesPage(c *fiber.Ctx) error {
	db := config.GetDB()
	user := c.Locals("user").(*models.User)

	classes, err := database.GetClasses(db)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	unassigned, err := database.GetUnassignedTeachers(db)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	allTeachers, err := database.GetTeachers(db)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("admin/classes/list", fiber.Map{
		"Title":       "Quản lý lớp - Trường Mầm Non",
		"CurrentPage": "classes",
		"user":        user,
		"classes":     classes,
		"teachers":    unassigned,
		"allTeachers": allTeachers,
	})
}
