package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/auth"
)

func SetupSettingsRoutes(app *fiber.App) {
	pages := app.Group("/admin/settings")
	pages.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	pages.Get("/", SettingsPage)

	api := app.Group("/api/admin/settings")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	api.Get("/", GetSettingsAPI)
	api.Post("/tuition", UpdateTuitionAPI)
	api.Post("/capacity", UpdateCapacityAPI)
}

func SettingsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	s, err := database.GetSettings(config.GetDB())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("admin/settings", fiber.Map{
		"Title":       "Quy định - Trường Mầm Non",
		"CurrentPage": "settings",
		"user":        user,
		"settings":    s,
	})
}
