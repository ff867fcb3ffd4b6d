package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	admin := app.Group("/admin")
	admin.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	admin.Get("/", AdminDashboard)

	teacher := app.Group("/teacher")
	teacher.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleTeacher))
	teacher.Get("/", TeacherDashboard)

	api := app.Group("/api/admin/dashboard")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	api.Get("/stats", GetDashboardStatsAPI)
}
