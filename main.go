package main

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/auth"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/classes"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/dashboard"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/health"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/meals"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/reports"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/settings"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/students"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/teachers"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/tuition"
)

// customErrorHandler renders error pages for web requests and JSON for
// anything under /api.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Không tìm thấy trang - Trường Mầm Non",
			"CurrentPage": "",
		})
	case 403:
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Không có quyền - Trường Mầm Non",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Không có quyền truy cập",
			"ErrorMessage": "Bạn không có quyền truy cập trang này.",
		})
	case 401:
		return c.Redirect("/auth/login")
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Lỗi hệ thống - Trường Mầm Non",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Lỗi hệ thống",
			"ErrorMessage": "Hệ thống đang gặp sự cố, vui lòng thử lại sau.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Lỗi - Trường Mầm Non",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "Đã xảy ra lỗi",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	config.Load()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})
	engine.Reload(config.AppConfig.Debug)

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	classes.SetupClassesRoutes(app)
	teachers.SetupTeachersRoutes(app)
	settings.SetupSettingsRoutes(app)
	students.SetupStudentsRoutes(app)
	health.SetupHealthRoutes(app)
	meals.SetupMealsRoutes(app)
	tuition.SetupTuitionRoutes(app)
	reports.SetupReportsRoutes(app)

	// Catch-all 404, must register last
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Không tìm thấy trang")
	})

	addr := config.AppConfig.Host + ":" + config.AppConfig.Port
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
