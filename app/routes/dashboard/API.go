package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

// AdminDashboard renders the admin landing page with the headline counts.
func AdminDashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("admin/dashboard", fiber.Map{
		"Title":        "Bảng điều khiển - Trường Mầm Non",
		"CurrentPage":  "dashboard",
		"user":         user,
		"ClassCount":   stats.TotalClasses,
		"StudentCount": stats.TotalStudents,
		"TeacherCount": stats.TotalTeachers,
	})
}

// TeacherDashboard renders the teacher landing page: the owned class and its
// roster size, or the unassigned page.
func TeacherDashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	classroom, err := database.GetClassByTeacher(config.GetDB(), user.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Render("teacher/no_class", fiber.Map{
				"Title": "Chưa có lớp - Trường Mầm Non",
				"user":  user,
			})
		}
		return fiber.ErrInternalServerError
	}

	count, err := database.CountStudentsInClass(config.GetDB(), classroom.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("teacher/dashboard", fiber.Map{
		"Title":        "Lớp của tôi - Trường Mầm Non",
		"CurrentPage":  "dashboard",
		"user":         user,
		"classroom":    classroom,
		"StudentCount": count,
	})
}

// GetDashboardStatsAPI returns the admin dashboard statistics as JSON.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch dashboard statistics",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
