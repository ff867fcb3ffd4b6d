package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

// OwnClass resolves the logged-in teacher's class. When the teacher has no
// class the response is written here (the unassigned page, or a JSON message
// for API calls) and a nil class is returned; callers just return the error.
func OwnClass(c *fiber.Ctx) (*models.Class, error) {
	user := c.Locals("user").(*models.User)

	classroom, err := database.GetClassByTeacher(config.GetDB(), user.ID)
	if err == nil {
		return classroom, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, fiber.ErrInternalServerError
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return nil, c.Status(409).JSON(fiber.Map{
			"error":      "Bạn chưa được phân công lớp",
			"unassigned": true,
		})
	}
	return nil, c.Render("teacher/no_class", fiber.Map{
		"Title": "Chưa có lớp - Trường Mầm Non",
		"user":  user,
	})
}

// OwnStudent loads a student and verifies it belongs to the class. Returns
// ErrNotFound for a missing student and ErrForbidden for one in another
// class, so teachers can never touch other rosters.
func OwnStudent(studentID string, classroom *models.Class) (*models.Student, error) {
	student, err := database.GetStudentByID(config.GetDB(), studentID)
	if err != nil {
		return nil, err
	}
	if student.ClassID != classroom.ID {
		return nil, fiber.ErrForbidden
	}
	return student, nil
}
