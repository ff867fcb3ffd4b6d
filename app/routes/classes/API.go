package classes

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

type classRequest struct {
	Name      string  `json:"name" form:"name"`
	TeacherID *string `json:"teacher_id" form:"teacher_id"`
}

func (r *classRequest) clean() {
	r.Name = strings.TrimSpace(r.Name)
	if r.TeacherID != nil && *r.TeacherID == "" {
		r.TeacherID = nil
	}
}

func GetClassesAPI(c *fiber.Ctx) error {
	classes, err := database.GetClasses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}
	return c.JSON(fiber.Map{
		"classes": classes,
		"count":   len(classes),
	})
}

func CreateClassAPI(c *fiber.Ctx) error {
	var req classRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	req.clean()

	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Tên lớp không được để trống"})
	}

	class := &models.Class{Name: req.Name, TeacherID: req.TeacherID}
	if err := database.CreateClass(config.GetDB(), class); err != nil {
		return classErrorResponse(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Tạo lớp thành công",
		"class":   class,
	})
}

func UpdateClassAPI(c *fiber.Ctx) error {
	classID := c.Params("id")

	var req classRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	req.clean()

	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Tên lớp không được để trống"})
	}

	if err := database.UpdateClass(config.GetDB(), classID, req.Name, req.TeacherID); err != nil {
		return classErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Cập nhật lớp thành công"})
}

func DeleteClassAPI(c *fiber.Ctx) error {
	classID := c.Params("id")

	if err := database.DeleteClass(config.GetDB(), classID); err != nil {
		if errors.Is(err, database.ErrClassHasStudents) {
			return c.Status(409).JSON(fiber.Map{"error": "Không thể xóa lớp (lớp vẫn còn học sinh)"})
		}
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Không tìm thấy lớp"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Không thể xóa lớp"})
	}

	return c.JSON(fiber.Map{"message": "Xóa lớp thành công"})
}

func classErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, database.ErrTeacherAssigned):
		return c.Status(409).JSON(fiber.Map{"error": "Giáo viên này đã được phân công lớp khác"})
	case errors.Is(err, database.ErrClassTaken):
		return c.Status(409).JSON(fiber.Map{"error": "Lớp đã có giáo viên phụ trách"})
	case errors.Is(err, database.ErrConflict):
		return c.Status(409).JSON(fiber.Map{"error": "Không thể lưu lớp (trùng giáo viên phụ trách)"})
	case errors.Is(err, database.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Giáo viên hoặc lớp không hợp lệ"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Không thể lưu lớp"})
	}
}
