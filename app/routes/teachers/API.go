package teachers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/auth"
	"github.com/nhatthien88/website-truong-mam-non/app/validation"
)

type createTeacherRequest struct {
	Username string  `json:"username" form:"username" validate:"required"`
	FullName string  `json:"full_name" form:"full_name" validate:"required"`
	Password string  `json:"password" form:"password" validate:"required,min=4"`
	Phone    *string `json:"phone" form:"phone"`
	ClassID  *string `json:"class_id" form:"class_id"`
}

type updateTeacherRequest struct {
	FullName string  `json:"full_name" form:"full_name" validate:"required"`
	Password string  `json:"password" form:"password"`
	Phone    *string `json:"phone" form:"phone"`
	ClassID  *string `json:"class_id" form:"class_id"`
}

func cleanOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func GetTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.GetTeachers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}
	return c.JSON(fiber.Map{
		"teachers": teachers,
		"count":    len(teachers),
	})
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	var req createTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = cleanOptional(req.Phone)
	req.ClassID = cleanOptional(req.ClassID)

	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Vui lòng nhập đầy đủ username, họ tên, mật khẩu"})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	teacher := &models.User{
		Username: req.Username,
		Password: hash,
		Role:     models.RoleTeacher,
		FullName: req.FullName,
		Phone:    req.Phone,
	}

	if err := database.CreateTeacher(config.GetDB(), teacher, req.ClassID); err != nil {
		return teacherErrorResponse(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Tạo tài khoản giáo viên thành công",
		"teacher": teacher,
	})
}

func UpdateTeacherAPI(c *fiber.Ctx) error {
	teacherID := c.Params("id")

	var req updateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = cleanOptional(req.Phone)
	req.ClassID = cleanOptional(req.ClassID)

	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Họ tên không được để trống"})
	}

	hash := ""
	if req.Password != "" {
		if len(req.Password) < 4 {
			return c.Status(400).JSON(fiber.Map{"error": "Mật khẩu mới quá ngắn (>=4 ký tự)"})
		}
		var err error
		hash, err = auth.HashPassword(req.Password)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
		}
	}

	if err := database.UpdateTeacher(config.GetDB(), teacherID, req.FullName, req.Phone, hash, req.ClassID); err != nil {
		return teacherErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Cập nhật giáo viên thành công"})
}

func DeleteTeacherAPI(c *fiber.Ctx) error {
	teacherID := c.Params("id")

	if err := database.DeleteTeacher(config.GetDB(), teacherID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Không tìm thấy giáo viên"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Không thể xóa tài khoản"})
	}

	return c.JSON(fiber.Map{"message": "Xóa tài khoản giáo viên thành công"})
}

func teacherErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, database.ErrConflict):
		return c.Status(409).JSON(fiber.Map{"error": "Username đã tồn tại"})
	case errors.Is(err, database.ErrClassTaken):
		return c.Status(409).JSON(fiber.Map{"error": "Lớp không hợp lệ hoặc đã có giáo viên"})
	case errors.Is(err, database.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Không tìm thấy giáo viên"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Không thể lưu tài khoản giáo viên"})
	}
}
