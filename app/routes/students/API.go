package students

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/auth"
	"github.com/nhatthien88/website-truong-mam-non/app/validation"
)

type studentRequest struct {
	FullName      string `json:"full_name" form:"full_name" validate:"required"`
	DateOfBirth   string `json:"date_of_birth" form:"date_of_birth" validate:"required"`
	Gender        string `json:"gender" form:"gender" validate:"required,oneof=M F"`
	GuardianName  string `json:"guardian_name" form:"guardian_name" validate:"required"`
	GuardianPhone string `json:"guardian_phone" form:"guardian_phone" validate:"required"`
}

// parse trims, validates and resolves the date of birth.
func (r *studentRequest) parse() (time.Time, error) {
	r.FullName = strings.TrimSpace(r.FullName)
	r.DateOfBirth = strings.TrimSpace(r.DateOfBirth)
	r.Gender = strings.TrimSpace(r.Gender)
	r.GuardianName = strings.TrimSpace(r.GuardianName)
	r.GuardianPhone = strings.TrimSpace(r.GuardianPhone)

	if err := validation.Struct(r); err != nil {
		return time.Time{}, err
	}
	return time.Parse("2006-01-02", r.DateOfBirth)
}

func GetStudentsAPI(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	students, err := database.GetStudentsByClass(config.GetDB(), classroom.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	student, err := auth.OwnStudent(c.Params("id"), classroom)
	if err != nil {
		return studentErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"student": student})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	dob, err := req.parse()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Vui lòng nhập đầy đủ thông tin hợp lệ"})
	}

	settings, err := database.GetSettings(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load settings"})
	}

	student := &models.Student{
		ClassID:       classroom.ID,
		FullName:      req.FullName,
		DateOfBirth:   dob,
		Gender:        models.Gender(req.Gender),
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
	}

	if err := database.CreateStudent(config.GetDB(), student, settings.MaxStudentsPerClass); err != nil {
		if errors.Is(err, database.ErrClassFull) {
			return c.Status(409).JSON(fiber.Map{
				"error": "Lớp đã đủ số trẻ tối đa",
				"max":   settings.MaxStudentsPerClass,
			})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Không thể thêm học sinh"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Thêm học sinh thành công",
		"student": student,
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	student, err := auth.OwnStudent(c.Params("id"), classroom)
	if err != nil {
		return studentErrorResponse(c, err)
	}

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	dob, err := req.parse()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Vui lòng nhập đầy đủ thông tin hợp lệ"})
	}

	student.FullName = req.FullName
	student.DateOfBirth = dob
	student.Gender = models.Gender(req.Gender)
	student.GuardianName = req.GuardianName
	student.GuardianPhone = req.GuardianPhone

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Không thể cập nhật"})
	}

	return c.JSON(fiber.Map{
		"message": "Cập nhật thành công",
		"student": student,
	})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	student, err := auth.OwnStudent(c.Params("id"), classroom)
	if err != nil {
		return studentErrorResponse(c, err)
	}

	if err := database.DeleteStudent(config.GetDB(), student.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Không thể xóa học sinh"})
	}

	return c.JSON(fiber.Map{"message": "Đã xóa học sinh"})
}

func studentErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Không tìm thấy học sinh"})
	case errors.Is(err, fiber.ErrForbidden):
		return c.Status(403).JSON(fiber.Map{"error": "Bạn không có quyền"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
}
