package health

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/auth"
)

// UpsertHealthRecordAPI saves the single health record for (student, date).
// Weight and note are optional, temperature is required.
func UpsertHealthRecordAPI(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	student, err := auth.OwnStudent(c.Params("studentID"), classroom)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Không tìm thấy học sinh"})
		}
		if errors.Is(err, fiber.ErrForbidden) {
			return c.Status(403).JSON(fiber.Map{"error": "Bạn không có quyền"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	type healthRequest struct {
		Date         string `json:"date" form:"date"`
		WeightKg     string `json:"weight_kg" form:"weight_kg"`
		TemperatureC string `json:"temperature_c" form:"temperature_c"`
		Note         string `json:"note" form:"note"`
	}

	var req healthRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	temp, err := strconv.ParseFloat(strings.TrimSpace(req.TemperatureC), 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}

	var weight *float64
	if w := strings.TrimSpace(req.WeightKg); w != "" {
		v, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
		}
		weight = &v
	}

	var note *string
	if n := strings.TrimSpace(req.Note); n != "" {
		note = &n
	}

	record := &models.HealthRecord{
		StudentID:    student.ID,
		RecordDate:   parseDate(req.Date),
		WeightKg:     weight,
		TemperatureC: temp,
		Note:         note,
	}

	if err := database.UpsertHealthRecord(config.GetDB(), record); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Không thể lưu ghi nhận"})
	}

	return c.JSON(fiber.Map{
		"message": "Lưu ghi nhận sức khỏe thành công",
		"record":  record,
	})
}
