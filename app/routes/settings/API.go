package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
)

func GetSettingsAPI(c *fiber.Ctx) error {
	s, err := database.GetSettings(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}
	return c.JSON(fiber.Map{"settings": s})
}

func UpdateTuitionAPI(c *fiber.Ctx) error {
	type tuitionRequest struct {
		TuitionFeeMonthly int64 `json:"tuition_fee_monthly" form:"tuition_fee_monthly"`
		MealPricePerDay   int64 `json:"meal_price_per_day" form:"meal_price_per_day"`
	}

	var req tuitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.TuitionFeeMonthly <= 0 || req.MealPricePerDay < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}

	// Lazily create the row so the update always has a target.
	if _, err := database.GetSettings(config.GetDB()); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Không thể cập nhật quy định"})
	}

	if err := database.UpdateTuitionSettings(config.GetDB(), req.TuitionFeeMonthly, req.MealPricePerDay); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Không thể cập nhật quy định"})
	}

	return c.JSON(fiber.Map{"message": "Cập nhật học phí thành công"})
}

func UpdateCapacityAPI(c *fiber.Ctx) error {
	type capacityRequest struct {
		MaxStudentsPerClass int `json:"max_students_per_class" form:"max_students_per_class"`
	}

	var req capacityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.MaxStudentsPerClass <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}

	if _, err := database.GetSettings(config.GetDB()); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Không thể cập nhật quy định"})
	}

	if err := database.UpdateCapacitySettings(config.GetDB(), req.MaxStudentsPerClass); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Không thể cập nhật quy định"})
	}

	return c.JSON(fiber.Map{"message": "Cập nhật số lượng trẻ tối đa thành công"})
}
