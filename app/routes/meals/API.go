package meals

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/auth"
)

// SaveMealLogsAPI saves the day's meal flags for the roster. Entries for a
// student whose month is already settled are rejected and reported; the
// other entries still save.
func SaveMealLogsAPI(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	type mealEntry struct {
		StudentID string `json:"student_id" form:"student_id"`
		Ate       bool   `json:"ate" form:"ate"`
	}
	type mealsRequest struct {
		Date    string      `json:"date" form:"date"`
		Entries []mealEntry `json:"entries"`
	}

	var req mealsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	db := config.GetDB()
	logDate := parseDate(req.Date)

	saved := 0
	var lockedIDs []string
	for _, entry := range req.Entries {
		student, err := auth.OwnStudent(entry.StudentID, classroom)
		if err != nil {
			if errors.Is(err, fiber.ErrForbidden) {
				return c.Status(403).JSON(fiber.Map{"error": "Bạn không có quyền"})
			}
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(404).JSON(fiber.Map{"error": "Không tìm thấy học sinh"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}

		err = database.UpsertMealLog(db, student.ID, logDate, entry.Ate)
		if err != nil {
			if errors.Is(err, database.ErrMealsLocked) {
				lockedIDs = append(lockedIDs, student.ID)
				continue
			}
			return c.Status(500).JSON(fiber.Map{"error": "Không thể lưu dữ liệu"})
		}
		saved++
	}

	if len(lockedIDs) > 0 {
		return c.Status(423).JSON(fiber.Map{
			"message": "Một số học sinh đã chốt hóa đơn, không thể sửa",
			"saved":   saved,
			"locked":  lockedIDs,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Đã lưu ghi nhận ăn theo ngày",
		"saved":   saved,
	})
}
