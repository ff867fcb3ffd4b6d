package tuition

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/nhatthien88/website-truong-mam-non/app/billing"
	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/database"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
	"github.com/nhatthien88/website-truong-mam-non/app/routes/auth"
)

// GetTuitionAPI returns the month's tuition rows for the teacher's class.
func GetTuitionAPI(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	month := billing.NormalizeMonth(c.Query("month"))
	rows, err := buildTuitionRows(classroom, month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute tuition"})
	}

	return c.JSON(fiber.Map{
		"month": month,
		"rows":  rows,
	})
}

// GenerateInvoiceAPI creates or refreshes the UNPAID invoice snapshot for one
// student and month. A settled invoice is never regenerated.
func GenerateInvoiceAPI(c *fiber.Ctx) error {
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

	type generateRequest struct {
		Month string `json:"month" form:"month"`
	}
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	month := billing.NormalizeMonth(req.Month)

	settings, err := database.GetSettings(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load settings"})
	}

	inv, err := billing.GenerateOrUpdateInvoice(config.GetDB(), student.ID, month, settings)
	if err != nil {
		if errors.Is(err, database.ErrInvoiceLocked) {
			return c.Status(423).JSON(fiber.Map{"error": "Hóa đơn đã thu, không thể cập nhật"})
		}
		if errors.Is(err, database.ErrConflict) {
			return c.Status(409).JSON(fiber.Map{"error": "Không thể tạo hóa đơn (trùng kỳ thu)"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Không thể tạo hóa đơn"})
	}

	return c.JSON(fiber.Map{
		"message": "Đã tạo/cập nhật hóa đơn",
		"invoice": inv,
	})
}

// ConfirmInvoiceAPI settles an UNPAID invoice. Confirming a settled one is a
// no-op reported as already paid.
func ConfirmInvoiceAPI(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	invoiceID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Không tìm thấy hóa đơn"})
	}

	existing, err := database.GetInvoiceByID(config.GetDB(), invoiceID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Không tìm thấy hóa đơn"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if existing.Student.ClassID != classroom.ID {
		return c.Status(403).JSON(fiber.Map{"error": "Bạn không có quyền"})
	}

	user := c.Locals("user").(*models.User)
	inv, err := billing.ConfirmPayment(config.GetDB(), invoiceID, classroom.ID, user.ID)
	if err != nil {
		if errors.Is(err, database.ErrAlreadyPaid) {
			return c.JSON(fiber.Map{
				"message": "Hóa đơn đã thu trước đó",
				"invoice": existing,
			})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Không thể xác nhận"})
	}

	return c.JSON(fiber.Map{
		"message": "Đã xác nhận đã thu",
		"invoice": inv,
	})
}
