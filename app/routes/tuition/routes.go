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

func SetupTuitionRoutes(app *fiber.App) {
	pages := app.Group("/teacher")
	pages.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleTeacher))
	pages.Get("/tuition", TuitionPage)
	pages.Get("/invoices/:id", InvoiceDetailPage)

	api := app.Group("/api/teacher")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleTeacher))
	api.Get("/tuition", GetTuitionAPI)
	api.Post("/tuition/:studentID/generate", GenerateInvoiceAPI)
	api.Post("/invoices/:id/confirm", ConfirmInvoiceAPI)
}

// tuitionRow is one student's line on the tuition page. For PAID invoices
// the figures come from the frozen snapshot, otherwise from a live
// computation.
type tuitionRow struct {
	Student       *models.Student `json:"student"`
	MealDays      int             `json:"meal_days"`
	TuitionFee    int64           `json:"tuition_fee"`
	MealUnitPrice int64           `json:"meal_unit_price"`
	Total         int64           `json:"total"`
	Invoice       *models.Invoice `json:"invoice,omitempty"`
}

// buildTuitionRows assembles the month's rows for a class.
func buildTuitionRows(classroom *models.Class, month string) ([]tuitionRow, error) {
	db := config.GetDB()

	students, err := database.GetStudentsByClassOrdered(db, classroom.ID)
	if err != nil {
		return nil, err
	}
	settings, err := database.GetSettings(db)
	if err != nil {
		return nil, err
	}

	start, end, err := billing.MonthRange(month)
	if err != nil {
		return nil, err
	}
	mealCounts, err := database.CountMealDaysByStudent(db, classroom.ID, start, end)
	if err != nil {
		return nil, err
	}
	invoices, err := database.GetInvoicesByClassMonth(db, classroom.ID, month)
	if err != nil {
		return nil, err
	}

	rows := make([]tuitionRow, 0, len(students))
	for _, st := range students {
		row := tuitionRow{Student: st, Invoice: invoices[st.ID]}

		if inv := row.Invoice; inv != nil && inv.IsPaid() {
			// Settled invoices are the source of truth for the month.
			row.MealDays = inv.MealDays
			row.TuitionFee = inv.TuitionFee
			row.MealUnitPrice = inv.MealUnitPrice
			row.Total = inv.TotalAmount
		} else {
			charge := billing.NewCharge(settings, mealCounts[st.ID])
			row.MealDays = charge.MealDays
			row.TuitionFee = charge.TuitionFee
			row.MealUnitPrice = charge.MealUnitPrice
			row.Total = charge.Total
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func TuitionPage(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	user := c.Locals("user").(*models.User)
	month := billing.NormalizeMonth(c.Query("month"))

	rows, err := buildTuitionRows(classroom, month)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("teacher/tuition/list", fiber.Map{
		"Title":       "Học phí - Trường Mầm Non",
		"CurrentPage": "tuition",
		"user":        user,
		"classroom":   classroom,
		"month":       month,
		"rows":        rows,
	})
}

func InvoiceDetailPage(c *fiber.Ctx) error {
	classroom, err := auth.OwnClass(c)
	if classroom == nil {
		return err
	}

	invoiceID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.ErrNotFound
	}

	inv, err := database.GetInvoiceByID(config.GetDB(), invoiceID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}
	if inv.Student.ClassID != classroom.ID {
		return fiber.ErrForbidden
	}

	user := c.Locals("user").(*models.User)
	return c.Render("teacher/tuition/detail", fiber.Map{
		"Title":       "Hóa đơn - Trường Mầm Non",
		"CurrentPage": "tuition",
		"user":        user,
		"classroom":   classroom,
		"invoice":     inv,
	})
}
