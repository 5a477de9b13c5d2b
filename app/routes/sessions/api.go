package sessions

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/helpers"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

type sessionYearRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

func (r sessionYearRequest) parse() (start, end time.Time, ok bool) {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return start, end, false
	}
	end, err = time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return start, end, false
	}
	return start, end, true
}

func CreateSessionYearAPI(c *fiber.Ctx) error {
	var req sessionYearRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}
	start, end, ok := req.parse()
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date format, use YYYY-MM-DD"})
	}
	if end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end date must be after start date"})
	}

	sy := &models.SessionYear{StartDate: start, EndDate: end}
	if err := database.CreateSessionYear(config.GetDB(), sy); err != nil {
		return helpers.StoreError(c, err, "session year not found")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Session year added successfully!", "session_year": sy})
}

func ListSessionYearsAPI(c *fiber.Ctx) error {
	page := helpers.ParsePage(c.Query("page"))
	years, total, page, err := helpers.ListPage(page, func(limit, offset int) ([]*models.SessionYear, int, error) {
		return database.ListSessionYears(config.GetDB(), limit, offset)
	})
	if err != nil {
		return helpers.StoreError(c, err, "session year not found")
	}
	return c.JSON(fiber.Map{
		"session_years": years,
		"page":          page,
		"total":         total,
		"total_pages":   helpers.TotalPages(total),
	})
}

func GetSessionYearAPI(c *fiber.Ctx) error {
	sy, err := database.GetSessionYearByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return helpers.StoreError(c, err, "session year not found")
	}
	return c.JSON(sy)
}

func UpdateSessionYearAPI(c *fiber.Ctx) error {
	var req sessionYearRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}
	start, end, ok := req.parse()
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date format, use YYYY-MM-DD"})
	}
	if end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end date must be after start date"})
	}

	sy := &models.SessionYear{ID: c.Params("id"), StartDate: start, EndDate: end}
	if err := database.UpdateSessionYear(config.GetDB(), sy); err != nil {
		return helpers.StoreError(c, err, "session year not found")
	}
	return c.JSON(fiber.Map{"message": "Session year updated successfully!", "session_year": sy})
}

func DeleteSessionYearAPI(c *fiber.Ctx) error {
	if err := database.DeleteSessionYear(config.GetDB(), c.Params("id")); err != nil {
		return helpers.StoreError(c, err, "session year not found")
	}
	return c.JSON(fiber.Map{"message": "Session year deleted successfully!"})
}
