package leave

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/helpers"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

type applyRequest struct {
	LeaveDate string `json:"leave_date" validate:"required"`
	Message   string `json:"message" validate:"required,max=500"`
}

type statusRequest struct {
	Status int `json:"status" validate:"oneof=1 2"`
}

// ApplyLeaveAPI files a leave application for the authenticated user.
// Applications always start pending.
func ApplyLeaveAPI(c *fiber.Ctx) error {
	var req applyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}
	date, err := time.Parse("2006-01-02", req.LeaveDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid leave_date, expected YYYY-MM-DD"})
	}

	leave := &models.Leave{
		UserID:    auth.CurrentUser(c).ID,
		LeaveDate: date,
		Message:   req.Message,
	}
	if err := database.CreateLeave(config.GetDB(), leave); err != nil {
		return helpers.StoreError(c, err, "leave application not found")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Leave applied successfully!", "leave": leave})
}

// MyLeavesAPI lists the authenticated user's own applications.
func MyLeavesAPI(c *fiber.Ctx) error {
	leaves, err := database.ListLeavesForUser(config.GetDB(), auth.CurrentUser(c).ID)
	if err != nil {
		return helpers.StoreError(c, err, "leave application not found")
	}
	return c.JSON(fiber.Map{"leaves": leaves})
}

// ListLeavesAPI is the admin review queue.
func ListLeavesAPI(c *fiber.Ctx) error {
	page := helpers.ParsePage(c.Query("page"))
	leaves, total, page, err := helpers.ListPage(page, func(limit, offset int) ([]*models.Leave, int, error) {
		return database.ListLeaves(config.GetDB(), limit, offset)
	})
	if err != nil {
		return helpers.StoreError(c, err, "leave application not found")
	}
	return c.JSON(fiber.Map{
		"leaves":      leaves,
		"page":        page,
		"total":       total,
		"total_pages": helpers.TotalPages(total),
	})
}

// UpdateLeaveStatusAPI approves or rejects an application.
func UpdateLeaveStatusAPI(c *fiber.Ctx) error {
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Status != models.LeaveApproved && req.Status != models.LeaveRejected {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status must be 1 (approved) or 2 (rejected)"})
	}

	if err := database.UpdateLeaveStatus(config.GetDB(), c.Params("id"), req.Status); err != nil {
		return helpers.StoreError(c, err, "leave application not found")
	}
	leave, err := database.GetLeaveByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return helpers.StoreError(c, err, "leave application not found")
	}
	return c.JSON(fiber.Map{
		"message": "Leave " + leave.StatusLabel() + "!",
		"leave":   leave,
	})
}
