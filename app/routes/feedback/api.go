package feedback

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/helpers"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

type feedbackRequest struct {
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=2000"`
}

type replyRequest struct {
	Reply string `json:"reply" validate:"required,max=2000"`
}

// SendFeedbackAPI files feedback from the authenticated user.
func SendFeedbackAPI(c *fiber.Ctx) error {
	var req feedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}

	fb := &models.Feedback{
		UserID:  auth.CurrentUser(c).ID,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := database.CreateFeedback(config.GetDB(), fb); err != nil {
		return helpers.StoreError(c, err, "feedback not found")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Feedback sent successfully!", "feedback": fb})
}

// MyFeedbackAPI lists the authenticated user's own feedback, replies
// included.
func MyFeedbackAPI(c *fiber.Ctx) error {
	items, err := database.ListFeedbackForUser(config.GetDB(), auth.CurrentUser(c).ID)
	if err != nil {
		return helpers.StoreError(c, err, "feedback not found")
	}
	return c.JSON(fiber.Map{"feedback": items})
}

// ListFeedbackAPI is the admin inbox.
func ListFeedbackAPI(c *fiber.Ctx) error {
	page := helpers.ParsePage(c.Query("page"))
	items, total, page, err := helpers.ListPage(page, func(limit, offset int) ([]*models.Feedback, int, error) {
		return database.ListFeedback(config.GetDB(), limit, offset)
	})
	if err != nil {
		return helpers.StoreError(c, err, "feedback not found")
	}
	return c.JSON(fiber.Map{
		"feedback":    items,
		"page":        page,
		"total":       total,
		"total_pages": helpers.TotalPages(total),
	})
}

// ReplyFeedbackAPI stores the admin's reply and marks the thread
// replied.
func ReplyFeedbackAPI(c *fiber.Ctx) error {
	var req replyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}

	if err := database.ReplyFeedback(config.GetDB(), c.Params("id"), req.Reply); err != nil {
		return helpers.StoreError(c, err, "feedback not found")
	}
	fb, err := database.GetFeedbackByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return helpers.StoreError(c, err, "feedback not found")
	}
	return c.JSON(fiber.Map{"message": "Reply sent successfully!", "feedback": fb})
}
