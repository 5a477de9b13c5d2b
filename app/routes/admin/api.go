package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/helpers"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/services"
)

// PendingUsersAPI lists inactive accounts awaiting approval, newest
// first.
func PendingUsersAPI(c *fiber.Ctx) error {
	page := helpers.ParsePage(c.Query("page"))
	users, total, page, err := helpers.ListPage(page, func(limit, offset int) ([]*models.User, int, error) {
		return database.ListPendingUsers(config.GetDB(), limit, offset)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(fiber.Map{
		"pending_users": users,
		"page":          page,
		"total":         total,
		"total_pages":   helpers.TotalPages(total),
	})
}

// ApproveUserAPI activates a pending account. Approving an already
// active account changes nothing and still succeeds.
func ApproveUserAPI(c *fiber.Ctx) error {
	userID := c.Params("id")

	user, activated, err := database.ApproveUser(config.GetDB(), userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	if activated {
		services.NotifyUserApproved(user)
	}

	return c.JSON(fiber.Map{
		"message": "User '" + user.Username + "' has been approved and activated.",
		"user":    user,
	})
}
