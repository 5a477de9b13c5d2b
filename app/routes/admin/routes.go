package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

func SetupAdminRoutes(app *fiber.App) {
	group := app.Group("/admin", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))

	group.Get("/pending_users", PendingUsersAPI)
	group.Post("/approve_user/:id", ApproveUserAPI)
}
