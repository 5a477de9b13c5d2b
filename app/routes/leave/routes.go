package leave

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

func SetupLeaveRoutes(app *fiber.App) {
	group := app.Group("/leave", auth.AuthMiddleware)

	group.Post("/", auth.RoleMiddleware(models.RoleStaff, models.RoleStudent), ApplyLeaveAPI)
	group.Get("/mine", auth.RoleMiddleware(models.RoleStaff, models.RoleStudent), MyLeavesAPI)
	group.Get("/", auth.RoleMiddleware(models.RoleAdmin), ListLeavesAPI)
	group.Put("/:id/status", auth.RoleMiddleware(models.RoleAdmin), UpdateLeaveStatusAPI)
}
