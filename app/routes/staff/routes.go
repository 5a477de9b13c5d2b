package staff

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

func SetupStaffRoutes(app *fiber.App) {
	group := app.Group("/staff", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))

	group.Post("/", CreateStaffAPI)
	group.Get("/", ListStaffAPI)
	group.Get("/:id", GetStaffAPI)
	group.Put("/:id", UpdateStaffAPI)
	group.Delete("/:id", DeleteStaffAPI)
}
