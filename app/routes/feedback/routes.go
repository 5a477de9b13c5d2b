package feedback

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

func SetupFeedbackRoutes(app *fiber.App) {
	group := app.Group("/feedback", auth.AuthMiddleware)

	group.Post("/", auth.RoleMiddleware(models.RoleStaff, models.RoleStudent), SendFeedbackAPI)
	group.Get("/mine", auth.RoleMiddleware(models.RoleStaff, models.RoleStudent), MyFeedbackAPI)
	group.Get("/", auth.RoleMiddleware(models.RoleAdmin), ListFeedbackAPI)
	group.Put("/:id/reply", auth.RoleMiddleware(models.RoleAdmin), ReplyFeedbackAPI)
}
