package sessions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

func SetupSessionYearsRoutes(app *fiber.App) {
	group := app.Group("/session_years", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))

	group.Get("/", ListSessionYearsAPI)
	group.Post("/", CreateSessionYearAPI)
	group.Get("/:id", GetSessionYearAPI)
	group.Put("/:id", UpdateSessionYearAPI)
	group.Delete("/:id", DeleteSessionYearAPI)
}
