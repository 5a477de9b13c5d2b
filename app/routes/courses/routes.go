package courses

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

func SetupCoursesRoutes(app *fiber.App) {
	group := app.Group("/courses", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))

	group.Get("/", ListCoursesAPI)
	group.Post("/", CreateCourseAPI)
	group.Get("/:id", GetCourseAPI)
	group.Put("/:id", UpdateCourseAPI)
	group.Delete("/:id", DeleteCourseAPI)
}
