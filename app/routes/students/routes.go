package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	group := app.Group("/students", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))

	group.Post("/", CreateStudentAPI)
	group.Get("/", ListStudentsAPI)
	group.Get("/:id", GetStudentAPI)
	group.Put("/:id", UpdateStudentAPI)
	group.Delete("/:id", DeleteStudentAPI)
}
