package subjects

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

func SetupSubjectsRoutes(app *fiber.App) {
	group := app.Group("/subjects", auth.AuthMiddleware)

	// Staff need the subject list to pick what they are marking
	// attendance for; everything else is admin only.
	group.Get("/", auth.RoleMiddleware(models.RoleAdmin, models.RoleStaff), ListSubjectsAPI)
	group.Get("/:id", auth.RoleMiddleware(models.RoleAdmin, models.RoleStaff), GetSubjectAPI)

	group.Post("/", auth.RoleMiddleware(models.RoleAdmin), CreateSubjectAPI)
	group.Put("/:id", auth.RoleMiddleware(models.RoleAdmin), UpdateSubjectAPI)
	group.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteSubjectAPI)
}
