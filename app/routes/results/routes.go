package results

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

func SetupResultsRoutes(app *fiber.App) {
	group := app.Group("/results", auth.AuthMiddleware)

	group.Get("/check", auth.RoleMiddleware(models.RoleAdmin), CheckResultsAPI)
	group.Post("/", auth.RoleMiddleware(models.RoleAdmin, models.RoleStaff), CreateResultAPI)

	// Listing is admin overview or a student's own rows; staff work
	// through create/edit and the single-result fetch.
	group.Get("/", auth.RoleMiddleware(models.RoleAdmin, models.RoleStudent), ListResultsAPI)
	group.Get("/:id", GetResultAPI)
	group.Put("/:id", auth.RoleMiddleware(models.RoleAdmin, models.RoleStaff), UpdateResultAPI)
	group.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteResultAPI)
}
