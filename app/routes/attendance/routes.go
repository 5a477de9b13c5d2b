package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	group := app.Group("/attendance", auth.AuthMiddleware)

	// Marking is a staff activity; reports are for admins and students;
	// the header overview is admin only.
	group.Get("/add", auth.RoleMiddleware(models.RoleStaff), RosterAPI)
	group.Post("/add", auth.RoleMiddleware(models.RoleStaff), SubmitAttendanceAPI)
	group.Get("/reports", auth.RoleMiddleware(models.RoleAdmin, models.RoleStudent), ListReportsAPI)
	group.Get("/", auth.RoleMiddleware(models.RoleAdmin), ListAttendanceAPI)
}
