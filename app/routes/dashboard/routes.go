package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	group := app.Group("/dashboard", auth.AuthMiddleware)

	group.Get("/admin", auth.RoleMiddleware(models.RoleAdmin), AdminDashboardAPI)
	group.Get("/staff", auth.RoleMiddleware(models.RoleStaff), StaffDashboardAPI)
	group.Get("/student", auth.RoleMiddleware(models.RoleStudent), StudentDashboardAPI)
}

func AdminDashboardAPI(c *fiber.Ctx) error {
	stats, err := database.GetAdminStats(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(stats)
}

func StaffDashboardAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	staff, err := database.GetStaffByUserID(db, user.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Your staff profile could not be found. Please contact an administrator.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	stats, err := database.GetStaffStats(db, staff.ID, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	students, err := database.GetStudentsForStaff(db, staff.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(fiber.Map{
		"staff":    staff,
		"stats":    stats,
		"students": students,
	})
}

func StudentDashboardAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	student, err := database.GetStudentByUserID(config.GetDB(), user.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Your student profile could not be found. Please contact an administrator.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(fiber.Map{"student": student})
}
