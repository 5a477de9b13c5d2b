package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/admin"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/attendance"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/courses"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/dashboard"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/feedback"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/leave"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/results"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/sessions"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/staff"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/students"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/subjects"
)

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func main() {
	config.Init()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	auth.SetupAuthRoutes(app)
	admin.SetupAdminRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	courses.SetupCoursesRoutes(app)
	sessions.SetupSessionYearsRoutes(app)
	subjects.SetupSubjectsRoutes(app)
	students.SetupStudentsRoutes(app)
	staff.SetupStaffRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	results.SetupResultsRoutes(app)
	leave.SetupLeaveRoutes(app)
	feedback.SetupFeedbackRoutes(app)

	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
