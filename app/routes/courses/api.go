package courses

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/helpers"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

type courseRequest struct {
	CourseName string `json:"course_name" validate:"required,max=255"`
}

func CreateCourseAPI(c *fiber.Ctx) error {
	var req courseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}

	course := &models.Course{CourseName: req.CourseName}
	if err := database.CreateCourse(config.GetDB(), course); err != nil {
		return helpers.StoreError(c, err, "course not found")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Course added successfully!", "course": course})
}

func ListCoursesAPI(c *fiber.Ctx) error {
	page := helpers.ParsePage(c.Query("page"))
	courses, total, page, err := helpers.ListPage(page, func(limit, offset int) ([]*models.Course, int, error) {
		return database.ListCourses(config.GetDB(), limit, offset)
	})
	if err != nil {
		return helpers.StoreError(c, err, "course not found")
	}
	return c.JSON(fiber.Map{
		"courses":     courses,
		"page":        page,
		"total":       total,
		"total_pages": helpers.TotalPages(total),
	})
}

func GetCourseAPI(c *fiber.Ctx) error {
	course, err := database.GetCourseByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return helpers.StoreError(c, err, "course not found")
	}
	return c.JSON(course)
}

func UpdateCourseAPI(c *fiber.Ctx) error {
	var req courseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}

	course := &models.Course{ID: c.Params("id"), CourseName: req.CourseName}
	if err := database.UpdateCourse(config.GetDB(), course); err != nil {
		return helpers.StoreError(c, err, "course not found")
	}
	return c.JSON(fiber.Map{"message": "Course updated successfully!", "course": course})
}

func DeleteCourseAPI(c *fiber.Ctx) error {
	if err := database.DeleteCourse(config.GetDB(), c.Params("id")); err != nil {
		return helpers.StoreError(c, err, "course not found")
	}
	return c.JSON(fiber.Map{"message": "Course deleted successfully!"})
}
