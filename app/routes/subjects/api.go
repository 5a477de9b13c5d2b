package subjects

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/helpers"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

type subjectRequest struct {
	SubjectName string  `json:"subject_name" validate:"required,max=255"`
	CourseID    string  `json:"course_id" validate:"required"`
	StaffID     *string `json:"staff_id,omitempty"`
}

func (r *subjectRequest) normalize() {
	if r.StaffID != nil && *r.StaffID == "" {
		r.StaffID = nil
	}
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	var req subjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}
	req.normalize()

	db := config.GetDB()
	if _, err := database.GetCourseByID(db, req.CourseID); err != nil {
		return helpers.StoreError(c, err, "course not found")
	}
	if req.StaffID != nil {
		if _, err := database.GetStaffByID(db, *req.StaffID); err != nil {
			return helpers.StoreError(c, err, "staff member not found")
		}
	}

	subject := &models.Subject{SubjectName: req.SubjectName, CourseID: req.CourseID, StaffID: req.StaffID}
	if err := database.CreateSubject(db, subject); err != nil {
		return helpers.StoreError(c, err, "subject not found")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Subject added successfully!", "subject": subject})
}

func ListSubjectsAPI(c *fiber.Ctx) error {
	page := helpers.ParsePage(c.Query("page"))
	subjects, total, page, err := helpers.ListPage(page, func(limit, offset int) ([]*models.Subject, int, error) {
		return database.ListSubjects(config.GetDB(), limit, offset)
	})
	if err != nil {
		return helpers.StoreError(c, err, "subject not found")
	}
	return c.JSON(fiber.Map{
		"subjects":    subjects,
		"page":        page,
		"total":       total,
		"total_pages": helpers.TotalPages(total),
	})
}

func GetSubjectAPI(c *fiber.Ctx) error {
	subject, err := database.GetSubjectByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return helpers.StoreError(c, err, "subject not found")
	}
	return c.JSON(subject)
}

func UpdateSubjectAPI(c *fiber.Ctx) error {
	var req subjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}
	req.normalize()

	db := config.GetDB()
	if _, err := database.GetCourseByID(db, req.CourseID); err != nil {
		return helpers.StoreError(c, err, "course not found")
	}
	if req.StaffID != nil {
		if _, err := database.GetStaffByID(db, *req.StaffID); err != nil {
			return helpers.StoreError(c, err, "staff member not found")
		}
	}

	subject := &models.Subject{ID: c.Params("id"), SubjectName: req.SubjectName, CourseID: req.CourseID, StaffID: req.StaffID}
	if err := database.UpdateSubject(db, subject); err != nil {
		return helpers.StoreError(c, err, "subject not found")
	}
	return c.JSON(fiber.Map{"message": "Subject updated successfully!", "subject": subject})
}

func DeleteSubjectAPI(c *fiber.Ctx) error {
	if err := database.DeleteSubject(config.GetDB(), c.Params("id")); err != nil {
		return helpers.StoreError(c, err, "subject not found")
	}
	return c.JSON(fiber.Map{"message": "Subject deleted successfully!"})
}
