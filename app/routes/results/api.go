package results

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/helpers"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

type resultRequest struct {
	StudentID     string  `json:"student_id" validate:"required"`
	SubjectID     string  `json:"subject_id" validate:"required"`
	SessionYearID string  `json:"session_year_id" validate:"required"`
	SubjectMarks  float64 `json:"subject_marks" validate:"gte=0"`
	ExamMarks     float64 `json:"exam_marks" validate:"gte=0"`
	FinalGrade    *string `json:"final_grade"`
}

type updateResultRequest struct {
	SubjectMarks float64 `json:"subject_marks" validate:"gte=0"`
	ExamMarks    float64 `json:"exam_marks" validate:"gte=0"`
	FinalGrade   *string `json:"final_grade"`
}

func CreateResultAPI(c *fiber.Ctx) error {
	var req resultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}

	db := config.GetDB()
	if _, err := database.GetStudentByID(db, req.StudentID); err != nil {
		return helpers.StoreError(c, err, "student not found")
	}
	if _, err := database.GetSubjectByID(db, req.SubjectID); err != nil {
		return helpers.StoreError(c, err, "subject not found")
	}
	if _, err := database.GetSessionYearByID(db, req.SessionYearID); err != nil {
		return helpers.StoreError(c, err, "session year not found")
	}

	result := &models.Result{
		StudentID:     req.StudentID,
		SubjectID:     req.SubjectID,
		SessionYearID: req.SessionYearID,
		SubjectMarks:  req.SubjectMarks,
		ExamMarks:     req.ExamMarks,
		FinalGrade:    req.FinalGrade,
	}
	if err := database.CreateResult(db, result); err != nil {
		return helpers.StoreError(c, err, "result not found")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Result added successfully!", "result": result})
}

// ListResultsAPI returns results scoped by role: students only ever see
// their own, everyone else sees all.
func ListResultsAPI(c *fiber.Ctx) error {
	viewer := auth.CurrentUser(c)
	page := helpers.ParsePage(c.Query("page"))

	studentID := ""
	if viewer.Role == models.RoleStudent {
		profile, err := database.GetStudentByUserID(config.GetDB(), viewer.ID)
		if err != nil {
			return helpers.StoreError(c, err, "student profile not found, contact an administrator")
		}
		studentID = profile.ID
	}

	results, total, page, err := helpers.ListPage(page, func(limit, offset int) ([]*models.Result, int, error) {
		return database.ListResults(config.GetDB(), studentID, limit, offset)
	})
	if err != nil {
		return helpers.StoreError(c, err, "result not found")
	}
	return c.JSON(fiber.Map{
		"results":     results,
		"page":        page,
		"total":       total,
		"total_pages": helpers.TotalPages(total),
	})
}

func GetResultAPI(c *fiber.Ctx) error {
	result, err := database.GetResultByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return helpers.StoreError(c, err, "result not found")
	}

	viewer := auth.CurrentUser(c)
	if viewer.Role == models.RoleStudent {
		profile, err := database.GetStudentByUserID(config.GetDB(), viewer.ID)
		if err != nil || profile.ID != result.StudentID {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "result not found"})
		}
	}
	return c.JSON(result)
}

func UpdateResultAPI(c *fiber.Ctx) error {
	result, err := database.GetResultByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return helpers.StoreError(c, err, "result not found")
	}

	var req updateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}

	result.SubjectMarks = req.SubjectMarks
	result.ExamMarks = req.ExamMarks
	result.FinalGrade = req.FinalGrade
	if err := database.UpdateResult(config.GetDB(), result); err != nil {
		return helpers.StoreError(c, err, "result not found")
	}
	return c.JSON(fiber.Map{"message": "Result updated successfully!", "result": result})
}

func DeleteResultAPI(c *fiber.Ctx) error {
	if err := database.DeleteResult(config.GetDB(), c.Params("id")); err != nil {
		return helpers.StoreError(c, err, "result not found")
	}
	return c.JSON(fiber.Map{"message": "Result deleted successfully!"})
}

// CheckResultsAPI is the admin lookup of one student's results for a
// course and session year.
func CheckResultsAPI(c *fiber.Ctx) error {
	courseID := c.Query("course_id")
	sessionYearID := c.Query("session_year_id")
	studentID := c.Query("student_id")
	if courseID == "" || sessionYearID == "" || studentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "course_id, session_year_id and student_id are required"})
	}

	results, err := database.CheckStudentResults(config.GetDB(), courseID, sessionYearID, studentID)
	if err != nil {
		return helpers.StoreError(c, err, "result not found")
	}
	return c.JSON(fiber.Map{"results": results})
}
