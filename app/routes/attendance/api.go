package attendance

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/helpers"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

const dateLayout = "2006-01-02"

type submitRequest struct {
	SubjectID      string          `json:"subject_id" validate:"required"`
	SessionYearID  string          `json:"session_year_id" validate:"required"`
	AttendanceDate string          `json:"attendance_date" validate:"required"`
	Statuses       map[string]bool `json:"statuses"`
}

// RosterAPI resolves the students a staff member is about to mark:
// everyone enrolled in the subject's course for the session year. An
// empty roster is a valid answer, not an error.
func RosterAPI(c *fiber.Ctx) error {
	subjectID := c.Query("subject_id")
	sessionYearID := c.Query("session_year_id")
	if subjectID == "" || sessionYearID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "subject_id and session_year_id are required"})
	}
	if raw := c.Query("attendance_date"); raw != "" {
		if _, err := time.Parse(dateLayout, raw); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid attendance_date, expected YYYY-MM-DD"})
		}
	}

	subject, err := database.GetSubjectByID(config.GetDB(), subjectID)
	if err != nil {
		return helpers.StoreError(c, err, "subject not found")
	}
	sessionYear, err := database.GetSessionYearByID(config.GetDB(), sessionYearID)
	if err != nil {
		return helpers.StoreError(c, err, "session year not found")
	}

	roster, err := database.GetRoster(config.GetDB(), subject.CourseID, sessionYearID)
	if err != nil {
		return helpers.StoreError(c, err, "subject not found")
	}

	resp := fiber.Map{
		"subject":      subject,
		"session_year": sessionYear,
		"students":     roster,
	}
	if len(roster) == 0 {
		resp["message"] = "No students are enrolled in this course for the selected session year."
	}
	return c.JSON(resp)
}

// SubmitAttendanceAPI records attendance for a subject, session year and
// date. Resubmitting the same triple replaces the previous records
// entirely; the statuses map is keyed by student user id and students
// left out are marked absent.
func SubmitAttendanceAPI(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}
	date, err := time.Parse(dateLayout, req.AttendanceDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid attendance_date, expected YYYY-MM-DD"})
	}

	if _, err := database.GetSessionYearByID(config.GetDB(), req.SessionYearID); err != nil {
		return helpers.StoreError(c, err, "session year not found")
	}

	header, marked, err := database.SubmitAttendance(config.GetDB(), req.SubjectID, req.SessionYearID, date, req.Statuses)
	if err != nil {
		return helpers.StoreError(c, err, "subject not found")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Attendance saved successfully!",
		"attendance": header,
		"marked":     marked,
	})
}

// ListReportsAPI returns attendance reports for the viewer. Admins see
// every report; students are always restricted to their own rows no
// matter what the request asks for.
func ListReportsAPI(c *fiber.Ctx) error {
	viewer := auth.CurrentUser(c)
	page := helpers.ParsePage(c.Query("page"))

	reports, total, page, err := helpers.ListPage(page, func(limit, offset int) ([]*models.AttendanceReport, int, error) {
		return database.ListReports(config.GetDB(), viewer, limit, offset)
	})
	if err != nil {
		return helpers.StoreError(c, err, "attendance not found")
	}
	return c.JSON(fiber.Map{
		"reports":     reports,
		"page":        page,
		"total":       total,
		"total_pages": helpers.TotalPages(total),
	})
}

// ListAttendanceAPI is the admin overview of attendance headers.
func ListAttendanceAPI(c *fiber.Ctx) error {
	page := helpers.ParsePage(c.Query("page"))
	headers, total, page, err := helpers.ListPage(page, func(limit, offset int) ([]*models.Attendance, int, error) {
		return database.ListAttendance(config.GetDB(), limit, offset)
	})
	if err != nil {
		return helpers.StoreError(c, err, "attendance not found")
	}
	return c.JSON(fiber.Map{
		"attendance":  headers,
		"page":        page,
		"total":       total,
		"total_pages": helpers.TotalPages(total),
	})
}
