package students

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/helpers"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

type studentRequest struct {
	Username      string  `json:"username" validate:"required,min=3,max=150"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"omitempty,min=8"`
	FirstName     string  `json:"first_name" validate:"required,max=150"`
	LastName      string  `json:"last_name" validate:"required,max=150"`
	Gender        string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Address       string  `json:"address" validate:"max=500"`
	DateOfBirth   *string `json:"date_of_birth"`
	CourseID      *string `json:"course_id"`
	SessionYearID *string `json:"session_year_id"`
}

// normalize turns empty optional strings into nil so they land as SQL
// NULL instead of failing foreign key checks.
func (r *studentRequest) normalize() {
	if r.CourseID != nil && *r.CourseID == "" {
		r.CourseID = nil
	}
	if r.SessionYearID != nil && *r.SessionYearID == "" {
		r.SessionYearID = nil
	}
	if r.DateOfBirth != nil && *r.DateOfBirth == "" {
		r.DateOfBirth = nil
	}
}

func (r *studentRequest) birthDate() (*time.Time, error) {
	if r.DateOfBirth == nil {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *r.DateOfBirth)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func checkReferences(req *studentRequest) error {
	db := config.GetDB()
	if req.CourseID != nil {
		if _, err := database.GetCourseByID(db, *req.CourseID); err != nil {
			return err
		}
	}
	if req.SessionYearID != nil {
		if _, err := database.GetSessionYearByID(db, *req.SessionYearID); err != nil {
			return err
		}
	}
	return nil
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	req.normalize()
	if req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fiber.Map{"password": "password is required"}})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}
	dob, err := req.birthDate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date_of_birth, expected YYYY-MM-DD"})
	}
	if err := checkReferences(&req); err != nil {
		return helpers.StoreError(c, err, "referenced course or session year not found")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	// Admin-created accounts skip the approval queue.
	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleStudent,
		IsActive:  true,
	}
	student := &models.Student{
		Gender:        req.Gender,
		Address:       req.Address,
		DateOfBirth:   dob,
		CourseID:      req.CourseID,
		SessionYearID: req.SessionYearID,
	}
	if err := database.CreateUser(config.GetDB(), user, student, nil); err != nil {
		return helpers.StoreError(c, err, "student not found")
	}

	student.User = user
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Student added successfully!", "student": student})
}

func ListStudentsAPI(c *fiber.Ctx) error {
	page := helpers.ParsePage(c.Query("page"))
	students, total, page, err := helpers.ListPage(page, func(limit, offset int) ([]*models.Student, int, error) {
		return database.ListStudents(config.GetDB(), limit, offset)
	})
	if err != nil {
		return helpers.StoreError(c, err, "student not found")
	}
	return c.JSON(fiber.Map{
		"students":    students,
		"page":        page,
		"total":       total,
		"total_pages": helpers.TotalPages(total),
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return helpers.StoreError(c, err, "student not found")
	}
	return c.JSON(student)
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return helpers.StoreError(c, err, "student not found")
	}

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	req.normalize()
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}
	dob, err := req.birthDate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date_of_birth, expected YYYY-MM-DD"})
	}
	if err := checkReferences(&req); err != nil {
		return helpers.StoreError(c, err, "referenced course or session year not found")
	}

	hashed := ""
	if req.Password != "" {
		if hashed, err = auth.HashPassword(req.Password); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	student.Gender = req.Gender
	student.Address = req.Address
	student.DateOfBirth = dob
	student.CourseID = req.CourseID
	student.SessionYearID = req.SessionYearID

	if err := database.UpdateStudent(config.GetDB(), student, user, hashed); err != nil {
		return helpers.StoreError(c, err, "student not found")
	}

	updated, err := database.GetStudentByID(config.GetDB(), student.ID)
	if err != nil {
		return helpers.StoreError(c, err, "student not found")
	}
	return c.JSON(fiber.Map{"message": "Student updated successfully!", "student": updated})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudent(config.GetDB(), c.Params("id")); err != nil {
		return helpers.StoreError(c, err, "student not found")
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully!"})
}
