package staff

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/helpers"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

type staffRequest struct {
	Username    string  `json:"username" validate:"required,min=3,max=150"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"omitempty,min=8"`
	FirstName   string  `json:"first_name" validate:"required,max=150"`
	LastName    string  `json:"last_name" validate:"required,max=150"`
	Gender      string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Address     string  `json:"address" validate:"max=500"`
	DateOfBirth *string `json:"date_of_birth"`
}

func (r *staffRequest) birthDate() (*time.Time, error) {
	if r.DateOfBirth == nil || *r.DateOfBirth == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *r.DateOfBirth)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func CreateStaffAPI(c *fiber.Ctx) error {
	var req staffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
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
		Role:      models.RoleStaff,
		IsActive:  true,
	}
	member := &models.Staff{
		Gender:      req.Gender,
		Address:     req.Address,
		DateOfBirth: dob,
	}
	if err := database.CreateUser(config.GetDB(), user, nil, member); err != nil {
		return helpers.StoreError(c, err, "staff member not found")
	}

	member.User = user
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Staff added successfully!", "staff": member})
}

func ListStaffAPI(c *fiber.Ctx) error {
	page := helpers.ParsePage(c.Query("page"))
	staff, total, page, err := helpers.ListPage(page, func(limit, offset int) ([]*models.Staff, int, error) {
		return database.ListStaff(config.GetDB(), limit, offset)
	})
	if err != nil {
		return helpers.StoreError(c, err, "staff member not found")
	}
	return c.JSON(fiber.Map{
		"staff":       staff,
		"page":        page,
		"total":       total,
		"total_pages": helpers.TotalPages(total),
	})
}

func GetStaffAPI(c *fiber.Ctx) error {
	member, err := database.GetStaffByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return helpers.StoreError(c, err, "staff member not found")
	}
	return c.JSON(member)
}

func UpdateStaffAPI(c *fiber.Ctx) error {
	member, err := database.GetStaffByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return helpers.StoreError(c, err, "staff member not found")
	}

	var req staffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}
	dob, err := req.birthDate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date_of_birth, expected YYYY-MM-DD"})
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
	member.Gender = req.Gender
	member.Address = req.Address
	member.DateOfBirth = dob

	if err := database.UpdateStaff(config.GetDB(), member, user, hashed); err != nil {
		return helpers.StoreError(c, err, "staff member not found")
	}

	updated, err := database.GetStaffByID(config.GetDB(), member.ID)
	if err != nil {
		return helpers.StoreError(c, err, "staff member not found")
	}
	return c.JSON(fiber.Map{"message": "Staff updated successfully!", "staff": updated})
}

func DeleteStaffAPI(c *fiber.Ctx) error {
	if err := database.DeleteStaff(config.GetDB(), c.Params("id")); err != nil {
		return helpers.StoreError(c, err, "staff member not found")
	}
	return c.JSON(fiber.Map{"message": "Staff deleted successfully!"})
}
