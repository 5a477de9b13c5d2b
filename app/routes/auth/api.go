package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/helpers"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/services"
)

// DashboardRoute is where a freshly logged-in user of the given role is
// sent.
func DashboardRoute(role string) string {
	switch role {
	case models.RoleAdmin:
		return "/dashboard/admin"
	case models.RoleStaff:
		return "/dashboard/staff"
	case models.RoleStudent:
		return "/dashboard/student"
	}
	return "/auth/login"
}

// LoginPromptAPI is the landing point for redirected browsers and
// denied requests.
func LoginPromptAPI(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Please log in with POST /auth/login.",
	})
}

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}

	db := config.GetDB()
	user, err := database.GetUserByUsername(db, req.Username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid username or password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid username or password"})
	}

	// credentials are fine but the account awaits approval
	if !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "inactive_account",
			"message": "Your account is not active. Please wait for administrator approval.",
		})
	}

	sessionID := GenerateSessionID()
	expires := SessionExpiry()
	if err := database.CreateSession(db, sessionID, user.ID, expires); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	SetSessionCookie(c, sessionID, expires)

	token, err := GenerateJWT(user.ID, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(fiber.Map{
		"message":  "Welcome, " + user.FullName() + "!",
		"token":    token,
		"user":     user,
		"redirect": DashboardRoute(user.Role),
	})
}

func SignupAPI(c *fiber.Ctx) error {
	type SignupRequest struct {
		Username  string `json:"username" validate:"required,min=3,max=150"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=8"`
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
		Role      string `json:"role" validate:"required,oneof=staff student"`
	}

	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	// Self-registered accounts always start inactive, whatever role was
	// requested; an admin flips them active later.
	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsActive:  false,
	}

	if err := database.CreateUser(config.GetDB(), user, nil, nil); err != nil {
		var conflict *database.ConflictError
		if errors.As(err, &conflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": conflict.Message})
		}
		log.Printf("Signup failed for %q: %v", req.Username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	services.NotifyAdminOfSignup(user)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created successfully! Please wait for administrator approval to log in.",
		"user":    user,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	if sessionID := c.Cookies(SessionCookie); sessionID != "" {
		if err := database.DeleteSession(config.GetDB(), sessionID); err != nil {
			log.Printf("Failed to delete session: %v", err)
		}
	}
	ClearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "You have been logged out.", "redirect": "/auth/login"})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fields := helpers.ValidateStruct(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "fields": fields})
	}

	user := CurrentUser(c)
	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "current password is incorrect"})
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	if err := database.UpdateUserPassword(config.GetDB(), user.ID, hashed); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

// ProfileAPI returns the authenticated identity with its role profile.
func ProfileAPI(c *fiber.Ctx) error {
	user := CurrentUser(c)
	db := config.GetDB()

	resp := fiber.Map{"user": user}
	switch user.Role {
	case models.RoleStudent:
		if student, err := database.GetStudentByUserID(db, user.ID); err == nil {
			resp["student"] = student
		}
	case models.RoleStaff:
		if staff, err := database.GetStaffByUserID(db, user.ID); err == nil {
			resp["staff"] = staff
		}
	}
	return c.JSON(resp)
}
