package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

const SessionCookie = "session_id"

// CurrentUser returns the authenticated user attached by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

// AuthMiddleware resolves the caller's identity from the session cookie
// or a bearer token and runs the gate's authentication checks. The user
// row is always read fresh from the database so a deactivation denies
// the very next request.
func AuthMiddleware(c *fiber.Ctx) error {
	db := config.GetDB()
	var user *models.User

	if sessionID := c.Cookies(SessionCookie); sessionID != "" {
		if u, err := database.GetSessionUser(db, sessionID); err == nil {
			user = u
		}
	}

	if user == nil {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if claims, err := ValidateJWT(strings.TrimPrefix(header, "Bearer ")); err == nil {
				if u, err := database.GetUserByID(db, claims.UserID); err == nil {
					user = u
				}
			}
		}
	}

	if err := Authorize(user); err != nil {
		return Deny(c, user, err)
	}

	c.Locals("user", user)
	return c.Next()
}

// RoleMiddleware gates a route group on an explicit allowed-role set.
// It must run after AuthMiddleware.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if err := Authorize(user, allowedRoles...); err != nil {
			return Deny(c, user, err)
		}
		return c.Next()
	}
}

// Deny writes the gate denial. An inactive account is forced out: its
// sessions are deleted and the cookie cleared before the response.
// Browser GETs are redirected to the login page, API callers get the
// reason as JSON.
func Deny(c *fiber.Ctx, user *models.User, err error) error {
	if errors.Is(err, ErrInactiveAccount) {
		if user != nil {
			// forced logout; the denial stands even if this fails
			_ = database.DeleteSessionsForUser(config.GetDB(), user.ID)
		}
		ClearSessionCookie(c)
	}

	reason := DenialReason(err)
	status := fiber.StatusUnauthorized
	if errors.Is(err, ErrForbidden) {
		status = fiber.StatusForbidden
	}

	if c.Method() == fiber.MethodGet && strings.Contains(c.Get("Accept"), "text/html") {
		return c.Redirect("/auth/login")
	}
	return c.Status(status).JSON(fiber.Map{"error": reason})
}

func SetSessionCookie(c *fiber.Ctx, sessionID string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
