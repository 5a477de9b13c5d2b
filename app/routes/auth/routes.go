package auth

import "github.com/gofiber/fiber/v2"

func SetupAuthRoutes(app *fiber.App) {
	group := app.Group("/auth")

	// Public routes
	group.Get("/login", LoginPromptAPI)
	group.Post("/login", LoginAPI)
	group.Post("/signup", SignupAPI)
	group.Post("/logout", LogoutAPI)

	// Protected routes
	group.Use(AuthMiddleware)
	group.Get("/profile", ProfileAPI)
	group.Post("/change-password", ChangePasswordAPI)
}
