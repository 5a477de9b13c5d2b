package helpers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
)

// StoreError maps store errors to responses: missing rows become 404,
// uniqueness conflicts 409 with the constraint's message, anything else
// is logged and reported as a generic 500 so internals never leak.
func StoreError(c *fiber.Ctx, err error, notFoundMsg string) error {
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundMsg})
	}
	var conflict *database.ConflictError
	if errors.As(err, &conflict) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": conflict.Message})
	}
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
