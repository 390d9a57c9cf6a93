package helpers

import (
	"vibesync_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// OKResponse answers the health route
func OKResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(schemas.Message{
		Message: "Server is vibing!",
	})
}
