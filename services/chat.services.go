package services

import (
	"vibesync_server/helpers"
	"vibesync_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// ChatAccess runs the access gate for a direct-chat page visit. Fail-closed:
// any fault on the way to a verdict denies.
func ChatAccess(c *fiber.Ctx) error {

	token := helpers.BearerToken(string(c.Request().Header.Peek("Authorization")))

	decision, _ := helpers.ResolveChatAccess(token, c.Params("friendId"), helpers.IsFriend)
	if decision != helpers.GateGranted {
		return c.Status(fiber.StatusForbidden).JSON(schemas.ChatAccessSchema{
			Access: "denied",
		})
	}

	return c.JSON(schemas.ChatAccessSchema{
		Access: "granted",
	})
}
