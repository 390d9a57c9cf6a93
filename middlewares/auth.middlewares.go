package middlewares

import (
	"vibesync_server/errors"
	"vibesync_server/helpers"
	"vibesync_server/schemas"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Authenticate authenticates the bearer session token on the request.
// Every authenticated route runs this before touching any mutable state.
func Authenticate(c *fiber.Ctx) error {

	accessToken := helpers.BearerToken(string(c.Request().Header.Peek("Authorization")))

	userID, username, err := helpers.ParseJWT(accessToken)
	if err != nil {
		return errors.HandleUnauthorizedError(c)
	}

	c.Locals("userid", userID)
	c.Locals("username", username)
	return c.Next()
}

// AuthenticateStream authenticates a websocket upgrade via the token query param
func AuthenticateStream(c *fiber.Ctx) error {

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	userID, username, err := helpers.ParseJWT(c.Query("token"))
	if err != nil {
		return errors.HandleUnauthorizedError(c)
	}

	c.Locals("userid", userID)
	c.Locals("username", username)
	return c.Next()
}

// GateChatStream runs the fail-closed access gate before a direct-chat
// websocket upgrade. Runs after AuthenticateStream, which already resolved
// the caller identity.
func GateChatStream(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	decision := helpers.ResolveChatAccessFor(userID, c.Params("friendId"), helpers.IsFriend)
	if decision != helpers.GateGranted {
		return c.Status(fiber.StatusForbidden).JSON(schemas.ChatAccessSchema{
			Access: "denied",
		})
	}

	return c.Next()
}

// UpgradeRequired admits only websocket upgrade requests. The lobby channel
// itself carries no auth or friendship check.
func UpgradeRequired(c *fiber.Ctx) error {

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return c.Next()
}
