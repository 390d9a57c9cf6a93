package routes

import (
	"vibesync_server/middlewares"
	"vibesync_server/services"

	"github.com/gofiber/fiber/v2"
)

func friendRoutes(app *fiber.App) {
	app.Post("/add-friend/:friendId", middlewares.Authenticate, services.AddFriend)
	app.Get("/check-friendship/:friendId", middlewares.Authenticate, services.CheckFriendship)
}
