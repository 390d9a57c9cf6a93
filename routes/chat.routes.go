package routes

import (
	"vibesync_server/middlewares"
	"vibesync_server/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func chatRoutes(app *fiber.App) {
	// global lobby: no auth or friendship filtering on the channel itself
	app.Get("/lobby", middlewares.UpgradeRequired, websocket.New(services.Lobby))

	// direct chat: page gate plus gated websocket, both fail-closed
	app.Get("/chat/:friendId/access", services.ChatAccess)
	app.Get("/chat/:friendId/ws", middlewares.AuthenticateStream, middlewares.GateChatStream, websocket.New(services.DirectChat))
}
