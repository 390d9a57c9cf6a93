package routes

import (
	"vibesync_server/services"

	"github.com/gofiber/fiber/v2"
)

func aiRoutes(app *fiber.App) {
	ai := app.Group("/ai")
	ai.Post("/chat", services.AIChat)
}
