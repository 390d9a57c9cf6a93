package routes

import (
	"vibesync_server/services"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(app *fiber.App) {
	app.Post("/register", services.Register)
	app.Post("/login", services.Login)
	app.Get("/users", services.Users)
}
