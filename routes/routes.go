package routes

import (
	"vibesync_server/config"
	"vibesync_server/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// SetRoutes sets all routes of server
func SetRoutes(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.Config.Origin,
		AllowCredentials: true,
	}))

	app.Get("/", helpers.OKResponse)

	authRoutes(app)
	friendRoutes(app)
	chatRoutes(app)
	songRoutes(app)
	aiRoutes(app)
}
