package routes

import (
	"vibesync_server/middlewares"
	"vibesync_server/services"

	"github.com/gofiber/fiber/v2"
)

func songRoutes(app *fiber.App) {
	songs := app.Group("/songs")
	songs.Use(middlewares.Authenticate)
	songs.Post("/upload", services.UploadSong)
	songs.Get("/mysongs", services.MySongs)
}
