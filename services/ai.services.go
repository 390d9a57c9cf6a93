package services

import (
	"vibesync_server/errors"
	"vibesync_server/global"
	"vibesync_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// AIChat proxies a prompt to the text-generation collaborator
func AIChat(c *fiber.Ctx) error {

	req := new(schemas.AIChatSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	text, err := global.TextGen.Generate(global.Context, req.Message)
	if err != nil {
		return errors.HandleInternalError(c, "textgen", err.Error())
	}

	return c.JSON(schemas.AIChatResponseSchema{Text: text})
}
