package errors

import (
	"log"

	"vibesync_server/global"
	"vibesync_server/schemas"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// HandleFatalError handles global error
func HandleFatalError(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

// HandleBasicError handles basic error and logs
func HandleBasicError(err error) bool {
	if err != nil {
		global.InternalLogger.Println(err)
		return true
	}
	return false
}

// HandleInternalError handles internal errors (things that should never happen in normal circumstances).
// Detail is logged, never echoed.
func HandleInternalError(c *fiber.Ctx, problem string, err string) error {
	global.InternalLogger.Println("IP: " + c.IP() + "; Problem: " + problem + "; Error: " + err)
	return c.Status(fiber.StatusInternalServerError).JSON(schemas.ErrorResponse{
		Error: true,
	})
}

// HandleBadRequestError handles bad request errors (client error that is harmless to server and state)
func HandleBadRequestError(c *fiber.Ctx, problem string, description string) error {
	global.MonitorLogger.Println("Bad Request; Problem: " + problem + "; Description: " + description)
	return c.Status(fiber.StatusBadRequest).JSON(schemas.ErrorResponse{
		Error:       true,
		Problem:     problem,
		Description: description,
	})
}

// HandleUnauthorizedError handles missing/malformed/expired token rejections
func HandleUnauthorizedError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(schemas.ErrorResponse{
		Error:       true,
		Problem:     "Authorization",
		Description: "invalid",
	})
}

// HandleInvalidCredentialsError handles login failures. Unknown email and
// wrong password produce this same response.
func HandleInvalidCredentialsError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(schemas.ErrorResponse{
		Error:       true,
		Problem:     "Credentials",
		Description: "invalid",
	})
}

// HandleConflictError handles duplicate username/email rejections
func HandleConflictError(c *fiber.Ctx, problem string) error {
	return c.Status(fiber.StatusConflict).JSON(schemas.ErrorResponse{
		Error:       true,
		Problem:     problem,
		Description: "exists",
	})
}

// HandleNotFoundError handles dangling-id rejections
func HandleNotFoundError(c *fiber.Ctx, problem string) error {
	return c.Status(fiber.StatusNotFound).JSON(schemas.ErrorResponse{
		Error:       true,
		Problem:     problem,
		Description: "not found",
	})
}

// HandleValidatorError handles errors when validating request
func HandleValidatorError(c *fiber.Ctx, err error) error {
	validatorErr := err.(validator.ValidationErrors)[0]
	return HandleBadRequestError(c, validatorErr.StructField(), validatorErr.Tag())
}

// HandleBadJsonError handles json request parser errors
func HandleBadJsonError(c *fiber.Ctx) error {
	return HandleBadRequestError(c, "JSON body", "invalid")
}
