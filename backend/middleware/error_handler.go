package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"presence-analyzer/backend/utils"
)

// ErrorHandler renders errors that reach fiber unhandled with the JSON
// error envelope. Server errors are logged.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("Internal Server Error", zap.Error(err), zap.String("path", c.Path()))
		}

		return utils.Error(c, code, err)
	}
}
