package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func LoggingMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Передаем управление следующему обработчику
		err := c.Next()

		// Логируем информацию о запросе
		logger.Info("Request",
			zap.String("ip", c.IP()),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", responseStatus(c, err)),
			zap.Duration("latency", time.Since(start)),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
			zap.Error(err),
		)

		return err
	}
}
