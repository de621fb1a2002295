package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"presence-analyzer/backend/metrics"
)

// MetricsMiddleware counts requests and observes latency per route pattern.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := responseStatus(c, err)
		route := c.Route().Path

		metrics.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		metrics.HTTPLatency.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

		return err
	}
}

// responseStatus is the status the error handler will send for err, or the
// status already written when the handler succeeded.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
