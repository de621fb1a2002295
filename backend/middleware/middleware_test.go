package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"presence-analyzer/backend/metrics"
)

func newTestApp(logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger)})
	app.Use(LoggingMiddleware(logger))
	app.Use(MetricsMiddleware())

	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/gone/:id", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("disk on fire")
	})
	return app
}

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := newTestApp(zap.New(core))

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	entries := logs.FilterMessage("Request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/ok", fields["path"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestErrorHandler(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := newTestApp(zap.New(core))

	resp, err := app.Test(httptest.NewRequest("GET", "/gone/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 0, logs.FilterMessage("Internal Server Error").Len())

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, 1, logs.FilterMessage("Internal Server Error").Len())

	resp, err = app.Test(httptest.NewRequest("GET", "/nowhere", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMetricsMiddleware(t *testing.T) {
	app := newTestApp(zap.NewNop())
	counter := metrics.HTTPRequests.WithLabelValues("GET", "/gone/:id", "404")
	before := testutil.ToFloat64(counter)

	_, err := app.Test(httptest.NewRequest("GET", "/gone/1", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/gone/2", nil))
	require.NoError(t, err)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
