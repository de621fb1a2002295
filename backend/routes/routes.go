package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"presence-analyzer/backend/config"
	"presence-analyzer/backend/controllers"
	"presence-analyzer/backend/middleware"
	"presence-analyzer/backend/web"
)

// NewApp builds the fiber app with middleware and every route.
func NewApp(cfg *config.Config, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, OPTIONS",
	}))
	app.Use(middleware.LoggingMiddleware(logger))
	if cfg.MetricsEnabled {
		app.Use(middleware.MetricsMiddleware())
	}

	SetupRoutes(app, cfg, logger)
	return app
}

func SetupRoutes(app *fiber.App, cfg *config.Config, logger *zap.Logger) {
	// Pages
	pagesController := controllers.NewPagesController(logger)
	app.Get("/", pagesController.PresenceWeekday)
	app.Get("/mean-time", pagesController.MeanTime)
	app.Get("/start-end", pagesController.StartEnd)
	app.Use("/static", filesystem.New(filesystem.Config{
		Root: http.FS(web.Static()),
	}))

	// Health and metrics
	healthController := controllers.NewHealthController(cfg, logger)
	app.Get("/health", healthController.GetHealth)
	if cfg.MetricsEnabled {
		metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		app.Get("/metrics", func(c *fiber.Ctx) error {
			metricsHandler(c.Context())
			return nil
		})
	}

	// Presence API
	presenceController := controllers.NewPresenceController(cfg, logger)
	api := app.Group("/api/v1")
	api.Get("/users", presenceController.GetUsers)
	api.Get("/mean_time_weekday/:user_id", presenceController.GetMeanTimeWeekday)
	api.Get("/presence_weekday/:user_id", presenceController.GetPresenceWeekday)
	api.Get("/presence_start_end/:user_id", presenceController.GetPresenceStartEnd)
}
