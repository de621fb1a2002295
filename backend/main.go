package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"presence-analyzer/backend/config"
	"presence-analyzer/backend/routes"
	"presence-analyzer/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(utils.LoggerConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		AppName: cfg.AppName,
	})
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	app := routes.NewApp(cfg, logger)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("Shutting down server")
		if err := app.Shutdown(); err != nil {
			logger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Starting server",
		zap.String("port", cfg.ServerPort),
		zap.String("data_csv", cfg.DataCSV),
	)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
