package utils

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerConfig определяет конфигурацию для логгера
type LoggerConfig struct {
	// Уровень логирования (debug/info/warn/error)
	Level string
	// Формат логов (console/json)
	Format string
	// Имя приложения, добавляется в каждую запись
	AppName string
}

// InitLogger инициализирует и возвращает логгер.
// Без конфигурации используется консольный формат и уровень info.
func InitLogger(config ...LoggerConfig) (*zap.Logger, error) {
	cfg := LoggerConfig{Level: "info", Format: "console"}
	if len(config) > 0 {
		cfg = config[0]
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	// Настройка формата логов
	var zcfg zap.Config
	if cfg.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	if cfg.AppName != "" {
		logger = logger.With(zap.String("app", cfg.AppName))
	}
	return logger, nil
}
