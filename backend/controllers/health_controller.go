package controllers

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"presence-analyzer/backend/config"
	"presence-analyzer/backend/utils"
)

type HealthController struct {
	Cfg *config.Config
	Log *zap.Logger
}

func NewHealthController(cfg *config.Config, log *zap.Logger) *HealthController {
	return &HealthController{Cfg: cfg, Log: log}
}

// GetHealth reports whether the presence data file can be opened.
func (hc *HealthController) GetHealth(c *fiber.Ctx) error {
	f, err := os.Open(hc.Cfg.DataCSV)
	if err != nil {
		hc.Log.Warn("Presence data unavailable", zap.String("path", hc.Cfg.DataCSV), zap.Error(err))
		return utils.ServiceUnavailable(c, "Presence data unavailable")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return utils.ServiceUnavailable(c, "Presence data unavailable")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"data_csv":      hc.Cfg.DataCSV,
		"data_modified": info.ModTime().UTC(),
		"data_size":     info.Size(),
	})
}
