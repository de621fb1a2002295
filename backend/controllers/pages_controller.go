package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"presence-analyzer/backend/utils"
	"presence-analyzer/backend/web"
)

type PagesController struct {
	Log *zap.Logger
}

func NewPagesController(log *zap.Logger) *PagesController {
	return &PagesController{Log: log}
}

// PresenceWeekday renders the presence by weekday page.
func (pc *PagesController) PresenceWeekday(c *fiber.Ctx) error {
	return pc.render(c, "presence_weekday.html")
}

// MeanTime renders the presence mean time page.
func (pc *PagesController) MeanTime(c *fiber.Ctx) error {
	return pc.render(c, "mean_time_weekday.html")
}

// StartEnd renders the presence start-end page.
func (pc *PagesController) StartEnd(c *fiber.Ctx) error {
	return pc.render(c, "presence_start_end.html")
}

func (pc *PagesController) render(c *fiber.Ctx, name string) error {
	page, err := web.Page(name)
	if err != nil {
		pc.Log.Error("Missing page", zap.String("page", name), zap.Error(err))
		return utils.InternalServerError(c, "Page unavailable")
	}
	c.Type("html", "utf-8")
	return c.Send(page)
}
