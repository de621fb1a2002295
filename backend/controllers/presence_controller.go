package controllers

import (
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"presence-analyzer/backend/config"
	"presence-analyzer/backend/directory"
	"presence-analyzer/backend/models"
	"presence-analyzer/backend/presence"
	"presence-analyzer/backend/utils"
)

type PresenceController struct {
	Loader *presence.Loader
	Cfg    *config.Config
	Log    *zap.Logger
}

func NewPresenceController(cfg *config.Config, log *zap.Logger) *PresenceController {
	return &PresenceController{
		Loader: presence.NewLoader(log),
		Cfg:    cfg,
		Log:    log,
	}
}

// GetUsers lists every user present in the data file, named from the users
// directory when it is available.
func (pc *PresenceController) GetUsers(c *fiber.Ctx) error {
	data, err := pc.Loader.Load(pc.Cfg.DataCSV)
	if err != nil {
		pc.Log.Error("Failed to load presence data", zap.Error(err))
		return utils.InternalServerError(c, "Failed to read presence data")
	}

	dir, err := directory.Load(pc.Cfg.UsersXML)
	if err != nil {
		pc.Log.Debug("Users directory unavailable, using generated names", zap.Error(err))
	} else {
		pc.Log.Debug("Users directory loaded", zap.Int("users", dir.Len()))
	}

	ids := make([]int, 0, len(data))
	for id := range data {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		user := models.User{UserID: id, Name: fmt.Sprintf("User %d", id)}
		if entry, ok := dir.Lookup(id); ok {
			if entry.Name != "" {
				user.Name = entry.Name
			}
			user.Avatar = entry.Avatar
		}
		users = append(users, user)
	}

	return c.JSON(users)
}

// GetMeanTimeWeekday returns the mean presence time of a user per weekday.
func (pc *PresenceController) GetMeanTimeWeekday(c *fiber.Ctx) error {
	days, ferr := pc.userDays(c)
	if ferr != nil {
		return utils.Error(c, ferr.Code, ferr)
	}

	buckets := presence.GroupByWeekday(days)
	result := make([]models.WeekdayMean, 0, len(buckets))
	for wd, intervals := range buckets {
		result = append(result, models.WeekdayMean{
			Weekday: presence.Weekdays[wd],
			Seconds: presence.Mean(intervals),
		})
	}

	return c.JSON(result)
}

// GetPresenceWeekday returns the total presence time of a user per weekday.
func (pc *PresenceController) GetPresenceWeekday(c *fiber.Ctx) error {
	days, ferr := pc.userDays(c)
	if ferr != nil {
		return utils.Error(c, ferr.Code, ferr)
	}

	sums := presence.SumPerWeekday(presence.GroupByWeekday(days))
	report := make(models.PresenceReport, 0, len(sums))
	for wd, total := range sums {
		report = append(report, models.WeekdayTotal{
			Weekday: presence.Weekdays[wd],
			Seconds: total,
		})
	}

	return c.JSON(report)
}

// GetPresenceStartEnd returns the average start and end time of a user per
// weekday, omitting weekdays without presence.
func (pc *PresenceController) GetPresenceStartEnd(c *fiber.Ctx) error {
	days, ferr := pc.userDays(c)
	if ferr != nil {
		return utils.Error(c, ferr.Code, ferr)
	}

	averages := presence.AverageStartEnd(days)
	result := make([]models.WeekdayStartEnd, 0, len(averages))
	for _, avg := range averages {
		result = append(result, models.WeekdayStartEnd{
			Weekday: avg.Weekday,
			Start:   avg.Start,
			End:     avg.End,
		})
	}

	return c.JSON(result)
}

// userDays resolves the :user_id route parameter against a fresh read of
// the data file.
func (pc *PresenceController) userDays(c *fiber.Ctx) (presence.UserDays, *fiber.Error) {
	userID, err := c.ParamsInt("user_id")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	data, err := pc.Loader.Load(pc.Cfg.DataCSV)
	if err != nil {
		pc.Log.Error("Failed to load presence data", zap.Error(err))
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to read presence data")
	}

	days, ok := data[userID]
	if !ok {
		pc.Log.Debug("User not found", zap.Int("user_id", userID))
		return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	return days, nil
}
