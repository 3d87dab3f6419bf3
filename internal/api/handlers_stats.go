package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.stats.BuildOverview(user.ID)
	if err != nil {
		handler.log.Errorw("stats overview failed", "user_id", user.ID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to build overview")
	}
	return c.JSON(overview)
}

func (handler *Handler) GetMoodTrend(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	windowDays := parsePositiveIntQuery(c.Query("days"), defaultTrendWindowDays, maxTrendWindowDays)
	points, err := handler.stats.MoodTrend(user.ID, windowDays, time.Now())
	if err != nil {
		handler.log.Errorw("mood trend failed", "user_id", user.ID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to build trend")
	}
	return c.JSON(fiber.Map{
		"days":   windowDays,
		"points": points,
	})
}

func (handler *Handler) GetHeatmap(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	grid, err := handler.stats.Heatmap(user.ID)
	if err != nil {
		handler.log.Errorw("heatmap failed", "user_id", user.ID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to build heatmap")
	}
	return c.JSON(fiber.Map{"grid": grid})
}

func (handler *Handler) GetTagCorrelations(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	correlations, err := handler.tagStats.Correlations(user.ID)
	if err != nil {
		handler.log.Errorw("tag correlations failed", "user_id", user.ID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to build correlations")
	}
	return c.JSON(correlations)
}

func (handler *Handler) GetStreak(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	streak, err := handler.stats.Streak(user.ID)
	if err != nil {
		handler.log.Errorw("streak failed", "user_id", user.ID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to compute streak")
	}
	return c.JSON(fiber.Map{"streak": streak})
}

func (handler *Handler) GetWeekComparison(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	comparison, err := handler.stats.CompareWeeks(user.ID, time.Now())
	if err != nil {
		handler.log.Errorw("week comparison failed", "user_id", user.ID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to compare weeks")
	}
	return c.JSON(comparison)
}

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	insights, err := handler.insights.Generate(user.ID)
	if err != nil {
		handler.log.Errorw("insights failed", "user_id", user.ID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to generate insights")
	}
	return c.JSON(insights)
}
