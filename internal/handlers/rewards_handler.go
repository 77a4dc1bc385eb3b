package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vinculo-app/backend/internal/services"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// RewardsHandler exposes the points, levels and badges earned through app
// activity.
type RewardsHandler struct {
	rewards *services.RewardsService
}

// NewRewardsHandler creates a new RewardsHandler
func NewRewardsHandler(rewards *services.RewardsService) *RewardsHandler {
	return &RewardsHandler{rewards: rewards}
}

// RegisterRewardsRoutes registers rewards routes
func (h *RewardsHandler) RegisterRewardsRoutes(g *echo.Group) {
	g.GET("/rewards/me", h.MyRewards)
	g.GET("/rewards/leaderboard", h.Leaderboard)
	g.POST("/rewards/check-badges", h.CheckBadges)
}

// MyRewards returns the caller's points, level progress and badge catalog.
func (h *RewardsHandler) MyRewards(c echo.Context) error {
	summary, err := h.rewards.MyRewards(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, summary)
}

// Leaderboard ranks users by points. Limit is clamped to [1, 100] with a
// default of 10.
func (h *RewardsHandler) Leaderboard(c echo.Context) error {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	entries, err := h.rewards.Leaderboard(limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"leaderboard": entries})
}

// CheckBadges re-evaluates the badge rules for the caller and returns any
// newly awarded badge IDs.
func (h *RewardsHandler) CheckBadges(c echo.Context) error {
	newBadges, err := h.rewards.CheckAndAwardBadges(c.Request().Context(), currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"new_badges": newBadges})
}
