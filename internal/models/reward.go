package models

import (
	"slices"
	"time"
)

// Activity is one entry in a user's chronological reward log.
type Activity struct {
	Type      string    `json:"type"` // e.g. "like", "diary"
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// UserReward accumulates a user's points, derived level, earned badges and
// activity log. One exists per user, created lazily on first activity or
// first query. Level is always points/100 + 1.
type UserReward struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Points     int        `json:"points"`
	Level      int        `json:"level"`
	Badges     []string   `json:"badges"`
	Activities []Activity `json:"activities"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// HasBadge reports whether the badge was already earned.
func (r *UserReward) HasBadge(badgeID string) bool {
	return slices.Contains(r.Badges, badgeID)
}

// Badge describes an earnable badge in the catalog.
type Badge struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	RequiredPoints int    `json:"required_points"`
}

// LeaderboardEntry is one row of the points leaderboard.
type LeaderboardEntry struct {
	UserID   string   `json:"user_id"`
	UserName string   `json:"user_name"`
	Points   int      `json:"points"`
	Level    int      `json:"level"`
	Badges   []string `json:"badges"`
}
