package services

import (
	"context"
	"slices"

	"github.com/vinculo-app/backend/internal/models"
	"github.com/vinculo-app/backend/internal/repositories"
)

// Activity point weights for the built-in reward triggers.
const (
	PointsLike  = 1
	PointsDiary = 10
)

// pointsPerLevel drives the level formula: level = points/100 + 1.
const pointsPerLevel = 100

// badgeCatalog lists every earnable badge. Only a subset is wired to award
// rules today; the rest surface in the catalog as not yet earnable.
var badgeCatalog = []models.Badge{
	{ID: "first_post", Name: "First Post", Description: "Published your first post", RequiredPoints: 0},
	{ID: "social_butterfly", Name: "Social Butterfly", Description: "Wrote 10 comments", RequiredPoints: 0},
	{ID: "helpful", Name: "Helpful", Description: "Received 50 likes", RequiredPoints: 0},
	{ID: "diary_keeper", Name: "Diary Keeper", Description: "Created 10 diary entries", RequiredPoints: 0},
	{ID: "level_5", Name: "Level 5", Description: "Reached level 5", RequiredPoints: 500},
	{ID: "level_10", Name: "Level 10", Description: "Reached level 10", RequiredPoints: 1000},
}

// BadgeWithStatus is a catalog badge annotated with the caller's earned flag.
type BadgeWithStatus struct {
	models.Badge
	Earned bool `json:"earned"`
}

// RewardSummary is the full reward view for one user.
type RewardSummary struct {
	models.UserReward
	NextLevelPoints     int               `json:"next_level_points"`
	ProgressToNextLevel float64           `json:"progress_to_next_level"`
	AvailableBadges     []BadgeWithStatus `json:"available_badges"`
}

// RewardsService owns points, levels and badges. Badge evaluation is
// pull-based: activities only bank points, and a caller must invoke
// CheckAndAwardBadges for new badges to materialize.
type RewardsService struct {
	rewards repositories.RewardRepository
	posts   repositories.PostRepository
	diary   repositories.DiaryRepository
	users   repositories.UserRepository
}

// NewRewardsService creates a new RewardsService
func NewRewardsService(
	rewardRepo repositories.RewardRepository,
	postRepo repositories.PostRepository,
	diaryRepo repositories.DiaryRepository,
	userRepo repositories.UserRepository,
) *RewardsService {
	return &RewardsService{
		rewards: rewardRepo,
		posts:   postRepo,
		diary:   diaryRepo,
		users:   userRepo,
	}
}

// AddActivity banks points for a qualifying activity. The level is
// recomputed by the repository on every call.
func (s *RewardsService) AddActivity(userID, kind string, points int) (*models.UserReward, error) {
	return s.rewards.AddActivity(userID, kind, points)
}

// MyRewards returns the user's reward record (created lazily) together with
// level progress and the annotated badge catalog.
func (s *RewardsService) MyRewards(userID string) (*RewardSummary, error) {
	reward, err := s.rewards.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	nextLevelPoints := reward.Level * pointsPerLevel
	currentLevelPoints := (reward.Level - 1) * pointsPerLevel
	progress := float64(reward.Points-currentLevelPoints) / float64(nextLevelPoints-currentLevelPoints) * 100
	progress = min(progress, 100)

	badges := make([]BadgeWithStatus, 0, len(badgeCatalog))
	for _, b := range badgeCatalog {
		badges = append(badges, BadgeWithStatus{Badge: b, Earned: reward.HasBadge(b.ID)})
	}

	return &RewardSummary{
		UserReward:          *reward,
		NextLevelPoints:     nextLevelPoints,
		ProgressToNextLevel: progress,
		AvailableBadges:     badges,
	}, nil
}

// CheckAndAwardBadges evaluates the badge rules for the user and returns the
// IDs of any newly awarded badges. Awarding is idempotent.
func (s *RewardsService) CheckAndAwardBadges(ctx context.Context, userID string) ([]string, error) {
	reward, err := s.rewards.FindByUserID(userID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return []string{}, nil
		}
		return nil, err
	}

	posts, err := s.posts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	diaryCount, err := s.diary.CountByUserID(userID)
	if err != nil {
		return nil, err
	}

	newBadges := []string{}
	award := func(badgeID string) error {
		added, err := s.rewards.AddBadge(userID, badgeID)
		if err != nil {
			return err
		}
		if added {
			newBadges = append(newBadges, badgeID)
		}
		return nil
	}

	if len(posts) >= 1 {
		if err := award("first_post"); err != nil {
			return nil, err
		}
	}
	if diaryCount >= 10 {
		if err := award("diary_keeper"); err != nil {
			return nil, err
		}
	}
	if reward.Level >= 5 {
		if err := award("level_5"); err != nil {
			return nil, err
		}
	}
	if reward.Level >= 10 {
		if err := award("level_10"); err != nil {
			return nil, err
		}
	}
	return newBadges, nil
}

// Leaderboard returns every user ranked by points, highest first. Users
// without a reward record rank with zero points at level 1.
func (s *RewardsService) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	users, err := s.users.All()
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entry := models.LeaderboardEntry{
			UserID:   u.ID,
			UserName: u.Name,
			Points:   0,
			Level:    1,
			Badges:   []string{},
		}
		if reward, err := s.rewards.FindByUserID(u.ID); err == nil {
			entry.Points = reward.Points
			entry.Level = reward.Level
			entry.Badges = reward.Badges
		}
		entries = append(entries, entry)
	}

	slices.SortStableFunc(entries, func(a, b models.LeaderboardEntry) int {
		return b.Points - a.Points
	})
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}
