package services

import (
	"context"
	"testing"

	"github.com/vinculo-app/backend/internal/models"
	"github.com/vinculo-app/backend/internal/repositories"
)

func setupRewardsService() (*RewardsService, repositories.PostRepository, repositories.DiaryRepository, repositories.UserRepository) {
	rewardRepo := repositories.NewMemoryRewardRepository()
	postRepo := repositories.NewMemoryPostRepository()
	diaryRepo := repositories.NewMemoryDiaryRepository()
	userRepo := repositories.NewMemoryUserRepository()
	return NewRewardsService(rewardRepo, postRepo, diaryRepo, userRepo), postRepo, diaryRepo, userRepo
}

func TestPointsAndLevel(t *testing.T) {
	svc, _, _, _ := setupRewardsService()

	for i := 0; i < 10; i++ {
		if _, err := svc.AddActivity("u1", "like", PointsLike); err != nil {
			t.Fatalf("AddActivity: %v", err)
		}
	}
	reward, err := svc.AddActivity("u1", "diary", PointsDiary)
	if err != nil {
		t.Fatalf("AddActivity: %v", err)
	}

	if reward.Points != 20 {
		t.Errorf("expected 20 points, got %d", reward.Points)
	}
	if reward.Level != 1 {
		t.Errorf("expected level 1, got %d", reward.Level)
	}
}

func TestLevelAdvancesEveryHundredPoints(t *testing.T) {
	svc, _, _, _ := setupRewardsService()

	reward, err := svc.AddActivity("u1", "bonus", 250)
	if err != nil {
		t.Fatalf("AddActivity: %v", err)
	}
	if reward.Level != 3 {
		t.Errorf("expected level 3 at 250 points, got %d", reward.Level)
	}
}

func TestMyRewardsCreatesRecordLazily(t *testing.T) {
	svc, _, _, _ := setupRewardsService()

	summary, err := svc.MyRewards("fresh-user")
	if err != nil {
		t.Fatalf("MyRewards: %v", err)
	}
	if summary.Points != 0 || summary.Level != 1 {
		t.Errorf("expected zero points at level 1, got %d points at level %d", summary.Points, summary.Level)
	}
	if summary.NextLevelPoints != 100 {
		t.Errorf("expected next level at 100 points, got %d", summary.NextLevelPoints)
	}
	if len(summary.AvailableBadges) == 0 {
		t.Error("expected the badge catalog in the summary")
	}
	for _, b := range summary.AvailableBadges {
		if b.Earned {
			t.Errorf("fresh user should not have earned badge %s", b.ID)
		}
	}
}

func TestCheckBadgesWithoutRewardRecord(t *testing.T) {
	svc, _, _, _ := setupRewardsService()

	newBadges, err := svc.CheckAndAwardBadges(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("CheckAndAwardBadges: %v", err)
	}
	if len(newBadges) != 0 {
		t.Errorf("expected no badges without a reward record, got %v", newBadges)
	}
}

func TestFirstPostBadge(t *testing.T) {
	svc, postRepo, _, _ := setupRewardsService()
	ctx := context.Background()

	if _, err := svc.AddActivity("u1", "like", PointsLike); err != nil {
		t.Fatalf("AddActivity: %v", err)
	}
	post := &models.Post{UserID: "u1", Content: "hello world", Status: models.PostApproved}
	if err := postRepo.Create(ctx, post); err != nil {
		t.Fatalf("Create post: %v", err)
	}

	newBadges, err := svc.CheckAndAwardBadges(ctx, "u1")
	if err != nil {
		t.Fatalf("CheckAndAwardBadges: %v", err)
	}
	if len(newBadges) != 1 || newBadges[0] != "first_post" {
		t.Errorf("expected [first_post], got %v", newBadges)
	}

	// Second run must not award it again.
	newBadges, err = svc.CheckAndAwardBadges(ctx, "u1")
	if err != nil {
		t.Fatalf("CheckAndAwardBadges: %v", err)
	}
	if len(newBadges) != 0 {
		t.Errorf("expected no new badges on re-check, got %v", newBadges)
	}
}

func TestDiaryKeeperBadge(t *testing.T) {
	svc, _, diaryRepo, _ := setupRewardsService()
	ctx := context.Background()

	if _, err := svc.AddActivity("u1", "diary", PointsDiary); err != nil {
		t.Fatalf("AddActivity: %v", err)
	}
	for i := 0; i < 10; i++ {
		entry := &models.DiaryEntry{UserID: "u1", Title: "day", Content: "note", Mood: models.MoodHappy, Private: true}
		if err := diaryRepo.Create(entry); err != nil {
			t.Fatalf("Create entry: %v", err)
		}
	}

	newBadges, err := svc.CheckAndAwardBadges(ctx, "u1")
	if err != nil {
		t.Fatalf("CheckAndAwardBadges: %v", err)
	}
	found := false
	for _, b := range newBadges {
		if b == "diary_keeper" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected diary_keeper in %v", newBadges)
	}
}

func TestLevelBadges(t *testing.T) {
	svc, _, _, _ := setupRewardsService()
	ctx := context.Background()

	if _, err := svc.AddActivity("u1", "bonus", 950); err != nil {
		t.Fatalf("AddActivity: %v", err)
	}

	newBadges, err := svc.CheckAndAwardBadges(ctx, "u1")
	if err != nil {
		t.Fatalf("CheckAndAwardBadges: %v", err)
	}
	got := map[string]bool{}
	for _, b := range newBadges {
		got[b] = true
	}
	if !got["level_5"] {
		t.Errorf("expected level_5 at level 10, got %v", newBadges)
	}
	if !got["level_10"] {
		t.Errorf("expected level_10 at level 10, got %v", newBadges)
	}
}

func TestLeaderboardRanksByPoints(t *testing.T) {
	svc, _, _, userRepo := setupRewardsService()

	for _, u := range []*models.User{
		{ID: "u1", Name: "Alice", Email: "alice@example.com"},
		{ID: "u2", Name: "Bruno", Email: "bruno@example.com"},
		{ID: "u3", Name: "Carla", Email: "carla@example.com"},
	} {
		if err := userRepo.Create(u); err != nil {
			t.Fatalf("Create user: %v", err)
		}
	}
	if _, err := svc.AddActivity("u2", "bonus", 50); err != nil {
		t.Fatalf("AddActivity: %v", err)
	}
	if _, err := svc.AddActivity("u3", "bonus", 120); err != nil {
		t.Fatalf("AddActivity: %v", err)
	}

	entries, err := svc.Leaderboard(10)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].UserID != "u3" || entries[1].UserID != "u2" || entries[2].UserID != "u1" {
		t.Errorf("unexpected order: %s, %s, %s", entries[0].UserID, entries[1].UserID, entries[2].UserID)
	}
	if entries[2].Points != 0 || entries[2].Level != 1 {
		t.Errorf("user without a record should rank with zero points at level 1, got %d/%d",
			entries[2].Points, entries[2].Level)
	}

	limited, err := svc.Leaderboard(2)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected limit to cap entries at 2, got %d", len(limited))
	}
}
