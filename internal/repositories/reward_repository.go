package repositories

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vinculo-app/backend/internal/models"
)

// RewardRepository defines the interface for per-user reward state. Records
// are created lazily; AddActivity applies the points and recomputes the
// level atomically; AddBadge is idempotent.
type RewardRepository interface {
	FindByUserID(userID string) (*models.UserReward, error)
	GetOrCreate(userID string) (*models.UserReward, error)
	AddActivity(userID, kind string, points int) (*models.UserReward, error)
	AddBadge(userID, badgeID string) (bool, error)
}

// MemoryRewardRepository implements RewardRepository on an in-process slice.
type MemoryRewardRepository struct {
	mu      sync.RWMutex
	rewards []models.UserReward
}

// NewMemoryRewardRepository creates a new MemoryRewardRepository
func NewMemoryRewardRepository() *MemoryRewardRepository {
	return &MemoryRewardRepository{}
}

func cloneReward(r models.UserReward) *models.UserReward {
	cp := r
	cp.Badges = slices.Clone(r.Badges)
	cp.Activities = slices.Clone(r.Activities)
	return &cp
}

func (r *MemoryRewardRepository) FindByUserID(userID string) (*models.UserReward, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(userID); i >= 0 {
		return cloneReward(r.rewards[i]), nil
	}
	return nil, ErrNotFound
}

func (r *MemoryRewardRepository) GetOrCreate(userID string) (*models.UserReward, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneReward(r.rewards[r.ensure(userID)]), nil
}

func (r *MemoryRewardRepository) AddActivity(userID, kind string, points int) (*models.UserReward, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.ensure(userID)
	reward := &r.rewards[i]
	reward.Activities = append(reward.Activities, models.Activity{
		Type:      kind,
		Points:    points,
		CreatedAt: time.Now(),
	})
	reward.Points += points
	reward.Level = reward.Points/100 + 1
	reward.UpdatedAt = time.Now()
	return cloneReward(*reward), nil
}

func (r *MemoryRewardRepository) AddBadge(userID, badgeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.ensure(userID)
	reward := &r.rewards[i]
	if slices.Contains(reward.Badges, badgeID) {
		return false, nil
	}
	reward.Badges = append(reward.Badges, badgeID)
	reward.UpdatedAt = time.Now()
	return true, nil
}

// ensure returns the index of the user's reward record, creating it when
// absent. Must be called with the write lock held.
func (r *MemoryRewardRepository) ensure(userID string) int {
	if i := r.indexOf(userID); i >= 0 {
		return i
	}
	r.rewards = append(r.rewards, models.UserReward{
		ID:         uuid.NewString(),
		UserID:     userID,
		Points:     0,
		Level:      1,
		Badges:     []string{},
		Activities: []models.Activity{},
		UpdatedAt:  time.Now(),
	})
	return len(r.rewards) - 1
}

// indexOf must be called with the lock held.
func (r *MemoryRewardRepository) indexOf(userID string) int {
	for i := range r.rewards {
		if r.rewards[i].UserID == userID {
			return i
		}
	}
	return -1
}
