package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vinculo-app/backend/internal/models"
)

// ShareRepository defines the interface for share records. Create rejects a
// duplicate (post, user) pair with ErrAlreadyShared.
type ShareRepository interface {
	Create(share *models.Share) error
	FindByPostID(postID string) ([]models.Share, error)
	FindByUserID(userID string) ([]models.Share, error)
}

// MemoryShareRepository implements ShareRepository on an in-process slice.
type MemoryShareRepository struct {
	mu     sync.RWMutex
	shares []models.Share
}

// NewMemoryShareRepository creates a new MemoryShareRepository
func NewMemoryShareRepository() *MemoryShareRepository {
	return &MemoryShareRepository{}
}

func (r *MemoryShareRepository) Create(share *models.Share) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.shares {
		if r.shares[i].PostID == share.PostID && r.shares[i].UserID == share.UserID {
			return ErrAlreadyShared
		}
	}
	if share.ID == "" {
		share.ID = uuid.NewString()
	}
	share.CreatedAt = time.Now()
	r.shares = append(r.shares, *share)
	return nil
}

func (r *MemoryShareRepository) FindByPostID(postID string) ([]models.Share, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Share{}
	for i := range r.shares {
		if r.shares[i].PostID == postID {
			out = append(out, r.shares[i])
		}
	}
	return out, nil
}

func (r *MemoryShareRepository) FindByUserID(userID string) ([]models.Share, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Share{}
	for i := range r.shares {
		if r.shares[i].UserID == userID {
			out = append(out, r.shares[i])
		}
	}
	return out, nil
}
