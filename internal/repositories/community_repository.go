package repositories

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vinculo-app/backend/internal/models"
)

// CommunityRepository defines the interface for community data operations.
// Membership changes go through AddMember/RemoveMember so the member set
// stays duplicate-free.
type CommunityRepository interface {
	Create(community *models.Community) error
	FindByID(id string) (*models.Community, error)
	All() ([]models.Community, error)
	FindByLocation(city, state string) ([]models.Community, error)
	Count() (int, error)
	AddMember(communityID, userID string) (*models.Community, error)
	RemoveMember(communityID, userID string) (*models.Community, error)
}

// MemoryCommunityRepository implements CommunityRepository on an in-process slice.
type MemoryCommunityRepository struct {
	mu          sync.RWMutex
	communities []models.Community
}

// NewMemoryCommunityRepository creates a new MemoryCommunityRepository
func NewMemoryCommunityRepository() *MemoryCommunityRepository {
	return &MemoryCommunityRepository{}
}

func cloneCommunity(c models.Community) *models.Community {
	cp := c
	cp.MemberIDs = slices.Clone(c.MemberIDs)
	return &cp
}

func (r *MemoryCommunityRepository) Create(community *models.Community) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if community.ID == "" {
		community.ID = uuid.NewString()
	}
	now := time.Now()
	community.CreatedAt = now
	community.UpdatedAt = now
	r.communities = append(r.communities, *cloneCommunity(*community))
	return nil
}

func (r *MemoryCommunityRepository) FindByID(id string) (*models.Community, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return cloneCommunity(r.communities[i]), nil
	}
	return nil, ErrNotFound
}

func (r *MemoryCommunityRepository) All() ([]models.Community, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Community, 0, len(r.communities))
	for i := range r.communities {
		out = append(out, *cloneCommunity(r.communities[i]))
	}
	return out, nil
}

func (r *MemoryCommunityRepository) FindByLocation(city, state string) ([]models.Community, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Community{}
	for i := range r.communities {
		loc := r.communities[i].Location
		if strings.EqualFold(loc.City, city) && strings.EqualFold(loc.State, state) {
			out = append(out, *cloneCommunity(r.communities[i]))
		}
	}
	return out, nil
}

func (r *MemoryCommunityRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.communities), nil
}

func (r *MemoryCommunityRepository) AddMember(communityID, userID string) (*models.Community, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(communityID)
	if i < 0 {
		return nil, ErrNotFound
	}
	c := &r.communities[i]
	if !slices.Contains(c.MemberIDs, userID) {
		c.MemberIDs = append(c.MemberIDs, userID)
		c.UpdatedAt = time.Now()
	}
	return cloneCommunity(*c), nil
}

func (r *MemoryCommunityRepository) RemoveMember(communityID, userID string) (*models.Community, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(communityID)
	if i < 0 {
		return nil, ErrNotFound
	}
	c := &r.communities[i]
	if j := slices.Index(c.MemberIDs, userID); j >= 0 {
		c.MemberIDs = append(c.MemberIDs[:j], c.MemberIDs[j+1:]...)
		c.UpdatedAt = time.Now()
	}
	return cloneCommunity(*c), nil
}

// indexOf must be called with the lock held.
func (r *MemoryCommunityRepository) indexOf(id string) int {
	for i := range r.communities {
		if r.communities[i].ID == id {
			return i
		}
	}
	return -1
}
