package repositories

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vinculo-app/backend/internal/models"
)

// DiaryRepository defines the interface for diary entry data operations.
type DiaryRepository interface {
	Create(entry *models.DiaryEntry) error
	FindByID(id string) (*models.DiaryEntry, error)
	FindByUserID(userID string) ([]models.DiaryEntry, error) // newest first
	CountByUserID(userID string) (int, error)
	Update(entry *models.DiaryEntry) error
	Delete(id string) error
}

// MemoryDiaryRepository implements DiaryRepository on an in-process slice.
type MemoryDiaryRepository struct {
	mu      sync.RWMutex
	entries []models.DiaryEntry
}

// NewMemoryDiaryRepository creates a new MemoryDiaryRepository
func NewMemoryDiaryRepository() *MemoryDiaryRepository {
	return &MemoryDiaryRepository{}
}

func cloneEntry(e models.DiaryEntry) *models.DiaryEntry {
	cp := e
	cp.Milestones = slices.Clone(e.Milestones)
	cp.MediaURLs = slices.Clone(e.MediaURLs)
	return &cp
}

func (r *MemoryDiaryRepository) Create(entry *models.DiaryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	r.entries = append(r.entries, *cloneEntry(*entry))
	return nil
}

func (r *MemoryDiaryRepository) FindByID(id string) (*models.DiaryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return cloneEntry(r.entries[i]), nil
	}
	return nil, ErrNotFound
}

func (r *MemoryDiaryRepository) FindByUserID(userID string) ([]models.DiaryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.DiaryEntry{}
	for i := range r.entries {
		if r.entries[i].UserID == userID {
			out = append(out, *cloneEntry(r.entries[i]))
		}
	}
	slices.SortStableFunc(out, func(a, b models.DiaryEntry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (r *MemoryDiaryRepository) CountByUserID(userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for i := range r.entries {
		if r.entries[i].UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *MemoryDiaryRepository) Update(entry *models.DiaryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(entry.ID); i >= 0 {
		entry.UpdatedAt = time.Now()
		r.entries[i] = *cloneEntry(*entry)
		return nil
	}
	return ErrNotFound
}

func (r *MemoryDiaryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(id); i >= 0 {
		r.entries = append(r.entries[:i], r.entries[i+1:]...)
		return nil
	}
	return ErrNotFound
}

// indexOf must be called with the lock held.
func (r *MemoryDiaryRepository) indexOf(id string) int {
	for i := range r.entries {
		if r.entries[i].ID == id {
			return i
		}
	}
	return -1
}
