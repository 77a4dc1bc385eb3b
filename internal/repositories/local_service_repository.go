package repositories

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vinculo-app/backend/internal/models"
)

// LocalServiceRepository defines the interface for the local service
// directory. Find filters are optional; empty values match everything.
type LocalServiceRepository interface {
	Create(service *models.LocalService) error
	FindByID(id string) (*models.LocalService, error)
	Find(category models.ServiceCategory, city, state string) ([]models.LocalService, error)
	Count() (int, error)
}

// MemoryLocalServiceRepository implements LocalServiceRepository on an in-process slice.
type MemoryLocalServiceRepository struct {
	mu       sync.RWMutex
	services []models.LocalService
}

// NewMemoryLocalServiceRepository creates a new MemoryLocalServiceRepository
func NewMemoryLocalServiceRepository() *MemoryLocalServiceRepository {
	return &MemoryLocalServiceRepository{}
}

func (r *MemoryLocalServiceRepository) Create(service *models.LocalService) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if service.ID == "" {
		service.ID = uuid.NewString()
	}
	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now
	r.services = append(r.services, *service)
	return nil
}

func (r *MemoryLocalServiceRepository) FindByID(id string) (*models.LocalService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.services {
		if r.services[i].ID == id {
			cp := r.services[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryLocalServiceRepository) Find(category models.ServiceCategory, city, state string) ([]models.LocalService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.LocalService{}
	for i := range r.services {
		s := &r.services[i]
		if category != "" && s.Category != category {
			continue
		}
		if city != "" && !strings.EqualFold(s.Location.City, city) {
			continue
		}
		if state != "" && !strings.EqualFold(s.Location.State, state) {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *MemoryLocalServiceRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.services), nil
}
