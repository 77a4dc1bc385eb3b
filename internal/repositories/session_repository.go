package repositories

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/vinculo-app/backend/internal/models"
)

// SessionRepository defines the interface for bearer-session operations.
// FindByToken applies lazy expiry: a session past its expiry behaves as
// absent but is only removed by an explicit DeleteByToken.
type SessionRepository interface {
	Create(session *models.Session) error
	FindByToken(token string) (*models.Session, error)
	DeleteByToken(token string) error
}

// MemorySessionRepository implements SessionRepository on an in-process slice.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions []models.Session
}

// NewMemorySessionRepository creates a new MemorySessionRepository
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{}
}

func (r *MemorySessionRepository) Create(session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, *session)
	return nil
}

func (r *MemorySessionRepository) FindByToken(token string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	now := time.Now()
	for i := range r.sessions {
		if r.sessions[i].Token == token && r.sessions[i].ExpiresAt.After(now) {
			cp := r.sessions[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemorySessionRepository) DeleteByToken(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sessions {
		if r.sessions[i].Token == token {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return nil
		}
	}
	return nil
}

// PostgresSessionRepository implements SessionRepository for PostgreSQL via GORM.
type PostgresSessionRepository struct {
	db *gorm.DB
}

// NewPostgresSessionRepository creates a new PostgresSessionRepository
func NewPostgresSessionRepository(db *gorm.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (r *PostgresSessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

func (r *PostgresSessionRepository) FindByToken(token string) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("token = ? AND expires_at > ?", token, time.Now()).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *PostgresSessionRepository) DeleteByToken(token string) error {
	return r.db.Delete(&models.Session{}, "token = ?", token).Error
}
