package repositories

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vinculo-app/backend/internal/models"
)

// CommentRepository defines the interface for comment data operations.
// Listings are oldest first (thread order).
type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByID(id string) (*models.Comment, error)
	FindByPostID(postID string) ([]models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id string) error
	ToggleLike(commentID, userID string) (*models.Comment, bool, error)
}

// MemoryCommentRepository implements CommentRepository on an in-process slice.
type MemoryCommentRepository struct {
	mu       sync.RWMutex
	comments []models.Comment
}

// NewMemoryCommentRepository creates a new MemoryCommentRepository
func NewMemoryCommentRepository() *MemoryCommentRepository {
	return &MemoryCommentRepository{}
}

func cloneComment(c models.Comment) *models.Comment {
	cp := c
	cp.Likes = slices.Clone(c.Likes)
	return &cp
}

func (r *MemoryCommentRepository) Create(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	if comment.Likes == nil {
		comment.Likes = []string{}
	}
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	r.comments = append(r.comments, *cloneComment(*comment))
	return nil
}

func (r *MemoryCommentRepository) FindByID(id string) (*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return cloneComment(r.comments[i]), nil
	}
	return nil, ErrNotFound
}

func (r *MemoryCommentRepository) FindByPostID(postID string) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Comment{}
	for i := range r.comments {
		if r.comments[i].PostID == postID {
			out = append(out, *cloneComment(r.comments[i]))
		}
	}
	return out, nil
}

func (r *MemoryCommentRepository) Update(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(comment.ID); i >= 0 {
		comment.UpdatedAt = time.Now()
		r.comments[i] = *cloneComment(*comment)
		return nil
	}
	return ErrNotFound
}

func (r *MemoryCommentRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(id); i >= 0 {
		r.comments = append(r.comments[:i], r.comments[i+1:]...)
		return nil
	}
	return ErrNotFound
}

func (r *MemoryCommentRepository) ToggleLike(commentID, userID string) (*models.Comment, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(commentID)
	if i < 0 {
		return nil, false, ErrNotFound
	}
	comment := &r.comments[i]
	liked := false
	if j := slices.Index(comment.Likes, userID); j >= 0 {
		comment.Likes = append(comment.Likes[:j], comment.Likes[j+1:]...)
	} else {
		comment.Likes = append(comment.Likes, userID)
		liked = true
	}
	comment.UpdatedAt = time.Now()
	return cloneComment(*comment), liked, nil
}

// indexOf must be called with the lock held.
func (r *MemoryCommentRepository) indexOf(id string) int {
	for i := range r.comments {
		if r.comments[i].ID == id {
			return i
		}
	}
	return -1
}
