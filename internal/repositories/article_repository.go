package repositories

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vinculo-app/backend/internal/models"
)

// ArticleRepository defines the interface for educational article data.
type ArticleRepository interface {
	Create(article *models.Article) error
	FindByID(id string) (*models.Article, error)
	Find(category models.ArticleCategory) ([]models.Article, error)
	ToggleLike(articleID, userID string) (*models.Article, bool, error)
	Count() (int, error)
}

// MemoryArticleRepository implements ArticleRepository on an in-process slice.
type MemoryArticleRepository struct {
	mu       sync.RWMutex
	articles []models.Article
}

// NewMemoryArticleRepository creates a new MemoryArticleRepository
func NewMemoryArticleRepository() *MemoryArticleRepository {
	return &MemoryArticleRepository{}
}

func cloneArticle(a models.Article) *models.Article {
	cp := a
	cp.Likes = slices.Clone(a.Likes)
	return &cp
}

func (r *MemoryArticleRepository) Create(article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	if article.Likes == nil {
		article.Likes = []string{}
	}
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now
	r.articles = append(r.articles, *cloneArticle(*article))
	return nil
}

func (r *MemoryArticleRepository) FindByID(id string) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return cloneArticle(r.articles[i]), nil
	}
	return nil, ErrNotFound
}

func (r *MemoryArticleRepository) Find(category models.ArticleCategory) ([]models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Article{}
	for i := range r.articles {
		if category != "" && r.articles[i].Category != category {
			continue
		}
		out = append(out, *cloneArticle(r.articles[i]))
	}
	return out, nil
}

func (r *MemoryArticleRepository) ToggleLike(articleID, userID string) (*models.Article, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(articleID)
	if i < 0 {
		return nil, false, ErrNotFound
	}
	article := &r.articles[i]
	liked := false
	if j := slices.Index(article.Likes, userID); j >= 0 {
		article.Likes = append(article.Likes[:j], article.Likes[j+1:]...)
	} else {
		article.Likes = append(article.Likes, userID)
		liked = true
	}
	article.UpdatedAt = time.Now()
	return cloneArticle(*article), liked, nil
}

func (r *MemoryArticleRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.articles), nil
}

// indexOf must be called with the lock held.
func (r *MemoryArticleRepository) indexOf(id string) int {
	for i := range r.articles {
		if r.articles[i].ID == id {
			return i
		}
	}
	return -1
}
