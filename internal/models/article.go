package models

import (
	"slices"
	"time"
)

// ArticleCategory classifies an educational article.
type ArticleCategory string

const (
	ArticleNutrition   ArticleCategory = "nutrition"
	ArticleHealth      ArticleCategory = "health"
	ArticleDevelopment ArticleCategory = "development"
	ArticleEducation   ArticleCategory = "education"
	ArticleBehavior    ArticleCategory = "behavior"
)

// Article is curated educational content parents can read and like.
type Article struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Category  ArticleCategory `json:"category"`
	Author    string          `json:"author"`
	ReadTime  int             `json:"read_time"` // minutes
	ImageURL  string          `json:"image_url,omitempty"`
	Likes     []string        `json:"likes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// LikedBy reports whether the given user is in the article's like set.
func (a *Article) LikedBy(userID string) bool {
	return slices.Contains(a.Likes, userID)
}
