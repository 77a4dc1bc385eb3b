package models

import (
	"slices"
	"time"
)

// PostStatus is the moderation verdict attached to a post. Only approved posts
// participate in the public feed, likes, comments and shares.
type PostStatus string

const (
	PostPending  PostStatus = "pending"
	PostApproved PostStatus = "approved"
	PostRejected PostStatus = "rejected"
)

// MediaType is the kind of media attached to a post.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Post represents a feed post. Likes is a set of user IDs maintained by toggle;
// CommentsCount and SharesCount are denormalized and kept in sync by the
// repositories on every comment create/delete and share.
type Post struct {
	ID              string     `json:"id" bson:"_id"`
	UserID          string     `json:"user_id" bson:"user_id"`
	Content         string     `json:"content" bson:"content"`
	MediaURLs       []string   `json:"media_urls,omitempty" bson:"media_urls,omitempty"`
	MediaType       MediaType  `json:"media_type,omitempty" bson:"media_type,omitempty"`
	Status          PostStatus `json:"status" bson:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty" bson:"rejection_reason,omitempty"`
	Likes           []string   `json:"likes" bson:"likes"`
	CommentsCount   int        `json:"comments_count" bson:"comments_count"`
	SharesCount     int        `json:"shares_count" bson:"shares_count"`
	CreatedAt       time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" bson:"updated_at"`
}

// LikedBy reports whether the given user is in the post's like set.
func (p *Post) LikedBy(userID string) bool {
	return slices.Contains(p.Likes, userID)
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content   string    `json:"content" validate:"required,min=1"`
	MediaURLs []string  `json:"media_urls,omitempty" validate:"omitempty,dive,url"`
	MediaType MediaType `json:"media_type,omitempty" validate:"omitempty,oneof=image video"`
}

// UpdatePostRequest defines the request body for editing a post's content
type UpdatePostRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}
