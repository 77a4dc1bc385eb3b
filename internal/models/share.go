package models

import "time"

// Share records that a user shared a post. A given (post, user) pair may
// exist at most once.
type Share struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
