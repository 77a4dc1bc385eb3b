package models

import "time"

// Mood is the closed set of moods a diary entry can carry.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodTired    Mood = "tired"
	MoodWorried  Mood = "worried"
	MoodExcited  Mood = "excited"
	MoodGrateful Mood = "grateful"
)

// DiaryEntry is a private journal entry, strictly owned by its creator.
type DiaryEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Mood       Mood      `json:"mood"`
	Milestones []string  `json:"milestones"`
	MediaURLs  []string  `json:"media_urls,omitempty"`
	Private    bool      `json:"private"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateDiaryEntryRequest defines the request body for creating a diary entry.
// Private defaults to true when omitted.
type CreateDiaryEntryRequest struct {
	Title      string   `json:"title" validate:"required,min=1"`
	Content    string   `json:"content" validate:"required,min=1"`
	Mood       Mood     `json:"mood" validate:"required,oneof=happy tired worried excited grateful"`
	Milestones []string `json:"milestones"`
	MediaURLs  []string `json:"media_urls,omitempty" validate:"omitempty,dive,url"`
	Private    *bool    `json:"private,omitempty"`
}

// UpdateDiaryEntryRequest defines the request body for editing a diary entry.
// Nil fields are left untouched.
type UpdateDiaryEntryRequest struct {
	Title      *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	Content    *string  `json:"content,omitempty" validate:"omitempty,min=1"`
	Mood       *Mood    `json:"mood,omitempty" validate:"omitempty,oneof=happy tired worried excited grateful"`
	Milestones []string `json:"milestones,omitempty"`
	MediaURLs  []string `json:"media_urls,omitempty" validate:"omitempty,dive,url"`
	Private    *bool    `json:"private,omitempty"`
}
