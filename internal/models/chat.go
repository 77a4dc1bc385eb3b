package models

import (
	"slices"
	"time"
)

// Conversation is a private chat between exactly two participants. The pair
// is unique regardless of order; lookups check both orientations.
type Conversation struct {
	ID             string       `json:"id"`
	ParticipantIDs []string     `json:"participant_ids"`
	LastMessage    *ChatMessage `json:"last_message,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// HasParticipant reports whether the given user is part of the conversation.
func (c *Conversation) HasParticipant(userID string) bool {
	return slices.Contains(c.ParticipantIDs, userID)
}

// ChatMessage is a single message inside a conversation. Read tracks whether
// the non-sending participant has seen it.
type ChatMessage struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

// StartConversationRequest defines the request body for opening a chat
type StartConversationRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// SendMessageRequest defines the request body for sending a chat message
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}
