package repositories

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vinculo-app/backend/internal/models"
)

// ConversationRepository defines the interface for conversation data
// operations. A conversation is unique per unordered participant pair;
// FindByParticipants checks both orientations.
type ConversationRepository interface {
	Create(conversation *models.Conversation) error
	FindByID(id string) (*models.Conversation, error)
	FindByParticipants(userA, userB string) (*models.Conversation, error)
	FindByUserID(userID string) ([]models.Conversation, error) // most recent first
	SetLastMessage(conversationID string, message *models.ChatMessage) error
}

// MessageRepository defines the interface for chat message data operations.
// Listings are oldest first; MarkRead flips the read flag on every message
// not sent by the reader.
type MessageRepository interface {
	Create(message *models.ChatMessage) error
	FindByConversationID(conversationID string) ([]models.ChatMessage, error)
	MarkRead(conversationID, readerID string) error
	CountUnread(conversationID, userID string) (int, error)
}

// MemoryConversationRepository implements ConversationRepository on an in-process slice.
type MemoryConversationRepository struct {
	mu            sync.RWMutex
	conversations []models.Conversation
}

// NewMemoryConversationRepository creates a new MemoryConversationRepository
func NewMemoryConversationRepository() *MemoryConversationRepository {
	return &MemoryConversationRepository{}
}

func cloneConversation(c models.Conversation) *models.Conversation {
	cp := c
	cp.ParticipantIDs = slices.Clone(c.ParticipantIDs)
	if c.LastMessage != nil {
		msg := *c.LastMessage
		cp.LastMessage = &msg
	}
	return &cp
}

func (r *MemoryConversationRepository) Create(conversation *models.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if conversation.ID == "" {
		conversation.ID = uuid.NewString()
	}
	now := time.Now()
	conversation.CreatedAt = now
	conversation.UpdatedAt = now
	r.conversations = append(r.conversations, *cloneConversation(*conversation))
	return nil
}

func (r *MemoryConversationRepository) FindByID(id string) (*models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.conversations {
		if r.conversations[i].ID == id {
			return cloneConversation(r.conversations[i]), nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryConversationRepository) FindByParticipants(userA, userB string) (*models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.conversations {
		c := &r.conversations[i]
		if c.HasParticipant(userA) && c.HasParticipant(userB) {
			return cloneConversation(*c), nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryConversationRepository) FindByUserID(userID string) ([]models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Conversation{}
	for i := range r.conversations {
		if r.conversations[i].HasParticipant(userID) {
			out = append(out, *cloneConversation(r.conversations[i]))
		}
	}
	slices.SortStableFunc(out, func(a, b models.Conversation) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out, nil
}

func (r *MemoryConversationRepository) SetLastMessage(conversationID string, message *models.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.conversations {
		if r.conversations[i].ID == conversationID {
			msg := *message
			r.conversations[i].LastMessage = &msg
			r.conversations[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

// MemoryMessageRepository implements MessageRepository on an in-process slice.
type MemoryMessageRepository struct {
	mu       sync.RWMutex
	messages []models.ChatMessage
}

// NewMemoryMessageRepository creates a new MemoryMessageRepository
func NewMemoryMessageRepository() *MemoryMessageRepository {
	return &MemoryMessageRepository{}
}

func (r *MemoryMessageRepository) Create(message *models.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	message.CreatedAt = time.Now()
	r.messages = append(r.messages, *message)
	return nil
}

func (r *MemoryMessageRepository) FindByConversationID(conversationID string) ([]models.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.ChatMessage{}
	for i := range r.messages {
		if r.messages[i].ConversationID == conversationID {
			out = append(out, r.messages[i])
		}
	}
	return out, nil
}

func (r *MemoryMessageRepository) MarkRead(conversationID, readerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.messages {
		m := &r.messages[i]
		if m.ConversationID == conversationID && m.SenderID != readerID {
			m.Read = true
		}
	}
	return nil
}

func (r *MemoryMessageRepository) CountUnread(conversationID, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for i := range r.messages {
		m := &r.messages[i]
		if m.ConversationID == conversationID && m.SenderID != userID && !m.Read {
			count++
		}
	}
	return count, nil
}
