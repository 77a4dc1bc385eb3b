package repositories

import (
	"testing"

	"github.com/vinculo-app/backend/internal/models"
)

func TestConversationPairLookupIgnoresOrder(t *testing.T) {
	repo := NewMemoryConversationRepository()

	conversation := &models.Conversation{ParticipantIDs: []string{"u1", "u2"}}
	if err := repo.Create(conversation); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.FindByParticipants("u2", "u1")
	if err != nil {
		t.Fatalf("FindByParticipants: %v", err)
	}
	if found.ID != conversation.ID {
		t.Errorf("expected conversation %s, got %s", conversation.ID, found.ID)
	}
}

func TestMarkReadSkipsOwnMessages(t *testing.T) {
	conversations := NewMemoryConversationRepository()
	messages := NewMemoryMessageRepository()

	conversation := &models.Conversation{ParticipantIDs: []string{"u1", "u2"}}
	if err := conversations.Create(conversation); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, m := range []*models.ChatMessage{
		{ConversationID: conversation.ID, SenderID: "u1", Content: "hi"},
		{ConversationID: conversation.ID, SenderID: "u2", Content: "hello"},
		{ConversationID: conversation.ID, SenderID: "u2", Content: "how are you?"},
	} {
		if err := messages.Create(m); err != nil {
			t.Fatalf("Create message: %v", err)
		}
	}

	unread, err := messages.CountUnread(conversation.ID, "u1")
	if err != nil {
		t.Fatalf("CountUnread: %v", err)
	}
	if unread != 2 {
		t.Errorf("expected 2 unread for u1, got %d", unread)
	}

	if err := messages.MarkRead(conversation.ID, "u1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	unread, _ = messages.CountUnread(conversation.ID, "u1")
	if unread != 0 {
		t.Errorf("expected 0 unread after MarkRead, got %d", unread)
	}

	// u1's own message stays unread from u2's side.
	unread, _ = messages.CountUnread(conversation.ID, "u2")
	if unread != 1 {
		t.Errorf("expected 1 unread for u2, got %d", unread)
	}
}
