package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/vinculo-app/backend/internal/models"
)

func TestStartConversationRules(t *testing.T) {
	env := newTestEnv()
	alice := env.createUser(t, "Alice", "alice@example.com", models.IdentityApproved)
	bruno := env.createUser(t, "Bruno", "bruno@example.com", models.IdentityApproved)

	c, _ := env.newContext(http.MethodPost, "/api/v1/conversations",
		`{"user_id":"`+alice.ID+`"}`, alice.ID)
	if httpStatus(t, env.chat.StartConversation(c)) != http.StatusBadRequest {
		t.Error("expected 400 for a conversation with yourself")
	}

	c, _ = env.newContext(http.MethodPost, "/api/v1/conversations",
		`{"user_id":"ghost"}`, alice.ID)
	if httpStatus(t, env.chat.StartConversation(c)) != http.StatusNotFound {
		t.Error("expected 404 for an unknown user")
	}

	c, rec := env.newContext(http.MethodPost, "/api/v1/conversations",
		`{"user_id":"`+bruno.ID+`"}`, alice.ID)
	if err := env.chat.StartConversation(c); err != nil {
		t.Fatalf("StartConversation: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var first models.Conversation
	if err := json.Unmarshal(rec.Body.Bytes(), &first); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// The reverse direction returns the same conversation, not a new one.
	c, rec = env.newContext(http.MethodPost, "/api/v1/conversations",
		`{"user_id":"`+alice.ID+`"}`, bruno.ID)
	if err := env.chat.StartConversation(c); err != nil {
		t.Fatalf("StartConversation: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for the existing pair, got %d", rec.Code)
	}
	var second models.Conversation
	if err := json.Unmarshal(rec.Body.Bytes(), &second); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected the same conversation, got %s and %s", first.ID, second.ID)
	}
}

func TestChatMessageFlow(t *testing.T) {
	env := newTestEnv()
	alice := env.createUser(t, "Alice", "alice@example.com", models.IdentityApproved)
	bruno := env.createUser(t, "Bruno", "bruno@example.com", models.IdentityApproved)
	carla := env.createUser(t, "Carla", "carla@example.com", models.IdentityApproved)

	c, rec := env.newContext(http.MethodPost, "/api/v1/conversations",
		`{"user_id":"`+bruno.ID+`"}`, alice.ID)
	if err := env.chat.StartConversation(c); err != nil {
		t.Fatalf("StartConversation: %v", err)
	}
	var conversation models.Conversation
	if err := json.Unmarshal(rec.Body.Bytes(), &conversation); err != nil {
		t.Fatalf("decode: %v", err)
	}

	send := func(userID, content string) error {
		c, _ := env.newContext(http.MethodPost, "/api/v1/conversations/"+conversation.ID+"/messages",
			`{"content":"`+content+`"}`, userID)
		c.SetParamNames("id")
		c.SetParamValues(conversation.ID)
		return env.chat.SendMessage(c)
	}

	if err := send(alice.ID, "hi Bruno"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if httpStatus(t, send(carla.ID, "let me in")) != http.StatusForbidden {
		t.Error("expected 403 for a non-participant sender")
	}

	// Bruno sees one unread conversation with the last message set.
	c, rec = env.newContext(http.MethodGet, "/api/v1/conversations", "", bruno.ID)
	if err := env.chat.GetConversations(c); err != nil {
		t.Fatalf("GetConversations: %v", err)
	}
	var listResp struct {
		Conversations []ConversationItem `json:"conversations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listResp.Conversations) != 1 {
		t.Fatalf("expected 1 conversation, got %d", len(listResp.Conversations))
	}
	item := listResp.Conversations[0]
	if item.UnreadCount != 1 {
		t.Errorf("expected 1 unread, got %d", item.UnreadCount)
	}
	if item.OtherUser.Name != "Alice" {
		t.Errorf("expected other_user Alice, got %+v", item.OtherUser)
	}
	if item.LastMessage == nil || item.LastMessage.Content != "hi Bruno" {
		t.Error("expected the last message preview")
	}

	// Reading the messages marks them read.
	c, _ = env.newContext(http.MethodGet, "/api/v1/conversations/"+conversation.ID+"/messages", "", bruno.ID)
	c.SetParamNames("id")
	c.SetParamValues(conversation.ID)
	if err := env.chat.GetMessages(c); err != nil {
		t.Fatalf("GetMessages: %v", err)
	}

	c, rec = env.newContext(http.MethodGet, "/api/v1/conversations", "", bruno.ID)
	if err := env.chat.GetConversations(c); err != nil {
		t.Fatalf("GetConversations: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if listResp.Conversations[0].UnreadCount != 0 {
		t.Errorf("expected 0 unread after reading, got %d", listResp.Conversations[0].UnreadCount)
	}

	// Outsiders cannot read the thread either.
	c, _ = env.newContext(http.MethodGet, "/api/v1/conversations/"+conversation.ID+"/messages", "", carla.ID)
	c.SetParamNames("id")
	c.SetParamValues(conversation.ID)
	if httpStatus(t, env.chat.GetMessages(c)) != http.StatusForbidden {
		t.Error("expected 403 for a non-participant reader")
	}
}
