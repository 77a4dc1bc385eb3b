package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinculo-app/backend/internal/models"
	"github.com/vinculo-app/backend/internal/repositories"
)

// ConversationItem is a conversation enriched with the other participant and
// the caller's unread count.
type ConversationItem struct {
	models.Conversation
	OtherUser   models.UserCompact `json:"other_user"`
	UnreadCount int                `json:"unread_count"`
}

// MessageItem is a chat message with its sender summary attached.
type MessageItem struct {
	models.ChatMessage
	Sender models.UserCompact `json:"sender"`
}

// ChatHandler handles private one-to-one conversations.
type ChatHandler struct {
	conversationRepository repositories.ConversationRepository
	messageRepository      repositories.MessageRepository
	userRepository         repositories.UserRepository
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(
	conversationRepo repositories.ConversationRepository,
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
) *ChatHandler {
	return &ChatHandler{
		conversationRepository: conversationRepo,
		messageRepository:      messageRepo,
		userRepository:         userRepo,
	}
}

// RegisterChatRoutes registers chat routes
func (h *ChatHandler) RegisterChatRoutes(g *echo.Group) {
	g.POST("/conversations", h.StartConversation)
	g.GET("/conversations", h.GetConversations)
	g.GET("/conversations/:id/messages", h.GetMessages)
	g.POST("/conversations/:id/messages", h.SendMessage)
}

// StartConversation opens a chat with another user, or returns the existing
// one for the pair. A pair has at most one conversation.
func (h *ChatHandler) StartConversation(c echo.Context) error {
	var req models.StartConversationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID := currentUserID(c)
	if req.UserID == userID {
		return echo.NewHTTPError(http.StatusBadRequest, "You cannot start a conversation with yourself")
	}
	if _, err := h.userRepository.FindByID(req.UserID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	if existing, err := h.conversationRepository.FindByParticipants(userID, req.UserID); err == nil {
		return c.JSON(http.StatusOK, existing)
	}

	conversation := &models.Conversation{ParticipantIDs: []string{userID, req.UserID}}
	if err := h.conversationRepository.Create(conversation); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, conversation)
}

// GetConversations lists the caller's conversations, most recently active
// first, each with the other participant and the unread count.
func (h *ChatHandler) GetConversations(c echo.Context) error {
	userID := currentUserID(c)
	conversations, err := h.conversationRepository.FindByUserID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	items := make([]ConversationItem, 0, len(conversations))
	for i := range conversations {
		item := ConversationItem{Conversation: conversations[i]}
		for _, pid := range conversations[i].ParticipantIDs {
			if pid == userID {
				continue
			}
			if other, err := h.userRepository.FindByID(pid); err == nil {
				item.OtherUser = other.ToCompact()
			}
		}
		if unread, err := h.messageRepository.CountUnread(conversations[i].ID, userID); err == nil {
			item.UnreadCount = unread
		}
		items = append(items, item)
	}

	return c.JSON(http.StatusOK, echo.Map{"conversations": items})
}

// GetMessages returns a conversation's messages in order and marks the
// caller's incoming messages as read.
func (h *ChatHandler) GetMessages(c echo.Context) error {
	conversation, err := h.conversationRepository.FindByID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Conversation not found")
	}

	userID := currentUserID(c)
	if !conversation.HasParticipant(userID) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not part of this conversation")
	}

	if err := h.messageRepository.MarkRead(conversation.ID, userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	messages, err := h.messageRepository.FindByConversationID(conversation.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	items := make([]MessageItem, 0, len(messages))
	for i := range messages {
		item := MessageItem{ChatMessage: messages[i]}
		if sender, err := h.userRepository.FindByID(messages[i].SenderID); err == nil {
			item.Sender = sender.ToCompact()
		}
		items = append(items, item)
	}

	return c.JSON(http.StatusOK, echo.Map{"messages": items})
}

// SendMessage appends a message to a conversation the caller belongs to and
// updates the conversation's last-message preview.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	conversation, err := h.conversationRepository.FindByID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Conversation not found")
	}

	userID := currentUserID(c)
	if !conversation.HasParticipant(userID) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not part of this conversation")
	}

	message := &models.ChatMessage{
		ConversationID: conversation.ID,
		SenderID:       userID,
		Content:        req.Content,
	}
	if err := h.messageRepository.Create(message); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.conversationRepository.SetLastMessage(conversation.ID, message); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, message)
}
