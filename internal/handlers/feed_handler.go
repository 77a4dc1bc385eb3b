package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vinculo-app/backend/internal/models"
	"github.com/vinculo-app/backend/internal/repositories"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 50
)

// FeedItem is a feed post enriched with its author and the caller's like flag.
type FeedItem struct {
	models.Post
	Author  models.UserCompact `json:"author"`
	IsLiked bool               `json:"is_liked"`
}

// FeedHandler serves the public feed of approved posts, newest first.
type FeedHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *FeedHandler {
	return &FeedHandler{
		postRepository: postRepo,
		userRepository: userRepo,
	}
}

// RegisterFeedRoutes registers feed routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns a page of approved posts. Limit is clamped to [1, 50] with a
// default of 20; offset defaults to 0.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	ctx := c.Request().Context()
	posts, err := h.postRepository.FindApproved(ctx, offset, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	total, err := h.postRepository.CountApproved(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	userID := currentUserID(c)
	items := make([]FeedItem, 0, len(posts))
	for i := range posts {
		item := FeedItem{Post: posts[i], IsLiked: posts[i].LikedBy(userID)}
		if author, err := h.userRepository.FindByID(posts[i].UserID); err == nil {
			item.Author = author.ToCompact()
		}
		items = append(items, item)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts":    items,
		"total":    total,
		"offset":   offset,
		"limit":    limit,
		"has_more": total > offset+limit,
	})
}
