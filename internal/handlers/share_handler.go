package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinculo-app/backend/internal/models"
	"github.com/vinculo-app/backend/internal/repositories"
)

// ShareHandler handles post shares. A user can share a given post once;
// sharing bumps the post's share counter.
type ShareHandler struct {
	shareRepository repositories.ShareRepository
	postRepository  repositories.PostRepository
	userRepository  repositories.UserRepository
}

// NewShareHandler creates a new ShareHandler
func NewShareHandler(
	shareRepo repositories.ShareRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
) *ShareHandler {
	return &ShareHandler{
		shareRepository: shareRepo,
		postRepository:  postRepo,
		userRepository:  userRepo,
	}
}

// RegisterShareRoutes registers share routes
func (h *ShareHandler) RegisterShareRoutes(g *echo.Group) {
	g.POST("/posts/:id/share", h.SharePost)
	g.GET("/posts/:id/shares", h.GetShares)
	g.GET("/shares/me", h.GetMyShares)
}

// SharePost records a share of an approved post. Sharing the same post twice
// is a conflict.
func (h *ShareHandler) SharePost(c echo.Context) error {
	ctx := c.Request().Context()
	post, err := h.postRepository.FindByID(ctx, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if post.Status != models.PostApproved {
		return echo.NewHTTPError(http.StatusForbidden, "Post is not approved")
	}

	share := &models.Share{PostID: post.ID, UserID: currentUserID(c)}
	if err := h.shareRepository.Create(share); err != nil {
		if errors.Is(err, repositories.ErrAlreadyShared) {
			return echo.NewHTTPError(http.StatusConflict, "You already shared this post")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.postRepository.IncrementShares(ctx, post.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, share)
}

// GetShares returns who shared a post and the total count.
func (h *ShareHandler) GetShares(c echo.Context) error {
	post, err := h.postRepository.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	shares, err := h.shareRepository.FindByPostID(post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	sharers := make([]models.UserCompact, 0, len(shares))
	for i := range shares {
		if u, err := h.userRepository.FindByID(shares[i].UserID); err == nil {
			sharers = append(sharers, u.ToCompact())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(shares),
		"sharers": sharers,
	})
}

// GetMyShares lists the caller's shares with the shared posts attached. Shares
// of posts that were deleted afterwards are skipped.
func (h *ShareHandler) GetMyShares(c echo.Context) error {
	shares, err := h.shareRepository.FindByUserID(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	ctx := c.Request().Context()
	type sharedPost struct {
		models.Share
		Post *models.Post `json:"post"`
	}
	out := make([]sharedPost, 0, len(shares))
	for i := range shares {
		post, err := h.postRepository.FindByID(ctx, shares[i].PostID)
		if err != nil {
			continue
		}
		out = append(out, sharedPost{Share: shares[i], Post: post})
	}

	return c.JSON(http.StatusOK, echo.Map{"shares": out})
}
