package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinculo-app/backend/internal/models"
	"github.com/vinculo-app/backend/internal/repositories"
	"github.com/vinculo-app/backend/internal/services"
)

// PostHandler handles post CRUD and likes. Every post passes through content
// moderation on create and on every edit; rejected posts are stored with the
// rejection reason and never reach the feed.
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
	moderation     *services.ModerationService
	rewards        *services.RewardsService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	moderation *services.ModerationService,
	rewards *services.RewardsService,
) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
		moderation:     moderation,
		rewards:        rewards,
	}
}

// RegisterPostRoutes registers post routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/me", h.GetMyPosts)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.POST("/posts/:id/like", h.ToggleLike)
}

// CreatePost moderates and stores a new post. A rejected post is still stored
// so the author can see why it was turned down.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := requireApprovedIdentity(c, h.userRepository)
	if err != nil {
		return err
	}

	post := &models.Post{
		UserID:    user.ID,
		Content:   req.Content,
		MediaURLs: req.MediaURLs,
		MediaType: req.MediaType,
		Status:    models.PostApproved,
	}

	verdict := h.moderation.Review(req.Content)
	if !verdict.Approved {
		post.Status = models.PostRejected
		post.RejectionReason = verdict.Reason
	}

	if err := h.postRepository.Create(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"post":             post,
		"moderated":        !verdict.Approved,
		"rejection_reason": post.RejectionReason,
	})
}

// GetPost returns a single post by ID.
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return c.JSON(http.StatusOK, post)
}

// GetMyPosts returns the caller's posts of every status, newest first.
func (h *PostHandler) GetMyPosts(c echo.Context) error {
	posts, err := h.postRepository.FindByUserID(c.Request().Context(), currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}

// UpdatePost edits a post's content. The new content goes through moderation
// again and the verdict replaces the old one.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	post, err := h.postRepository.FindByID(ctx, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if post.UserID != currentUserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You can only edit your own posts")
	}

	post.Content = req.Content
	verdict := h.moderation.Review(req.Content)
	if verdict.Approved {
		post.Status = models.PostApproved
		post.RejectionReason = ""
	} else {
		post.Status = models.PostRejected
		post.RejectionReason = verdict.Reason
	}

	if err := h.postRepository.Update(ctx, post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"post":             post,
		"moderated":        !verdict.Approved,
		"rejection_reason": post.RejectionReason,
	})
}

// DeletePost removes a post. Comments and shares referencing it are left in
// place; they become unreachable through the feed.
func (h *PostHandler) DeletePost(c echo.Context) error {
	ctx := c.Request().Context()
	post, err := h.postRepository.FindByID(ctx, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if post.UserID != currentUserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You can only delete your own posts")
	}

	if err := h.postRepository.Delete(ctx, post.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// ToggleLike flips the caller's like on an approved post. Turning a like on
// banks a reward point; turning it off does not claw it back.
func (h *PostHandler) ToggleLike(c echo.Context) error {
	userID := currentUserID(c)
	ctx := c.Request().Context()
	post, err := h.postRepository.FindByID(ctx, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if post.Status != models.PostApproved {
		return echo.NewHTTPError(http.StatusForbidden, "Post is not approved")
	}

	updated, liked, err := h.postRepository.ToggleLike(ctx, post.ID, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if liked {
		if _, err := h.rewards.AddActivity(userID, "like", services.PointsLike); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"liked":       liked,
		"likes_count": len(updated.Likes),
	})
}
