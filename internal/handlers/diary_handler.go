package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinculo-app/backend/internal/models"
	"github.com/vinculo-app/backend/internal/repositories"
	"github.com/vinculo-app/backend/internal/services"
)

// DiaryHandler handles the private parenting diary. Entries are visible to
// their owner only, regardless of the private flag.
type DiaryHandler struct {
	diaryRepository repositories.DiaryRepository
	rewards         *services.RewardsService
}

// NewDiaryHandler creates a new DiaryHandler
func NewDiaryHandler(diaryRepo repositories.DiaryRepository, rewards *services.RewardsService) *DiaryHandler {
	return &DiaryHandler{
		diaryRepository: diaryRepo,
		rewards:         rewards,
	}
}

// RegisterDiaryRoutes registers diary routes
func (h *DiaryHandler) RegisterDiaryRoutes(g *echo.Group) {
	g.POST("/diary", h.CreateEntry)
	g.GET("/diary", h.GetMyEntries)
	g.GET("/diary/:id", h.GetEntry)
	g.PUT("/diary/:id", h.UpdateEntry)
	g.DELETE("/diary/:id", h.DeleteEntry)
}

// CreateEntry writes a new diary entry and banks diary reward points.
func (h *DiaryHandler) CreateEntry(c echo.Context) error {
	var req models.CreateDiaryEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	private := true
	if req.Private != nil {
		private = *req.Private
	}

	entry := &models.DiaryEntry{
		UserID:     currentUserID(c),
		Title:      req.Title,
		Content:    req.Content,
		Mood:       req.Mood,
		Milestones: req.Milestones,
		MediaURLs:  req.MediaURLs,
		Private:    private,
	}
	if entry.Milestones == nil {
		entry.Milestones = []string{}
	}

	if err := h.diaryRepository.Create(entry); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if _, err := h.rewards.AddActivity(entry.UserID, "diary", services.PointsDiary); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, entry)
}

// GetMyEntries lists the caller's diary entries, newest first.
func (h *DiaryHandler) GetMyEntries(c echo.Context) error {
	entries, err := h.diaryRepository.FindByUserID(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"entries": entries})
}

// GetEntry returns one diary entry. Another user's entry reads as not found
// rather than forbidden, so entry IDs leak nothing.
func (h *DiaryHandler) GetEntry(c echo.Context) error {
	entry, err := h.diaryRepository.FindByID(c.Param("id"))
	if err != nil || entry.UserID != currentUserID(c) {
		return echo.NewHTTPError(http.StatusNotFound, "Diary entry not found")
	}
	return c.JSON(http.StatusOK, entry)
}

// UpdateEntry applies a partial update to the caller's own entry.
func (h *DiaryHandler) UpdateEntry(c echo.Context) error {
	var req models.UpdateDiaryEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry, err := h.diaryRepository.FindByID(c.Param("id"))
	if err != nil || entry.UserID != currentUserID(c) {
		return echo.NewHTTPError(http.StatusNotFound, "Diary entry not found")
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Content != nil {
		entry.Content = *req.Content
	}
	if req.Mood != nil {
		entry.Mood = *req.Mood
	}
	if req.Milestones != nil {
		entry.Milestones = req.Milestones
	}
	if req.MediaURLs != nil {
		entry.MediaURLs = req.MediaURLs
	}
	if req.Private != nil {
		entry.Private = *req.Private
	}

	if err := h.diaryRepository.Update(entry); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entry)
}

// DeleteEntry removes the caller's own entry. Points earned from it stay.
func (h *DiaryHandler) DeleteEntry(c echo.Context) error {
	entry, err := h.diaryRepository.FindByID(c.Param("id"))
	if err != nil || entry.UserID != currentUserID(c) {
		return echo.NewHTTPError(http.StatusNotFound, "Diary entry not found")
	}

	if err := h.diaryRepository.Delete(entry.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
