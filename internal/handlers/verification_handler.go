package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vinculo-app/backend/internal/models"
	"github.com/vinculo-app/backend/internal/repositories"
)

// VerificationHandler handles the identity document review pipeline:
// pending -> submitted -> approved | rejected. The approve/reject step is an
// administrative action outside this service; only submission lives here.
type VerificationHandler struct {
	userRepository repositories.UserRepository
}

// NewVerificationHandler creates a new VerificationHandler
func NewVerificationHandler(userRepo repositories.UserRepository) *VerificationHandler {
	return &VerificationHandler{userRepository: userRepo}
}

// RegisterVerificationRoutes registers identity verification routes
func (h *VerificationHandler) RegisterVerificationRoutes(g *echo.Group) {
	g.POST("/verification/documents", h.UploadDocuments)
	g.GET("/verification/status", h.GetStatus)
}

// UploadDocuments stores the submitted document URLs and moves the user to
// submitted. Re-uploading after a rejection follows the same path.
func (h *VerificationHandler) UploadDocuments(c echo.Context) error {
	var req models.UploadDocumentsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.FindByID(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if !user.EmailVerified {
		return echo.NewHTTPError(http.StatusForbidden, "Verify your email first")
	}

	user.DocumentURLs = req.DocumentURLs
	user.IdentityStatus = models.IdentitySubmitted
	if err := h.userRepository.Update(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	log.Printf("Documents submitted by %s: %s", user.Email, strings.Join(req.DocumentURLs, ", "))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Documents submitted for review!",
	})
}

// GetStatus returns the user's place in the verification pipeline.
func (h *VerificationHandler) GetStatus(c echo.Context) error {
	user, err := h.userRepository.FindByID(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":           user.IdentityStatus,
		"document_urls":    user.DocumentURLs,
		"rejection_reason": user.RejectionReason,
	})
}
