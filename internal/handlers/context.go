package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinculo-app/backend/internal/models"
	"github.com/vinculo-app/backend/internal/repositories"
)

// currentUserID returns the authenticated user's id placed in the request
// context by the session middleware.
func currentUserID(c echo.Context) string {
	if id, ok := c.Get("userID").(string); ok {
		return id
	}
	return ""
}

// currentSessionToken returns the bearer token of the authenticated session.
func currentSessionToken(c echo.Context) string {
	if token, ok := c.Get("sessionToken").(string); ok {
		return token
	}
	return ""
}

// requireApprovedIdentity loads the caller and rejects anyone whose identity
// documents have not been approved. Only publishing a post is gated on this;
// liking, commenting and sharing are open to any authenticated user.
func requireApprovedIdentity(c echo.Context, users repositories.UserRepository) (*models.User, error) {
	user, err := users.FindByID(currentUserID(c))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if user.IdentityStatus != models.IdentityApproved {
		return nil, echo.NewHTTPError(http.StatusForbidden, "Identity verification required")
	}
	return user, nil
}
