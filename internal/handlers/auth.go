package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	mrand "math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/vinculo-app/backend/internal/models"
	"github.com/vinculo-app/backend/internal/repositories"
)

// sessionTTL is the fixed lifetime of a login session.
const sessionTTL = 30 * 24 * time.Hour

// AuthHandler handles registration, email verification and sessions.
type AuthHandler struct {
	userRepository    repositories.UserRepository
	sessionRepository repositories.SessionRepository
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository) *AuthHandler {
	return &AuthHandler{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
	}
}

// RegisterAuthRoutes registers the unprotected authentication routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/verify-email", h.VerifyEmail)
	g.POST("/resend-code", h.ResendCode)
}

// RegisterSessionRoutes registers the session-bound routes
func (h *AuthHandler) RegisterSessionRoutes(g *echo.Group) {
	g.GET("/auth/me", h.Me)
	g.POST("/auth/logout", h.Logout)
}

// Register creates a new account with a pending identity status and a
// 6-digit email verification code.
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Name:             req.Name,
		Email:            strings.ToLower(req.Email),
		Password:         string(hashedPassword),
		EmailVerified:    false,
		VerificationCode: generateVerificationCode(),
		IdentityStatus:   models.IdentityPending,
	}

	// Uniqueness is enforced by the repository, so concurrent registrations
	// of the same email cannot both win.
	if err := h.userRepository.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return echo.NewHTTPError(http.StatusConflict, "Email already registered")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Stand-in for the verification email.
	log.Printf("Verification code for %s: %s", user.Email, user.VerificationCode)

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"user_id": user.ID,
		"message": "Registration complete! Check your email.",
	})
}

// Login authenticates by email and password and opens a 30-day session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.FindByEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect email or password")
	}

	token, err := generateToken()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate session token")
	}

	session := &models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := h.sessionRepository.Create(session); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user": echo.Map{
			"id":              user.ID,
			"name":            user.Name,
			"email":           user.Email,
			"email_verified":  user.EmailVerified,
			"identity_status": user.IdentityStatus,
		},
	})
}

// VerifyEmail confirms the 6-digit code and marks the email verified.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req models.VerifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.FindByEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if user.VerificationCode != req.Code {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid verification code")
	}

	user.EmailVerified = true
	user.VerificationCode = ""
	if err := h.userRepository.Update(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Email verified successfully!",
	})
}

// ResendCode rotates the verification code for an unverified account.
func (h *AuthHandler) ResendCode(c echo.Context) error {
	var req models.ResendCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.FindByEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if user.EmailVerified {
		return echo.NewHTTPError(http.StatusBadRequest, "Email already verified")
	}

	user.VerificationCode = generateVerificationCode()
	if err := h.userRepository.Update(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	log.Printf("New verification code for %s: %s", user.Email, user.VerificationCode)

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Code resent!",
	})
}

// Me returns the authenticated user's account view.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.userRepository.FindByID(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":               user.ID,
		"name":             user.Name,
		"email":            user.Email,
		"email_verified":   user.EmailVerified,
		"identity_status":  user.IdentityStatus,
		"document_urls":    user.DocumentURLs,
		"rejection_reason": user.RejectionReason,
	})
}

// Logout deletes the current session. The token is dead immediately.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessionRepository.DeleteByToken(currentSessionToken(c)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// generateToken returns a 32-byte opaque bearer token in hex.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// generateVerificationCode returns a 6-digit numeric code.
func generateVerificationCode() string {
	return fmt.Sprintf("%06d", mrand.Intn(900000)+100000)
}
