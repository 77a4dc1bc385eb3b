package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vinculo-app/backend/internal/models"
	"github.com/vinculo-app/backend/internal/repositories"
	"github.com/vinculo-app/backend/internal/services"
	"github.com/vinculo-app/backend/pkg/validators"
)

// testEnv wires every handler against the in-memory repositories.
type testEnv struct {
	e        *echo.Echo
	users    repositories.UserRepository
	sessions repositories.SessionRepository
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	shares   repositories.ShareRepository
	diary    repositories.DiaryRepository
	rewards  *services.RewardsService

	auth      *AuthHandler
	post      *PostHandler
	feed      *FeedHandler
	comment   *CommentHandler
	share     *ShareHandler
	diaryH    *DiaryHandler
	community *CommunityHandler
	chat      *ChatHandler
	rewardsH  *RewardsHandler
}

func newTestEnv() *testEnv {
	e := echo.New()
	e.Validator = validators.NewValidator()

	users := repositories.NewMemoryUserRepository()
	sessions := repositories.NewMemorySessionRepository()
	posts := repositories.NewMemoryPostRepository()
	comments := repositories.NewMemoryCommentRepository()
	shares := repositories.NewMemoryShareRepository()
	diary := repositories.NewMemoryDiaryRepository()
	communities := repositories.NewMemoryCommunityRepository()
	conversations := repositories.NewMemoryConversationRepository()
	messages := repositories.NewMemoryMessageRepository()
	rewardRepo := repositories.NewMemoryRewardRepository()

	moderation := services.NewModerationService()
	rewards := services.NewRewardsService(rewardRepo, posts, diary, users)

	return &testEnv{
		e:         e,
		users:     users,
		sessions:  sessions,
		posts:     posts,
		comments:  comments,
		shares:    shares,
		diary:     diary,
		rewards:   rewards,
		auth:      NewAuthHandler(users, sessions),
		post:      NewPostHandler(posts, users, moderation, rewards),
		feed:      NewFeedHandler(posts, users),
		comment:   NewCommentHandler(comments, posts, users),
		share:     NewShareHandler(shares, posts, users),
		diaryH:    NewDiaryHandler(diary, rewards),
		community: NewCommunityHandler(communities, users),
		chat:      NewChatHandler(conversations, messages, users),
		rewardsH:  NewRewardsHandler(rewards),
	}
}

// newContext builds a request context as the given user, mimicking what the
// session middleware sets.
func (env *testEnv) newContext(method, path, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	if userID != "" {
		c.Set("userID", userID)
	}
	return c, rec
}

// createUser stores a user directly in the repository.
func (env *testEnv) createUser(t *testing.T, name, email string, status models.IdentityStatus) *models.User {
	t.Helper()
	user := &models.User{
		Name:           name,
		Email:          email,
		Password:       "hash",
		EmailVerified:  status != models.IdentityPending,
		IdentityStatus: status,
	}
	if err := env.users.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// createApprovedPost stores an approved post for the given author.
func (env *testEnv) createApprovedPost(t *testing.T, userID, content string) *models.Post {
	t.Helper()
	post := &models.Post{UserID: userID, Content: content, Status: models.PostApproved}
	if err := env.posts.Create(context.Background(), post); err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return http.StatusOK
	}
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he.Code
}
