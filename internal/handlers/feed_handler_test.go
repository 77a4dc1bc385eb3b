package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/vinculo-app/backend/internal/models"
)

type feedResponse struct {
	Posts   []FeedItem `json:"posts"`
	Total   int        `json:"total"`
	Offset  int        `json:"offset"`
	Limit   int        `json:"limit"`
	HasMore bool       `json:"has_more"`
}

func TestFeedShowsOnlyApprovedNewestFirst(t *testing.T) {
	env := newTestEnv()
	author := env.createUser(t, "Alice", "alice@example.com", models.IdentityApproved)

	env.createApprovedPost(t, author.ID, "first post")
	rejected := &models.Post{UserID: author.ID, Content: "rejected one", Status: models.PostRejected}
	if err := env.posts.Create(context.Background(), rejected); err != nil {
		t.Fatalf("Create: %v", err)
	}
	env.createApprovedPost(t, author.ID, "second post")

	c, rec := env.newContext(http.MethodGet, "/api/v1/feed", "", author.ID)
	if err := env.feed.GetFeed(c); err != nil {
		t.Fatalf("GetFeed: %v", err)
	}

	var resp feedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 2 || len(resp.Posts) != 2 {
		t.Fatalf("expected 2 approved posts, got total=%d len=%d", resp.Total, len(resp.Posts))
	}
	if resp.Posts[0].Content != "second post" {
		t.Errorf("expected newest first, got %q", resp.Posts[0].Content)
	}
	if resp.Posts[0].Author.Name != "Alice" {
		t.Errorf("expected author summary, got %+v", resp.Posts[0].Author)
	}
	if resp.HasMore {
		t.Error("expected has_more=false")
	}
}

func TestFeedPagination(t *testing.T) {
	env := newTestEnv()
	author := env.createUser(t, "Alice", "alice@example.com", models.IdentityApproved)
	for i := 0; i < 25; i++ {
		env.createApprovedPost(t, author.ID, "post content")
	}

	c, rec := env.newContext(http.MethodGet, "/api/v1/feed", "", author.ID)
	if err := env.feed.GetFeed(c); err != nil {
		t.Fatalf("GetFeed: %v", err)
	}
	var resp feedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Limit != 20 || len(resp.Posts) != 20 {
		t.Errorf("expected default limit 20, got limit=%d len=%d", resp.Limit, len(resp.Posts))
	}
	if !resp.HasMore {
		t.Error("expected has_more=true with 25 posts")
	}

	c, rec = env.newContext(http.MethodGet, "/api/v1/feed?offset=20&limit=10", "", author.ID)
	if err := env.feed.GetFeed(c); err != nil {
		t.Fatalf("GetFeed: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Posts) != 5 {
		t.Errorf("expected 5 posts on the last page, got %d", len(resp.Posts))
	}
	if resp.HasMore {
		t.Error("expected has_more=false on the last page")
	}
}

func TestFeedLimitClamped(t *testing.T) {
	env := newTestEnv()
	author := env.createUser(t, "Alice", "alice@example.com", models.IdentityApproved)
	env.createApprovedPost(t, author.ID, "post content")

	c, rec := env.newContext(http.MethodGet, "/api/v1/feed?limit=500", "", author.ID)
	if err := env.feed.GetFeed(c); err != nil {
		t.Fatalf("GetFeed: %v", err)
	}
	var resp feedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Limit != 50 {
		t.Errorf("expected limit clamped to 50, got %d", resp.Limit)
	}
}

func TestFeedIsLikedFlag(t *testing.T) {
	env := newTestEnv()
	author := env.createUser(t, "Alice", "alice@example.com", models.IdentityApproved)
	viewer := env.createUser(t, "Bruno", "bruno@example.com", models.IdentityApproved)
	post := env.createApprovedPost(t, author.ID, "like me")
	if _, _, err := env.posts.ToggleLike(context.Background(), post.ID, viewer.ID); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}

	c, rec := env.newContext(http.MethodGet, "/api/v1/feed", "", viewer.ID)
	if err := env.feed.GetFeed(c); err != nil {
		t.Fatalf("GetFeed: %v", err)
	}
	var resp feedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Posts[0].IsLiked {
		t.Error("expected is_liked=true for the viewer")
	}

	c, rec = env.newContext(http.MethodGet, "/api/v1/feed", "", author.ID)
	if err := env.feed.GetFeed(c); err != nil {
		t.Fatalf("GetFeed: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Posts[0].IsLiked {
		t.Error("expected is_liked=false for the author")
	}
}
