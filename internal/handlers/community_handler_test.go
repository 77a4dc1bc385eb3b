package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/vinculo-app/backend/internal/models"
)

func TestCommunityCreateAndJoinLeave(t *testing.T) {
	env := newTestEnv()
	creator := env.createUser(t, "Alice", "alice@example.com", models.IdentityApproved)
	member := env.createUser(t, "Bruno", "bruno@example.com", models.IdentityApproved)

	c, rec := env.newContext(http.MethodPost, "/api/v1/communities",
		`{"name":"Downtown Parents","description":"Playdates downtown","city":"São Paulo","state":"SP"}`, creator.ID)
	if err := env.community.CreateCommunity(c); err != nil {
		t.Fatalf("CreateCommunity: %v", err)
	}
	var community models.Community
	if err := json.Unmarshal(rec.Body.Bytes(), &community); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !community.HasMember(creator.ID) {
		t.Error("creator should be an implicit member")
	}

	join := func(userID string) error {
		c, _ := env.newContext(http.MethodPost, "/api/v1/communities/"+community.ID+"/join", "", userID)
		c.SetParamNames("id")
		c.SetParamValues(community.ID)
		return env.community.JoinCommunity(c)
	}
	leave := func(userID string) error {
		c, _ := env.newContext(http.MethodPost, "/api/v1/communities/"+community.ID+"/leave", "", userID)
		c.SetParamNames("id")
		c.SetParamValues(community.ID)
		return env.community.LeaveCommunity(c)
	}

	if err := join(member.ID); err != nil {
		t.Fatalf("JoinCommunity: %v", err)
	}
	if httpStatus(t, join(member.ID)) != http.StatusBadRequest {
		t.Error("expected 400 for joining twice")
	}

	if httpStatus(t, leave(creator.ID)) != http.StatusBadRequest {
		t.Error("expected 400 when the creator tries to leave")
	}
	if err := leave(member.ID); err != nil {
		t.Fatalf("LeaveCommunity: %v", err)
	}
	if httpStatus(t, leave(member.ID)) != http.StatusBadRequest {
		t.Error("expected 400 for leaving a community you are not in")
	}
}

func TestCommunityListFiltersByLocation(t *testing.T) {
	env := newTestEnv()
	creator := env.createUser(t, "Alice", "alice@example.com", models.IdentityApproved)

	for _, body := range []string{
		`{"name":"SP Parents","description":"d","city":"São Paulo","state":"SP"}`,
		`{"name":"Campinas Parents","description":"d","city":"Campinas","state":"SP"}`,
	} {
		c, _ := env.newContext(http.MethodPost, "/api/v1/communities", body, creator.ID)
		if err := env.community.CreateCommunity(c); err != nil {
			t.Fatalf("CreateCommunity: %v", err)
		}
	}

	c, rec := env.newContext(http.MethodGet, "/api/v1/communities?city=Campinas&state=SP", "", creator.ID)
	if err := env.community.GetCommunities(c); err != nil {
		t.Fatalf("GetCommunities: %v", err)
	}
	var resp struct {
		Communities []CommunityItem `json:"communities"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Communities) != 1 || resp.Communities[0].Name != "Campinas Parents" {
		t.Errorf("expected only the Campinas community, got %d results", len(resp.Communities))
	}
	if resp.Communities[0].MemberCount != 1 {
		t.Errorf("expected member_count 1, got %d", resp.Communities[0].MemberCount)
	}
	if resp.Communities[0].Creator.Name != "Alice" {
		t.Errorf("expected creator summary, got %+v", resp.Communities[0].Creator)
	}
}
