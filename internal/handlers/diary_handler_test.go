package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/vinculo-app/backend/internal/models"
)

func TestDiaryCreateDefaultsPrivateAndAwardsPoints(t *testing.T) {
	env := newTestEnv()
	user := env.createUser(t, "Alice", "alice@example.com", models.IdentityApproved)

	c, rec := env.newContext(http.MethodPost, "/api/v1/diary",
		`{"title":"First steps","content":"She walked today!","mood":"excited"}`, user.ID)
	if err := env.diaryH.CreateEntry(c); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var entry models.DiaryEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !entry.Private {
		t.Error("expected private to default to true")
	}

	summary, err := env.rewards.MyRewards(user.ID)
	if err != nil {
		t.Fatalf("MyRewards: %v", err)
	}
	if summary.Points != 10 {
		t.Errorf("expected 10 points for a diary entry, got %d", summary.Points)
	}
}

func TestDiaryOtherUsersEntryReadsAsNotFound(t *testing.T) {
	env := newTestEnv()
	owner := env.createUser(t, "Alice", "alice@example.com", models.IdentityApproved)
	intruder := env.createUser(t, "Bruno", "bruno@example.com", models.IdentityApproved)

	entry := &models.DiaryEntry{UserID: owner.ID, Title: "secret", Content: "private note", Mood: models.MoodHappy, Private: true}
	if err := env.diary.Create(entry); err != nil {
		t.Fatalf("Create: %v", err)
	}

	c, _ := env.newContext(http.MethodGet, "/api/v1/diary/"+entry.ID, "", intruder.ID)
	c.SetParamNames("id")
	c.SetParamValues(entry.ID)
	if httpStatus(t, env.diaryH.GetEntry(c)) != http.StatusNotFound {
		t.Error("expected 404 for another user's entry")
	}

	c, _ = env.newContext(http.MethodDelete, "/api/v1/diary/"+entry.ID, "", intruder.ID)
	c.SetParamNames("id")
	c.SetParamValues(entry.ID)
	if httpStatus(t, env.diaryH.DeleteEntry(c)) != http.StatusNotFound {
		t.Error("expected 404 for deleting another user's entry")
	}
}

func TestDiaryPartialUpdate(t *testing.T) {
	env := newTestEnv()
	user := env.createUser(t, "Alice", "alice@example.com", models.IdentityApproved)

	entry := &models.DiaryEntry{UserID: user.ID, Title: "day one", Content: "long day", Mood: models.MoodTired, Private: true}
	if err := env.diary.Create(entry); err != nil {
		t.Fatalf("Create: %v", err)
	}

	c, _ := env.newContext(http.MethodPut, "/api/v1/diary/"+entry.ID,
		`{"mood":"grateful","private":false}`, user.ID)
	c.SetParamNames("id")
	c.SetParamValues(entry.ID)
	if err := env.diaryH.UpdateEntry(c); err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}

	updated, _ := env.diary.FindByID(entry.ID)
	if updated.Mood != models.MoodGrateful {
		t.Errorf("expected mood grateful, got %s", updated.Mood)
	}
	if updated.Private {
		t.Error("expected private=false after update")
	}
	if updated.Title != "day one" || updated.Content != "long day" {
		t.Error("untouched fields should keep their values")
	}
}
