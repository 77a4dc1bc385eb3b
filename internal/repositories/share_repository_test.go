package repositories

import (
	"errors"
	"testing"

	"github.com/vinculo-app/backend/internal/models"
)

func TestShareDuplicateRejected(t *testing.T) {
	repo := NewMemoryShareRepository()

	if err := repo.Create(&models.Share{PostID: "p1", UserID: "u1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(&models.Share{PostID: "p1", UserID: "u1"})
	if !errors.Is(err, ErrAlreadyShared) {
		t.Errorf("expected ErrAlreadyShared, got %v", err)
	}

	// Same post by another user and same user on another post are both fine.
	if err := repo.Create(&models.Share{PostID: "p1", UserID: "u2"}); err != nil {
		t.Errorf("different user should be able to share: %v", err)
	}
	if err := repo.Create(&models.Share{PostID: "p2", UserID: "u1"}); err != nil {
		t.Errorf("same user should be able to share another post: %v", err)
	}

	byPost, err := repo.FindByPostID("p1")
	if err != nil {
		t.Fatalf("FindByPostID: %v", err)
	}
	if len(byPost) != 2 {
		t.Errorf("expected 2 shares of p1, got %d", len(byPost))
	}

	byUser, err := repo.FindByUserID("u1")
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("expected 2 shares by u1, got %d", len(byUser))
	}
}
