package services

import "testing"

func TestReviewApprovesCleanContent(t *testing.T) {
	svc := NewModerationService()

	result := svc.Review("Minha primeira publicação!")
	if !result.Approved {
		t.Errorf("expected approval, got rejection: %s", result.Reason)
	}
	if result.Reason != "" {
		t.Errorf("expected empty reason on approval, got %q", result.Reason)
	}
}

func TestReviewRejectsBlockedTerm(t *testing.T) {
	svc := NewModerationService()

	result := svc.Review("isso é puro ódio")
	if result.Approved {
		t.Fatal("expected rejection for blocked term")
	}
	if result.Reason == "" {
		t.Error("expected a rejection reason naming the term")
	}
}

func TestReviewBlocklistIsCaseInsensitive(t *testing.T) {
	svc := NewModerationService()

	if result := svc.Review("You are STUPID and wrong"); result.Approved {
		t.Error("expected rejection for uppercase blocked term")
	}
}

func TestReviewRejectsShortContent(t *testing.T) {
	svc := NewModerationService()

	result := svc.Review("oi")
	if result.Approved {
		t.Fatal("expected rejection for short content")
	}
	if result.Reason != "content too short (minimum 5 characters)" {
		t.Errorf("unexpected reason: %q", result.Reason)
	}
}

func TestReviewLengthCountsRunes(t *testing.T) {
	svc := NewModerationService()

	// five runes, more than five bytes
	if result := svc.Review("ãéíóú"); !result.Approved {
		t.Errorf("expected five-rune content to pass, got %q", result.Reason)
	}
}

func TestReviewRejectsLongContent(t *testing.T) {
	svc := NewModerationService()

	long := make([]byte, 5001)
	for i := range long {
		long[i] = 'a'
	}
	result := svc.Review(string(long))
	if result.Approved {
		t.Fatal("expected rejection for long content")
	}
	if result.Reason != "content too long (maximum 5000 characters)" {
		t.Errorf("unexpected reason: %q", result.Reason)
	}
}

func TestReviewBlocklistWinsOverLength(t *testing.T) {
	svc := NewModerationService()

	// Blocked term inside otherwise too-short content: the term rule fires first.
	result := svc.Review("hate")
	if result.Approved {
		t.Fatal("expected rejection")
	}
	if result.Reason == "content too short (minimum 5 characters)" {
		t.Error("expected the blocklist rule to fire before the length rule")
	}
}
