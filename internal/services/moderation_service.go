package services

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// blockedTerms is the fixed blocklist applied to post content. Matching is a
// case-insensitive substring scan, checked before the length rules.
var blockedTerms = []string{
	"ódio", "preconceito", "racismo", "violência", "idiota", "estúpido",
	"burro", "hate", "stupid", "idiot", "racism", "violence",
}

const (
	minContentLength = 5
	maxContentLength = 5000
)

// ModerationResult is the verdict for a candidate text body. Reason is empty
// when the content is approved.
type ModerationResult struct {
	Approved bool
	Reason   string
}

// ModerationService classifies post content. It is pure and deterministic:
// no state, no side effects. The same gate runs on every post create and on
// every edit, so an edit can flip a post between approved and rejected.
type ModerationService struct {
	terms []string
}

// NewModerationService creates a ModerationService with the default blocklist.
func NewModerationService() *ModerationService {
	return &ModerationService{terms: blockedTerms}
}

// Review applies the moderation rules in order, first match wins:
// blocklisted term, too short, too long, otherwise approved.
func (s *ModerationService) Review(content string) ModerationResult {
	lower := strings.ToLower(content)
	for _, term := range s.terms {
		if strings.Contains(lower, term) {
			return ModerationResult{
				Reason: fmt.Sprintf("content contains inappropriate language: %q", term),
			}
		}
	}
	if utf8.RuneCountInString(content) < minContentLength {
		return ModerationResult{
			Reason: fmt.Sprintf("content too short (minimum %d characters)", minContentLength),
		}
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return ModerationResult{
			Reason: fmt.Sprintf("content too long (maximum %d characters)", maxContentLength),
		}
	}
	return ModerationResult{Approved: true}
}
