package models

import (
	"slices"
	"time"
)

// Location is a city + state pair used by communities and local services.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Community is a local-interest group. The creator is implicitly a member
// and may not leave.
type Community struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    Location  `json:"location"`
	ImageURL    string    `json:"image_url,omitempty"`
	MemberIDs   []string  `json:"member_ids"`
	CreatorID   string    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasMember reports whether the given user belongs to the community.
func (c *Community) HasMember(userID string) bool {
	return slices.Contains(c.MemberIDs, userID)
}

// CreateCommunityRequest defines the request body for creating a community
type CreateCommunityRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
	City        string `json:"city" validate:"required,min=1"`
	State       string `json:"state" validate:"required,min=2"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
}
