package models

import "time"

// ServiceCategory classifies a local service listing.
type ServiceCategory string

const (
	ServicePediatrician ServiceCategory = "pediatrician"
	ServiceSchool       ServiceCategory = "school"
	ServicePark         ServiceCategory = "park"
	ServiceStore        ServiceCategory = "store"
	ServiceOther        ServiceCategory = "other"
)

// LocalService is a read-only directory entry for family-oriented services.
type LocalService struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    ServiceCategory `json:"category"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone,omitempty"`
	Website     string          `json:"website,omitempty"`
	Location    Location        `json:"location"`
	Rating      float64         `json:"rating"`
	ImageURL    string          `json:"image_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
