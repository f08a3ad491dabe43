package models

import (
	"time"
)

// InitialRating is the ELO rating assigned to a team on first observation.
// Nothing updates it yet.
const InitialRating = 1500.0

// Team mirrors a team observed from the provider, keyed by ExternalID the
// same way tournaments are.
type Team struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ExternalID string    `json:"external_id" gorm:"uniqueIndex;not null"`
	Name       string    `json:"name"`
	Acronym    string    `json:"acronym"`
	ImageURL   string    `json:"image_url"`
	Game       string    `json:"game"`
	Rating     float64   `json:"rating" gorm:"default:1500"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Tournaments []Tournament `json:"tournaments,omitempty" gorm:"many2many:tournament_teams;"`
}
