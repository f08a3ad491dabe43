package models

import (
	"time"
)

// Tournament mirrors a tournament observed from the provider. ExternalID is
// the provider's identifier and the stable upsert key: repeated fetches
// overwrite the same row instead of creating duplicates.
type Tournament struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	ExternalID string     `json:"external_id" gorm:"uniqueIndex;not null"`
	Name       string     `json:"name"`
	Game       string     `json:"game"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	Status     string     `json:"status"`
	PrizePool  string     `json:"prize_pool"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Teams []Team `json:"teams,omitempty" gorm:"many2many:tournament_teams;"`
}
