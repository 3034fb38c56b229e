package entity

import (
	"time"

	"gorm.io/gorm"
)

// SpecialOffer is a promotional message staff can push to a live session.
type SpecialOffer struct {
	gorm.Model
	PublicID  string     `gorm:"size:36;uniqueIndex" json:"publicId"`
	Title     string     `gorm:"size:200;not null" json:"title"`
	Body      string     `gorm:"size:1000" json:"body"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`

	VenueID uint  `json:"venueId"`
	Venue   Venue `json:"-"`
}
