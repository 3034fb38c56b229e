package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	PublicID string `gorm:"size:36;uniqueIndex" json:"publicId"`
	Name     string `gorm:"size:100;not null" json:"name"`

	VenueID uint  `json:"venueId"`
	Venue   Venue `json:"-"`

	Products []Product `json:"-"`
}
