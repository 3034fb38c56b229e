package entity

import (
	"gorm.io/gorm"
)

// DiningTable is a physical table at a venue. ScanCode is the value encoded in
// the table's QR code; rendering the image is not this service's job.
type DiningTable struct {
	gorm.Model
	PublicID string `gorm:"size:36;uniqueIndex" json:"publicId"`
	Number   int    `json:"number"`
	ScanCode string `gorm:"size:36;uniqueIndex" json:"scanCode"`

	VenueID uint  `json:"venueId"`
	Venue   Venue `json:"-"`

	Sessions []TableSession `gorm:"foreignKey:TableID" json:"-"` // preload for table history only
}
