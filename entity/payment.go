package entity

import (
	"time"

	"gorm.io/gorm"
)

// Payment settles one order (guest scope) or several (registered scope, via
// PaymentOrder rows). Created only by the settlement engine; immutable once
// its status is terminal.
type Payment struct {
	gorm.Model
	PublicID string        `gorm:"size:36;uniqueIndex" json:"publicId"`
	Amount   int64         `json:"amount"`
	Method   PaymentMethod `gorm:"size:20" json:"method"`
	Status   PaymentStatus `gorm:"size:20;default:PENDING" json:"status"`
	PaidAt   *time.Time    `json:"paidAt,omitempty"`

	VenueID uint  `json:"venueId"`
	Venue   Venue `json:"-"`

	Orders []PaymentOrder `json:"-"` // preload for settlement detail
}
