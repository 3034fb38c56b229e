package entity

import (
	"gorm.io/gorm"
)

// Order is one participant's cart within a table session. Total is derived:
// it always equals the sum of live line-item subtotals and is recomputed by the
// service on every line-item mutation.
type Order struct {
	gorm.Model
	PublicID            string      `gorm:"size:36;uniqueIndex" json:"publicId"`
	Status              OrderStatus `gorm:"size:20;default:PENDING" json:"status"`
	Total               int64       `json:"total"`
	SpecialRequirements string      `gorm:"size:500" json:"specialRequirements"`

	SessionID uint         `json:"sessionId"`
	Session   TableSession `json:"-"`

	VenueID uint  `json:"venueId"`
	Venue   Venue `json:"-"`

	ParticipantID uint               `json:"participantId"`
	Participant   SessionParticipant `json:"-"` // preload for staff views

	// nil until settled
	PaymentID *uint    `json:"paymentId,omitempty"`
	Payment   *Payment `json:"-"`

	Details []OrderDetail `json:"-"` // preload on order detail only
}
