package entity

import (
	"time"

	"gorm.io/gorm"
)

// TableSession groups the people sharing one table for a bounded window.
// Its PublicID is the broadcast key all realtime subscribers use.
type TableSession struct {
	gorm.Model
	PublicID  string     `gorm:"size:36;uniqueIndex" json:"publicId"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`

	TableID uint        `json:"tableId"`
	Table   DiningTable `json:"-"`

	VenueID uint  `json:"venueId"`
	Venue   Venue `json:"-"`

	Orders       []Order              `gorm:"foreignKey:SessionID" json:"-"` // preload only on session detail
	Participants []SessionParticipant `gorm:"foreignKey:SessionID" json:"-"`
}

func (s *TableSession) Active() bool {
	return s.EndedAt == nil
}
