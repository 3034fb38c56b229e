package entity

import (
	"time"

	"gorm.io/gorm"
)

type SessionParticipant struct {
	gorm.Model
	PublicID    string     `gorm:"size:36;uniqueIndex" json:"publicId"`
	DisplayName string     `gorm:"size:100" json:"displayName"`
	Guest       bool       `json:"guest"`
	JoinedAt    time.Time  `json:"joinedAt"`
	LeftAt      *time.Time `json:"leftAt,omitempty"`

	SessionID uint         `json:"sessionId"`
	Session   TableSession `json:"-"`

	// nil for anonymous guests
	UserID *uint `json:"userId,omitempty"`
	User   *User `json:"-"`
}
