package entity

import (
	"gorm.io/gorm"
)

// SessionMessage is a chat line between the participants of one session.
type SessionMessage struct {
	gorm.Model
	PublicID string `gorm:"size:36;uniqueIndex" json:"publicId"`
	Body     string `gorm:"size:1000;not null" json:"body"`

	SessionID uint         `json:"sessionId"`
	Session   TableSession `json:"-"`

	ParticipantID uint               `json:"participantId"`
	Participant   SessionParticipant `json:"-"` // preload for sender name
}
