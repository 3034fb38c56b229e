package services

import (
	"errors"
	"strings"
	"time"

	"github.com/RodriLang/food-ordering-API-sub001/entity"
	"github.com/RodriLang/food-ordering-API-sub001/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionService struct {
	DB     *gorm.DB
	Repo   *repository.SessionRepository
	Tables *repository.TableRepository
	Events EventPublisher
}

func NewSessionService(
	db *gorm.DB,
	repo *repository.SessionRepository,
	tables *repository.TableRepository,
	events EventPublisher,
) *SessionService {
	if events == nil {
		events = NopPublisher{}
	}
	return &SessionService{DB: db, Repo: repo, Tables: tables, Events: events}
}

// ----- DTOs -----

type ScanReq struct {
	DisplayName string `json:"displayName" binding:"required"`
}

type ParticipantRes struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Guest       bool   `json:"guest"`
}

type SessionRes struct {
	ID          string          `json:"id"`
	TableNumber int             `json:"tableNumber"`
	StartedAt   time.Time       `json:"startedAt"`
	Participant *ParticipantRes `json:"participant,omitempty"`
}

// ----- Lifecycle -----

// Scan resolves a table scan code, opens the table's session if none is active,
// and joins the caller as a participant. userID is nil for anonymous guests.
func (s *SessionService) Scan(code string, userID *uint, req *ScanReq) (*SessionRes, error) {
	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		return nil, ErrInvalidArgument
	}
	table, err := s.Tables.FindByScanCode(code)
	if err != nil {
		return nil, asNotFound(err)
	}

	now := time.Now()
	var sess *entity.TableSession
	var part entity.SessionParticipant
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		sess, err = s.Repo.ActiveForTable(table.ID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			sess = &entity.TableSession{
				PublicID:  uuid.NewString(),
				StartedAt: now,
				TableID:   table.ID,
				VenueID:   table.VenueID,
			}
			if err := s.Repo.Create(tx, sess); err != nil {
				return err
			}
		}
		part = entity.SessionParticipant{
			PublicID:    uuid.NewString(),
			DisplayName: name,
			Guest:       userID == nil,
			JoinedAt:    now,
			SessionID:   sess.ID,
			UserID:      userID,
		}
		return s.Repo.AddParticipant(tx, &part)
	})
	if err != nil {
		return nil, err
	}

	pr := &ParticipantRes{ID: part.PublicID, DisplayName: part.DisplayName, Guest: part.Guest}
	s.Events.Publish(sess.PublicID, EventUserJoined, pr)
	s.publishCount(sess)

	return &SessionRes{
		ID:          sess.PublicID,
		TableNumber: table.Number,
		StartedAt:   sess.StartedAt,
		Participant: pr,
	}, nil
}

// Leave marks a participant gone. When the last one leaves the session closes.
func (s *SessionService) Leave(sessionID, participantID string) error {
	sess, err := s.Repo.FindByPublicID(sessionID)
	if err != nil {
		return asNotFound(err)
	}
	part, err := s.Repo.FindParticipant(sess.ID, participantID)
	if err != nil {
		return asNotFound(err)
	}

	now := time.Now()
	closed := false
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.MarkLeft(tx, part.ID, now); err != nil {
			return err
		}
		present, err := s.Repo.CountPresent(tx, sess.ID)
		if err != nil {
			return err
		}
		if present == 0 {
			closed = true
			return s.Repo.Close(tx, sess.ID, now)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Events.Publish(sess.PublicID, EventUserLeft, ParticipantRes{
		ID: part.PublicID, DisplayName: part.DisplayName, Guest: part.Guest,
	})
	if !closed {
		s.publishCount(sess)
	}
	return nil
}

// End closes a session explicitly (staff action), regardless of who is present.
func (s *SessionService) End(venueID uint, sessionID string) error {
	sess, err := s.Repo.FindByPublicID(sessionID)
	if err != nil {
		return asNotFound(err)
	}
	if sess.VenueID != venueID {
		return ErrEntityNotFound
	}
	if !sess.Active() {
		return ErrSessionClosed
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Close(tx, sess.ID, time.Now())
	})
}

func (s *SessionService) publishCount(sess *entity.TableSession) {
	present, err := s.Repo.CountPresent(s.DB, sess.ID)
	if err != nil {
		return
	}
	s.Events.Publish(sess.PublicID, EventCountUpdated, map[string]any{"count": present})
}

// ----- Messages -----

type MessageRes struct {
	ID          string    `json:"id"`
	Body        string    `json:"body"`
	Participant string    `json:"participant"`
	SentAt      time.Time `json:"sentAt"`
}

// SendMessage persists a chat line and fans it out to the session.
func (s *SessionService) SendMessage(sessionID, participantID, body string) (*MessageRes, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrInvalidArgument
	}
	sess, err := s.Repo.FindByPublicID(sessionID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if !sess.Active() {
		return nil, ErrSessionClosed
	}
	part, err := s.Repo.FindParticipant(sess.ID, participantID)
	if err != nil {
		return nil, asNotFound(err)
	}

	msg := entity.SessionMessage{
		PublicID:      uuid.NewString(),
		Body:          body,
		SessionID:     sess.ID,
		ParticipantID: part.ID,
	}
	if err := s.Repo.CreateMessage(&msg); err != nil {
		return nil, err
	}

	res := &MessageRes{
		ID:          msg.PublicID,
		Body:        msg.Body,
		Participant: part.DisplayName,
		SentAt:      msg.CreatedAt,
	}
	s.Events.Publish(sess.PublicID, EventNewMessage, res)
	return res, nil
}

func (s *SessionService) Messages(sessionID string, limit int) ([]entity.SessionMessage, error) {
	sess, err := s.Repo.FindByPublicID(sessionID)
	if err != nil {
		return nil, asNotFound(err)
	}
	return s.Repo.ListMessages(sess.ID, limit)
}
