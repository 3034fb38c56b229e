package services

import (
	"strings"
	"time"

	"github.com/RodriLang/food-ordering-API-sub001/entity"
	"github.com/RodriLang/food-ordering-API-sub001/repository"

	"github.com/google/uuid"
)

// OfferService lets staff push promotional messages into a live session.
type OfferService struct {
	Repo     *repository.OfferRepository
	Sessions *repository.SessionRepository
	Events   EventPublisher
}

func NewOfferService(repo *repository.OfferRepository, sessions *repository.SessionRepository, events EventPublisher) *OfferService {
	if events == nil {
		events = NopPublisher{}
	}
	return &OfferService{Repo: repo, Sessions: sessions, Events: events}
}

type CreateOfferReq struct {
	Title     string     `json:"title" binding:"required"`
	Body      string     `json:"body"`
	ExpiresAt *time.Time `json:"expiresAt"`
	SessionID string     `json:"sessionId"` // optional: broadcast target
}

type OfferRes struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Create stores the offer and, when a session is named, broadcasts it there.
func (s *OfferService) Create(venueID uint, req *CreateOfferReq) (*OfferRes, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrInvalidArgument
	}
	offer := entity.SpecialOffer{
		PublicID:  uuid.NewString(),
		Title:     title,
		Body:      req.Body,
		ExpiresAt: req.ExpiresAt,
		VenueID:   venueID,
	}
	if err := s.Repo.Create(&offer); err != nil {
		return nil, err
	}

	res := &OfferRes{ID: offer.PublicID, Title: offer.Title, Body: offer.Body}
	if req.SessionID != "" {
		sess, err := s.Sessions.FindByPublicID(req.SessionID)
		if err == nil && sess.VenueID == venueID && sess.Active() {
			s.Events.Publish(sess.PublicID, EventSpecialOffer, res)
		}
	}
	return res, nil
}

func (s *OfferService) List(venueID uint) ([]entity.SpecialOffer, error) {
	return s.Repo.ListForVenue(venueID)
}
