package services

import (
	"sync"
	"testing"

	"github.com/RodriLang/food-ordering-API-sub001/entity"
	"github.com/RodriLang/food-ordering-API-sub001/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures published events for assertions.
type recorder struct {
	mu     sync.Mutex
	events []recorded
}

type recorded struct {
	Session string
	Name    string
	Payload any
}

func (r *recorder) Publish(sessionID, event string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recorded{sessionID, event, payload})
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

func (f *fixture) sessionService(events EventPublisher) *SessionService {
	return NewSessionService(
		f.DB,
		repository.NewSessionRepository(f.DB),
		repository.NewTableRepository(f.DB),
		events,
	)
}

func TestScan_OpensSessionAndJoins(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	svc := f.sessionService(rec)

	// a fresh table: scanning opens a new session
	table := entity.DiningTable{
		PublicID: "t2", Number: 2, ScanCode: "scan-2", VenueID: f.Venue.ID,
	}
	require.NoError(t, f.DB.Create(&table).Error)

	res, err := svc.Scan("scan-2", nil, &ScanReq{DisplayName: "Billie"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TableNumber)
	require.NotNil(t, res.Participant)
	assert.True(t, res.Participant.Guest)
	assert.Contains(t, rec.names(), EventUserJoined)
	assert.Contains(t, rec.names(), EventCountUpdated)

	// second scan joins the same session
	res2, err := svc.Scan("scan-2", nil, &ScanReq{DisplayName: "Charlie"})
	require.NoError(t, err)
	assert.Equal(t, res.ID, res2.ID)
	assert.NotEqual(t, res.Participant.ID, res2.Participant.ID)
}

func TestScan_UnknownCode(t *testing.T) {
	f := newFixture(t)
	svc := f.sessionService(nil)

	_, err := svc.Scan("no-such-code", nil, &ScanReq{DisplayName: "Billie"})
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestLeave_LastParticipantClosesSession(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	svc := f.sessionService(rec)

	require.NoError(t, svc.Leave(f.Session.PublicID, f.Participant.PublicID))
	assert.Contains(t, rec.names(), EventUserLeft)

	var sess entity.TableSession
	require.NoError(t, f.DB.First(&sess, f.Session.ID).Error)
	assert.NotNil(t, sess.EndedAt)
}

func TestEnd_StaffClosesSession(t *testing.T) {
	f := newFixture(t)
	svc := f.sessionService(nil)

	require.NoError(t, svc.End(f.Venue.ID, f.Session.PublicID))
	assert.ErrorIs(t, svc.End(f.Venue.ID, f.Session.PublicID), ErrSessionClosed)
}

func TestSendMessage_PersistsAndPublishes(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	svc := f.sessionService(rec)

	msg, err := svc.SendMessage(f.Session.PublicID, f.Participant.PublicID, "two more lemonades please")
	require.NoError(t, err)
	assert.Equal(t, "Alex", msg.Participant)
	assert.Contains(t, rec.names(), EventNewMessage)

	msgs, err := svc.Messages(f.Session.PublicID, 10)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestSendMessage_ClosedSession(t *testing.T) {
	f := newFixture(t)
	svc := f.sessionService(nil)
	require.NoError(t, svc.End(f.Venue.ID, f.Session.PublicID))

	_, err := svc.SendMessage(f.Session.PublicID, f.Participant.PublicID, "hello?")
	assert.ErrorIs(t, err, ErrSessionClosed)
}
