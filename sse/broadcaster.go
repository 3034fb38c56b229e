package sse

import (
	"log/slog"
	"sync"
	"time"

	"github.com/RodriLang/food-ordering-API-sub001/services"

	"github.com/google/uuid"
)

// DefaultTimeout bounds how long an idle subscriber may stay connected.
const DefaultTimeout = 10 * time.Minute

type Event struct {
	Name    string `json:"event"`
	Payload any    `json:"payload"`
}

// Broadcaster fans session lifecycle events out to every subscriber of a table
// session. Delivery is at-most-once and best-effort: a full or dead subscriber
// is skipped, never torn down by Publish. Removal belongs exclusively to the
// subscriber's own Deregister, which completion, timeout and error paths share.
type Broadcaster struct {
	mu       sync.Mutex
	sessions map[string]map[*Subscriber]struct{}
	timeout  time.Duration
	log      *slog.Logger
}

func NewBroadcaster(log *slog.Logger, timeout time.Duration) *Broadcaster {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Broadcaster{
		sessions: make(map[string]map[*Subscriber]struct{}),
		timeout:  timeout,
		log:      log,
	}
}

// Subscriber is one long-lived client connection bound to a session. Events
// arrive on Events(); Done() closes when the handle is deregistered.
type Subscriber struct {
	ID        string
	SessionID string

	ch    chan Event
	done  chan struct{}
	once  sync.Once
	timer *time.Timer
	b     *Broadcaster
}

func (s *Subscriber) Events() <-chan Event { return s.ch }
func (s *Subscriber) Done() <-chan struct{} { return s.done }

// Deregister removes the handle from its session's set and, when the set
// empties, drops the session key. Safe to call any number of times from the
// completion, timeout and error paths concurrently.
func (s *Subscriber) Deregister() {
	s.once.Do(func() {
		if s.timer != nil {
			s.timer.Stop()
		}
		close(s.done)

		s.b.mu.Lock()
		if set, ok := s.b.sessions[s.SessionID]; ok {
			delete(set, s)
			if len(set) == 0 {
				delete(s.b.sessions, s.SessionID)
			}
		}
		s.b.mu.Unlock()

		s.b.log.Debug("subscriber deregistered",
			"session", s.SessionID, "subscriber", s.ID)
	})
}

// send is non-blocking; false means the subscriber is gone or its buffer is
// full, and the event is dropped for this handle. The done check runs first on
// its own so a closed handle can never enqueue through the racing select.
func (s *Subscriber) send(e Event) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case <-s.done:
		return false
	case s.ch <- e:
		return true
	default:
		return false
	}
}

// Subscribe registers a new handle and immediately pushes the
// connection-successful event. If that first push cannot be delivered the
// handle never truly opened and is deregistered on the spot.
func (b *Broadcaster) Subscribe(sessionID string) (*Subscriber, error) {
	sub := &Subscriber{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		ch:        make(chan Event, 16),
		done:      make(chan struct{}),
		b:         b,
	}

	b.mu.Lock()
	set, ok := b.sessions[sessionID]
	if !ok {
		set = make(map[*Subscriber]struct{})
		b.sessions[sessionID] = set
	}
	set[sub] = struct{}{}
	b.mu.Unlock()

	if !sub.send(Event{Name: services.EventConnected, Payload: map[string]string{"subscriberId": sub.ID}}) {
		sub.Deregister()
		return nil, ErrSubscriberClosed
	}

	sub.timer = time.AfterFunc(b.timeout, sub.Deregister)

	b.log.Info("subscriber connected", "session", sessionID, "subscriber", sub.ID)
	return sub, nil
}

// Publish sends the event to every handle currently registered for the
// session. Send failures are logged and otherwise ignored.
func (b *Broadcaster) Publish(sessionID, event string, payload any) {
	b.mu.Lock()
	subs := make([]*Subscriber, 0, len(b.sessions[sessionID]))
	for s := range b.sessions[sessionID] {
		subs = append(subs, s)
	}
	b.mu.Unlock()

	e := Event{Name: event, Payload: payload}
	for _, s := range subs {
		if !s.send(e) {
			b.log.Warn("event dropped",
				"session", sessionID, "subscriber", s.ID, "event", event)
		}
	}
}

// SubscriberCount reports how many handles a session currently has.
func (b *Broadcaster) SubscriberCount(sessionID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions[sessionID])
}

var _ services.EventPublisher = (*Broadcaster)(nil)
