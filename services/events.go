package services

// Event names sent to session subscribers. Consumers match on these strings
// verbatim, so they never change.
const (
	EventNewOrder       = "new-order"
	EventOrderConfirmed = "order-confirmed"
	EventOrderServed    = "order-served"
	EventOrderCancelled = "order-cancelled"
	EventSpecialOffer   = "special-offer"
	EventNewMessage     = "new-message"
	EventUserJoined     = "user-joined"
	EventUserLeft       = "user-left"
	EventCountUpdated   = "count-updated"
	EventConnected      = "connection-successful"
)

// EventPublisher pushes a session-scoped event to whoever is subscribed.
// Delivery is best-effort; services never treat a publish as fallible.
type EventPublisher interface {
	Publish(sessionID, event string, payload any)
}

// NopPublisher drops everything. Used where no broadcaster is wired (tests).
type NopPublisher struct{}

func (NopPublisher) Publish(string, string, any) {}
