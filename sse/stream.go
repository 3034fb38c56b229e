package sse

import (
	"io"

	"github.com/RodriLang/food-ordering-API-sub001/repository"

	"github.com/gin-gonic/gin"
)

// Handler exposes the broadcaster over HTTP; it owns no domain logic.
type Handler struct {
	B        *Broadcaster
	Sessions *repository.SessionRepository
}

func NewHandler(b *Broadcaster, sessions *repository.SessionRepository) *Handler {
	return &Handler{B: b, Sessions: sessions}
}

// Stream is the SSE route: GET /sessions/:id/events
// The subscriber lives until the client disconnects, the session times out, or
// a write fails; all three converge on Deregister.
func (h *Handler) Stream(c *gin.Context) {
	sessionID := c.Param("id")
	sess, err := h.Sessions.FindByPublicID(sessionID)
	if err != nil || !sess.Active() {
		c.JSON(404, gin.H{"ok": false, "error": "session not found"})
		return
	}

	sub, err := h.B.Subscribe(sess.PublicID)
	if err != nil {
		c.JSON(500, gin.H{"ok": false, "error": err.Error()})
		return
	}
	defer sub.Deregister()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case e := <-sub.Events():
			c.SSEvent(e.Name, e.Payload)
			return true
		case <-sub.Done():
			return false
		case <-clientGone:
			return false
		}
	})
}
