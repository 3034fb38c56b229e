package sse

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamWS is the websocket variant of Stream for clients that prefer a duplex
// socket. Events flow one way; the read loop only watches for the client
// closing the connection.
func (h *Handler) StreamWS(c *gin.Context) {
	sessionID := c.Param("id")
	sess, err := h.Sessions.FindByPublicID(sessionID)
	if err != nil || !sess.Active() {
		c.JSON(404, gin.H{"ok": false, "error": "session not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.B.log.Error("ws upgrade failed", "error", err)
		return
	}

	sub, err := h.B.Subscribe(sess.PublicID)
	if err != nil {
		conn.Close()
		return
	}

	go h.writePump(conn, sub)
	go h.readPump(conn, sub)
}

func (h *Handler) writePump(conn *websocket.Conn, sub *Subscriber) {
	defer conn.Close()
	for {
		select {
		case e := <-sub.Events():
			if err := conn.WriteJSON(e); err != nil {
				h.B.log.Warn("ws write failed",
					"session", sub.SessionID, "subscriber", sub.ID, "error", err)
				sub.Deregister()
				return
			}
		case <-sub.Done():
			return
		}
	}
}

// readPump discards client frames; its job is noticing the disconnect.
func (h *Handler) readPump(conn *websocket.Conn, sub *Subscriber) {
	defer sub.Deregister()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
