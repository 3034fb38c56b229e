package controllers

import (
	"github.com/RodriLang/food-ordering-API-sub001/pkg/resp"
	"github.com/RodriLang/food-ordering-API-sub001/services"
	"github.com/RodriLang/food-ordering-API-sub001/utils"

	"github.com/gin-gonic/gin"
)

type SessionController struct{ Sessions *services.SessionService }

func NewSessionController(sessions *services.SessionService) *SessionController {
	return &SessionController{Sessions: sessions}
}

// POST /tables/:code/scan opens or joins the table's session. Works for
// anonymous guests; a logged-in caller is linked to their account.
func (sc *SessionController) Scan(c *gin.Context) {
	var req services.ScanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	var userID *uint
	if id := utils.CurrentUserID(c); id != 0 {
		userID = &id
	}
	res, err := sc.Sessions.Scan(c.Param("code"), userID, &req)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.Created(c, res)
}

// POST /sessions/:id/leave
func (sc *SessionController) Leave(c *gin.Context) {
	var req struct {
		ParticipantID string `json:"participantId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := sc.Sessions.Leave(c.Param("id"), req.ParticipantID); err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, gin.H{"left": true})
}

// POST /partner/sessions/:id/end lets staff close the session outright.
func (sc *SessionController) End(c *gin.Context) {
	if err := sc.Sessions.End(utils.CurrentVenueID(c), c.Param("id")); err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, gin.H{"ended": true})
}

// POST /sessions/:id/messages
func (sc *SessionController) SendMessage(c *gin.Context) {
	var req struct {
		ParticipantID string `json:"participantId" binding:"required"`
		Body          string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	msg, err := sc.Sessions.SendMessage(c.Param("id"), req.ParticipantID, req.Body)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.Created(c, msg)
}

// GET /sessions/:id/messages
func (sc *SessionController) Messages(c *gin.Context) {
	msgs, err := sc.Sessions.Messages(c.Param("id"), 100)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, gin.H{"items": msgs})
}
