package resp

import (
	"errors"
	"net/http"

	"github.com/RodriLang/food-ordering-API-sub001/services"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Domain maps a service error onto the stable wire shape. Everything the
// taxonomy doesn't name is a 500.
func Domain(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEntityNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, services.ErrInsufficientStock):
		Conflict(c, err.Error())
	case errors.Is(err, services.ErrOrderInProgress):
		Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		Conflict(c, err.Error())
	case errors.Is(err, services.ErrSessionClosed):
		Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidArgument):
		BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredential):
		Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		Forbidden(c, err.Error())
	default:
		ServerError(c, err)
	}
}
