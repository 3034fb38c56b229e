package utils

import "github.com/gin-gonic/gin"

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// CurrentVenueID is the tenant resolved by the venue middleware for this
// request. Zero means no venue in scope.
func CurrentVenueID(c *gin.Context) uint {
	if v, ok := c.Get("venueId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
