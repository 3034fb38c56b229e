package middlewares

import (
	"net/http"

	"github.com/RodriLang/food-ordering-API-sub001/pkg/resp"
	"github.com/RodriLang/food-ordering-API-sub001/repository"
	"github.com/RodriLang/food-ordering-API-sub001/services"
	"github.com/RodriLang/food-ordering-API-sub001/utils"

	"github.com/gin-gonic/gin"
)

// VenueMiddleware resolves the tenant from the X-Venue header (venue slug) and
// threads its ID through the request context. Resolution happens per request;
// nothing tenant-scoped is ever cached process-wide.
func VenueMiddleware(venues *repository.VenueRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.GetHeader("X-Venue")
		if slug == "" {
			slug = c.Query("venue")
		}
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing venue"})
			c.Abort()
			return
		}
		v, err := venues.FindBySlug(slug)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "venue not found"})
			c.Abort()
			return
		}
		c.Set("venueId", v.ID)
		c.Next()
	}
}

// VenueOwnerMiddleware blocks an owner account from acting on a venue it does
// not own. Staff and admin accounts are not venue-bound and pass through.
// Runs after AuthMiddleware and VenueMiddleware, which set the context keys.
func VenueOwnerMiddleware(venues *repository.VenueRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.CurrentRole(c) != "owner" {
			c.Next()
			return
		}
		owned, err := venues.IsOwnedBy(utils.CurrentVenueID(c), utils.CurrentUserID(c))
		if err != nil {
			resp.ServerError(c, err)
			c.Abort()
			return
		}
		if !owned {
			resp.Domain(c, services.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
