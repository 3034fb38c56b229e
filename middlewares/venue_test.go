package middlewares

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/RodriLang/food-ordering-API-sub001/configs"
	"github.com/RodriLang/food-ordering-API-sub001/entity"
	"github.com/RodriLang/food-ordering-API-sub001/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownerRouter(userID uint, role string, venueID uint, venues *repository.VenueRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("role", role)
		c.Set("venueId", venueID)
	})
	r.Use(VenueOwnerMiddleware(venues))
	r.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func TestVenueOwnerMiddleware(t *testing.T) {
	db, err := configs.OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))

	owner := entity.User{PublicID: "u-1", Email: "owner@test.local", PasswordHash: "h", Role: "owner"}
	require.NoError(t, db.Create(&owner).Error)
	mine := entity.Venue{PublicID: "v-1", Name: "Mine", Slug: "mine", OwnerID: owner.ID}
	require.NoError(t, db.Create(&mine).Error)
	other := entity.Venue{PublicID: "v-2", Name: "Other", Slug: "other", OwnerID: owner.ID + 100}
	require.NoError(t, db.Create(&other).Error)
	venues := repository.NewVenueRepository(db)

	do := func(userID uint, role string, venueID uint) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		ownerRouter(userID, role, venueID, venues).ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do(owner.ID, "owner", mine.ID))
	assert.Equal(t, http.StatusForbidden, do(owner.ID, "owner", other.ID))

	// staff and admin are not venue-bound
	assert.Equal(t, http.StatusOK, do(owner.ID, "staff", other.ID))
	assert.Equal(t, http.StatusOK, do(owner.ID, "admin", other.ID))
}
