package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RodriLang/food-ordering-API-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const secret = "test-secret"

	r := gin.New()
	r.Use(OptionalAuthMiddleware(secret))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": utils.CurrentUserID(c),
			"role":   utils.CurrentRole(c),
		})
	})

	do := func(authz string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		r.ServeHTTP(w, req)
		return w
	}

	// anonymous callers pass through untouched
	w := do("")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":0,"role":""}`, w.Body.String())

	// a valid token resolves the caller
	token, err := utils.GenerateToken(42, "customer", secret, time.Minute)
	require.NoError(t, err)
	w = do("Bearer " + token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":42,"role":"customer"}`, w.Body.String())

	// garbage is ignored, not rejected
	w = do("Bearer not-a-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":0,"role":""}`, w.Body.String())
}
