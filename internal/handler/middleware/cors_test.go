//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	apitest "shareit/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       time.Hour,
	}
	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(cfg))
	router.PATCH("/bookings/:bookingId", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/bookings/1", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
		req.Header.Set("Access-Control-Request-Headers", middleware.HeaderUserID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("allowed origin gets identity header in preflight", func(t *testing.T) {
		rec := preflight("http://localhost:3000")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		apitest.AssertHeaders(t, rec, map[string]string{
			"Access-Control-Allow-Origin":      "http://localhost:3000",
			"Access-Control-Allow-Credentials": "",
		})
		apitest.AssertHeaderLists(t, rec, "Access-Control-Allow-Headers",
			"Content-Type", middleware.HeaderUserID, middleware.HeaderRequestID)
		apitest.AssertHeaderLists(t, rec, "Access-Control-Allow-Methods", http.MethodPatch)
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		rec := preflight("http://evil.example")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		apitest.AssertHeaders(t, rec, map[string]string{"Access-Control-Allow-Origin": ""})
	})

	t.Run("config slices are not mutated", func(t *testing.T) {
		assert.Equal(t, []string{"Content-Type"}, cfg.AllowHeaders)
		assert.Nil(t, cfg.ExposeHeaders)
	})
}
