//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shareit/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	code   int
}

type recordingObserver struct {
	seen []observation
}

func (r *recordingObserver) ObserveHTTP(method, route string, code int, _ time.Duration) {
	r.seen = append(r.seen, observation{method: method, route: route, code: code})
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	observer := &recordingObserver{}
	router := gin.New()
	router.Use(middleware.MetricsMiddleware(observer))
	router.GET("/items/:itemId", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	for _, path := range []string{"/items/42", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, observer.seen, 2)
	assert.Equal(t, observation{method: http.MethodGet, route: "/items/:itemId", code: http.StatusTeapot}, observer.seen[0])
	assert.Equal(t, observation{method: http.MethodGet, route: "unmatched", code: http.StatusNotFound}, observer.seen[1])
}
