//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shareit/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequireIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	testCases := []struct {
		name       string
		header     string
		expectCode int
		expectID   uuid.UUID
	}{
		{name: "valid header", header: userID.String(), expectCode: http.StatusOK, expectID: userID},
		{name: "surrounding spaces", header: "  " + userID.String() + " ", expectCode: http.StatusOK, expectID: userID},
		{name: "missing header", header: "", expectCode: http.StatusBadRequest},
		{name: "malformed header", header: "1", expectCode: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var seen uuid.UUID
			router := gin.New()
			router.GET("/", middleware.RequireIdentity(), func(c *gin.Context) {
				seen, _ = middleware.GetUserID(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(middleware.HeaderUserID, tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectCode, w.Code)
			assert.Equal(t, tc.expectID, seen)
		})
	}
}

func TestGetUserID_NotSet(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	id, ok := middleware.GetUserID(c)

	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)
}
