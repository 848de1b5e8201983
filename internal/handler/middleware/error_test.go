//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	apitest "shareit/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	router.GET("/responded", func(c *gin.Context) {
		httperr.Respond(c, errs.NewConflict("email already registered"), "Failed to create user")
	})
	router.GET("/pushed", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusNotFound}
		resp.Error.Message = "Item not found"
		_ = c.Error(&gin.Error{Err: errs.NewNotFound("item"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	router.GET("/status-only", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/silent", func(c *gin.Context) {})
	router.GET("/panics", func(c *gin.Context) { panic("boom") })

	testCases := []struct {
		path       string
		expectCode int
		expectMsg  string
	}{
		{path: "/responded", expectCode: http.StatusConflict, expectMsg: "email already registered"},
		{path: "/pushed", expectCode: http.StatusNotFound, expectMsg: "Item not found"},
		{path: "/silent", expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		{path: "/panics", expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			apitest.AssertErrorResponse(t, rec, tc.expectCode, tc.expectMsg)
		})
	}

	t.Run("/status-only", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status-only", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
