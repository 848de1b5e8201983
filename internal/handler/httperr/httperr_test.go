//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: errs.NewNotFound("item not found"), want: http.StatusNotFound},
		{name: "bad request", err: errs.NewBadRequest("item unavailable"), want: http.StatusBadRequest},
		{name: "tagged validation error", err: errs.BadRequest(errors.New("empty name")), want: http.StatusBadRequest},
		{name: "conflict", err: errs.NewConflict("email already registered"), want: http.StatusConflict},
		{name: "wrapped not found", err: errs.Wrap(errs.NewNotFound("user not found"), "load"), want: http.StatusNotFound},
		{name: "unclassified", err: errors.New("connection reset"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httperr.StatusOf(tc.err))
		})
	}
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	decode := func(t *testing.T, w *httptest.ResponseRecorder) httperr.Response {
		var resp httperr.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}

	t.Run("client error keeps details", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		httperr.Respond(c, errs.NewNotFound("booking not found"), "Booking not available")

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "Booking not available", resp.Error.Message)
		assert.Equal(t, "booking not found", resp.Error.Details)
		assert.Len(t, c.Errors, 1)
	})

	t.Run("server error hides details", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		httperr.Respond(c, errors.New("pool exhausted"), "List bookings failed")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "Internal server error", resp.Error.Message)
		assert.Empty(t, resp.Error.Details)
	})
}
