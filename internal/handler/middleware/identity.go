package middleware

import (
	"net/http"
	"strings"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderUserID = "X-Sharer-User-Id"

	ctxUserIDKey = "user_id"
)

var (
	errMissingUserID = errs.NewBadRequest("missing " + HeaderUserID + " header")
	errInvalidUserID = errs.NewBadRequest("malformed " + HeaderUserID + " header")
)

// RequireIdentity resolves the caller from the X-Sharer-User-Id header.
// The header is trusted; existence of the user is checked by the use cases.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingUserID, "Caller identity required")
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrapf(errInvalidUserID, "%q: %v", raw, err), "Caller identity required")
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
