package middleware

import (
	"errors"
	"net/http"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// AuthTokenHeader carries the caller's opaque access token.
const AuthTokenHeader = "X-Auth-Token"

// TokenAuth creates a Gin middleware that resolves the access token header to
// a participant reference and stores it in the context. Requests without a
// resolvable token are rejected.
func TokenAuth(identitySvc portssvc.IdentitySvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AuthTokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
			return
		}

		ref, err := identitySvc.ResolveToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, apperrors.ErrForbidden) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid access token"})
				return
			}
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to resolve access token", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve access token"})
			return
		}

		SetParticipantInContext(c, *ref)
		c.Next()
	}
}
