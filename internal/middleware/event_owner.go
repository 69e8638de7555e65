package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	portsrepo "github.com/gathr-app/gathr_backend/internal/core/ports/repositories"
	"github.com/gin-gonic/gin"
)

// RequireEventOwner creates a Gin middleware that only lets the creator of
// the event in the eventID path parameter through. The caller identifies
// itself with the userToken path parameter.
func RequireEventOwner(eventRepo portsrepo.EventReader, userRepo portsrepo.UserReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		eventID := c.Param("eventID")
		userToken := c.Param("userToken")

		if eventID == "" || userToken == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing eventID or userToken"})
			return
		}

		event, err := eventRepo.FindEventByID(c.Request.Context(), eventID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Event not found"})
				return
			}
			logger.Error("Failed to load event for ownership check", slog.String("event_id", eventID), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check permissions"})
			return
		}

		user, err := userRepo.FindUserByToken(c.Request.Context(), userToken)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			logger.Error("Failed to resolve user token for ownership check", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check permissions"})
			return
		}

		if event.CreatorUserID != user.UserID {
			logger.Warn("Non-owner attempted event mutation", slog.String("event_id", eventID), slog.String("user_id", user.UserID))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to modify this event"})
			return
		}

		c.Next()
	}
}
