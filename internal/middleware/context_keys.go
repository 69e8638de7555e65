package middleware

import (
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// participantKey is the key used to store the resolved participant reference
// in the Gin context. Using a custom type prevents collisions.
const participantKey = contextKey("participant")

// SetParticipantInContext stores the resolved participant reference for later
// handlers.
func SetParticipantInContext(c *gin.Context, ref domain.ParticipantRef) {
	c.Set(string(participantKey), ref)
}

// GetParticipantFromContext retrieves the resolved participant reference from
// the Gin context. It returns the reference and a boolean indicating if it was
// found.
func GetParticipantFromContext(c *gin.Context) (domain.ParticipantRef, bool) {
	val, exists := c.Get(string(participantKey))
	if !exists {
		return domain.ParticipantRef{}, false
	}

	ref, ok := val.(domain.ParticipantRef)
	if !ok {
		return domain.ParticipantRef{}, false
	}

	return ref, true
}
