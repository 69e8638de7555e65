package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
	"github.com/gathr-app/gathr_backend/internal/dto"
	"github.com/gathr-app/gathr_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// guestHandler handles HTTP requests made by invited guests.
type guestHandler struct {
	scheduleService portssvc.ScheduleSvcFacade
}

// newGuestHandler creates a new guestHandler.
func newGuestHandler(ss portssvc.ScheduleSvcFacade) *guestHandler {
	return &guestHandler{scheduleService: ss}
}

// registerGuestRoutes registers the guest response routes. Guests identify
// themselves with the token from their invite link.
func registerGuestRoutes(rg *gin.RouterGroup, scheduleService portssvc.ScheduleSvcFacade) {
	h := newGuestHandler(scheduleService)

	guests := rg.Group("/events/:eventID/guests/:guestToken")
	{
		guests.PUT("/responses", h.recordResponses)
		guests.GET("/responses", h.getResponses)
	}
}

// recordResponses godoc
// @Summary Record a guest's responses
// @Description Stores the guest's overall answer and per-date responses, then rescores the candidate dates
// @Tags guests
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   guestToken path string true "Guest access token"
// @Param   responses body dto.RecordResponsesRequest true "Overall answer and per-date responses"
// @Success 200 {object} dto.InvitationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Event, guest or date not found"
// @Failure 500 {object} map[string]string "Failed to record responses"
// @Router /events/{eventID}/guests/{guestToken}/responses [put]
func (h *guestHandler) recordResponses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	guestToken := c.Param("guestToken")

	var req dto.RecordResponsesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordResponses", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	invitation, err := h.scheduleService.RecordResponses(c.Request.Context(), eventID, guestToken, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event, guest or date not found"})
			return
		}
		if errors.Is(err, apperrors.ErrRecomputeFailed) {
			logger.Error("Date rescore failed after recording responses", slog.String("event_id", eventID), slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": "Responses saved but rescoring failed, please retry"})
			return
		}
		logger.Error("Failed to record responses", slog.String("event_id", eventID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record responses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationResponse(invitation))
}

// getResponses godoc
// @Summary Get a guest's responses
// @Description Returns the guest's recorded overall answer and per-date responses for the event
// @Tags guests
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   guestToken path string true "Guest access token"
// @Success 200 {object} dto.GuestResponsesResponse
// @Failure 404 {object} map[string]string "Event or guest not found"
// @Failure 500 {object} map[string]string "Failed to get responses"
// @Router /events/{eventID}/guests/{guestToken}/responses [get]
func (h *guestHandler) getResponses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	guestToken := c.Param("guestToken")

	resp, err := h.scheduleService.GetResponses(c.Request.Context(), eventID, guestToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event or guest not found"})
			return
		}
		logger.Error("Failed to get responses", slog.String("event_id", eventID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get responses"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
