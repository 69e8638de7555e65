package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	portsrepo "github.com/gathr-app/gathr_backend/internal/core/ports/repositories"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
	"github.com/gathr-app/gathr_backend/internal/dto"
	"github.com/gathr-app/gathr_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventHandler handles HTTP requests related to events and invitations.
type eventHandler struct {
	eventService    portssvc.EventSvcFacade
	scheduleService portssvc.ScheduleSvcFacade
}

// newEventHandler creates a new eventHandler.
func newEventHandler(es portssvc.EventSvcFacade, ss portssvc.ScheduleSvcFacade) *eventHandler {
	return &eventHandler{
		eventService:    es,
		scheduleService: ss,
	}
}

// registerEventRoutes registers routes related to events. Mutations are gated
// by the event-owner middleware; reads only need the event ID or a token.
func registerEventRoutes(
	rg *gin.RouterGroup,
	eventService portssvc.EventSvcFacade,
	scheduleService portssvc.ScheduleSvcFacade,
	eventRepo portsrepo.EventReader,
	userRepo portsrepo.UserReader,
) {
	h := newEventHandler(eventService, scheduleService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("/:eventID/info/:token", h.getEventInfo)
		events.GET("/:eventID/participants", h.listParticipants)
		events.GET("/:eventID/attendance", h.getAttendance)
		events.GET("/:eventID/favorite-dates", h.getFavoriteDates)

		owner := events.Group("/:eventID/owner/:userToken", middleware.RequireEventOwner(eventRepo, userRepo))
		{
			owner.PUT("", h.updateEvent)
			owner.POST("/guests", h.inviteGuest)
		}
	}
}

// createEvent godoc
// @Summary Create an event
// @Description Creates an event with its candidate dates
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.CreateEventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Creator not found"
// @Failure 500 {object} map[string]string "Failed to create event"
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Creator not found"})
			return
		}
		logger.Error("Failed to create event", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateEventResponse{
		EventID:    event.EventID,
		InviteLink: "/events/" + event.EventID,
	})
}

// getEventInfo godoc
// @Summary Get event details
// @Description Retrieves an event with its candidate dates; the view depends on who the token belongs to
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   token path string true "Access token"
// @Success 200 {object} dto.EventInfoResponse
// @Failure 403 {object} map[string]string "Token not allowed on this event"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to get event"
// @Router /events/{eventID}/info/{token} [get]
func (h *eventHandler) getEventInfo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	token := c.Param("token")

	info, err := h.eventService.GetEventInfo(c.Request.Context(), eventID, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token not allowed on this event"})
			return
		}
		logger.Error("Failed to get event info", slog.String("event_id", eventID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get event"})
		return
	}

	c.JSON(http.StatusOK, info)
}

// updateEvent godoc
// @Summary Update an event
// @Description Updates event fields and appends new candidate dates; only the creator may call this
// @Tags events
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   userToken path string true "Creator access token"
// @Param   event body dto.UpdateEventRequest true "Updated event details"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not the event creator"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to update event"
// @Router /events/{eventID}/owner/{userToken} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), eventID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		logger.Error("Failed to update event", slog.String("event_id", eventID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// inviteGuest godoc
// @Summary Invite a guest
// @Description Finds or creates the guest for the email and links it to the event; only the creator may call this
// @Tags events
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   userToken path string true "Creator access token"
// @Param   guest body dto.InviteGuestRequest true "Guest email"
// @Success 201 {object} dto.InviteGuestResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not the event creator"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to invite guest"
// @Router /events/{eventID}/owner/{userToken}/guests [post]
func (h *eventHandler) inviteGuest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	var req dto.InviteGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for InviteGuest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.eventService.InviteGuest(c.Request.Context(), eventID, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		logger.Error("Failed to invite guest", slog.String("event_id", eventID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to invite guest"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// listParticipants godoc
// @Summary List accepted participants
// @Description Returns the accepted roster: the creator first, then every guest whose invitation is accepted
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.ListParticipantsResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to list participants"
// @Router /events/{eventID}/participants [get]
func (h *eventHandler) listParticipants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	participants, err := h.eventService.ListAcceptedParticipants(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		logger.Error("Failed to list participants", slog.String("event_id", eventID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list participants"})
		return
	}

	out := make([]dto.ParticipantResponse, len(participants))
	for i, p := range participants {
		out[i] = dto.ParticipantResponse{ID: p.ID, Kind: string(p.Kind), Name: p.DisplayName}
	}
	c.JSON(http.StatusOK, dto.ListParticipantsResponse{Participants: out})
}

// getAttendance godoc
// @Summary Get attendance overview
// @Description Splits responded guests into those who can come and those who cannot, with their per-date answers
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to get attendance"
// @Router /events/{eventID}/attendance [get]
func (h *eventHandler) getAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	attendance, err := h.eventService.GetAttendance(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		logger.Error("Failed to get attendance", slog.String("event_id", eventID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get attendance"})
		return
	}

	c.JSON(http.StatusOK, attendance)
}

// getFavoriteDates godoc
// @Summary Get favorite dates
// @Description Returns the candidate date(s) tied at the maximum positive score; none=true when no date is favored yet
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.FavoriteDatesResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to get favorite dates"
// @Router /events/{eventID}/favorite-dates [get]
func (h *eventHandler) getFavoriteDates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	favorites, err := h.scheduleService.FavoriteDates(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		logger.Error("Failed to get favorite dates", slog.String("event_id", eventID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get favorite dates"})
		return
	}

	c.JSON(http.StatusOK, dto.FavoriteDatesResponse{
		Dates: dto.ToEventDateResponses(favorites),
		None:  len(favorites) == 0,
	})
}
