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

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService  portssvc.UserSvcFacade
	eventService portssvc.EventSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, es portssvc.EventSvcFacade) *userHandler {
	return &userHandler{
		userService:  us,
		eventService: es,
	}
}

// registerUserRoutes registers routes related to users.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, eventService portssvc.EventSvcFacade) {
	h := newUserHandler(userService, eventService)

	users := rg.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("/:email/events", h.listEventsForEmail)
	}
}

// createUser godoc
// @Summary Create or look up a user
// @Description Finds or creates the user for the given email and returns its access token
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User email"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create user"
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// listEventsForEmail godoc
// @Summary List events for an email
// @Description Lists the events the email created and the ones it is invited to, with access tokens
// @Tags users
// @Produce  json
// @Param   email path string true "Email address"
// @Success 200 {object} dto.ListEventsResponse
// @Failure 500 {object} map[string]string "Failed to list events"
// @Router /users/{email}/events [get]
func (h *userHandler) listEventsForEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	email := c.Param("email")

	resp, err := h.eventService.ListEventsForEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
			return
		}
		logger.Error("Failed to list events for email", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
