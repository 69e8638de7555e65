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

// discussionHandler handles HTTP requests for the per-event discussion feed.
type discussionHandler struct {
	discussionService portssvc.DiscussionSvcFacade
}

// newDiscussionHandler creates a new discussionHandler.
func newDiscussionHandler(ds portssvc.DiscussionSvcFacade) *discussionHandler {
	return &discussionHandler{discussionService: ds}
}

// registerDiscussionRoutes registers the discussion feed routes. Writing
// needs the caller's access token; reading is open to anyone with the link.
func registerDiscussionRoutes(
	rg *gin.RouterGroup,
	discussionService portssvc.DiscussionSvcFacade,
	identityService portssvc.IdentitySvcFacade,
) {
	h := newDiscussionHandler(discussionService)

	posts := rg.Group("/events/:eventID/posts")
	{
		posts.GET("", h.listPosts)
		posts.GET("/:postID", h.getPostThread)

		authed := posts.Group("", middleware.TokenAuth(identityService))
		{
			authed.POST("", h.createPost)
			authed.POST("/:postID/comments", h.createComment)
		}
	}
}

// createPost godoc
// @Summary Open a discussion topic
// @Description Creates a post on the event feed authored by the token holder
// @Tags discussion
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   X-Auth-Token header string true "Access token"
// @Param   post body dto.CreatePostRequest true "Post topic"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to create post"
// @Router /events/{eventID}/posts [post]
func (h *discussionHandler) createPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	author, ok := middleware.GetParticipantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePost", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	post, err := h.discussionService.CreatePost(c.Request.Context(), eventID, author, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		logger.Error("Failed to create post", slog.String("event_id", eventID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostResponse(*post))
}

// listPosts godoc
// @Summary List posts
// @Description Lists the event's posts with resolved author names, newest first
// @Tags discussion
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.ListPostsResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to list posts"
// @Router /events/{eventID}/posts [get]
func (h *discussionHandler) listPosts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	resp, err := h.discussionService.ListPosts(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		logger.Error("Failed to list posts", slog.String("event_id", eventID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// createComment godoc
// @Summary Comment on a post
// @Description Appends a message to the post's thread authored by the token holder
// @Tags discussion
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   postID path string true "Post ID"
// @Param   X-Auth-Token header string true "Access token"
// @Param   comment body dto.CreateCommentRequest true "Comment message"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 404 {object} map[string]string "Event or post not found"
// @Failure 500 {object} map[string]string "Failed to create comment"
// @Router /events/{eventID}/posts/{postID}/comments [post]
func (h *discussionHandler) createComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	postID := c.Param("postID")

	author, ok := middleware.GetParticipantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateComment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	comment, err := h.discussionService.CreateComment(c.Request.Context(), eventID, postID, author, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event or post not found"})
			return
		}
		logger.Error("Failed to create comment", slog.String("post_id", postID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(*comment))
}

// getPostThread godoc
// @Summary Get a post thread
// @Description Returns the post and its comment thread with resolved author names
// @Tags discussion
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   postID path string true "Post ID"
// @Success 200 {object} dto.PostThreadResponse
// @Failure 404 {object} map[string]string "Event or post not found"
// @Failure 500 {object} map[string]string "Failed to get post thread"
// @Router /events/{eventID}/posts/{postID} [get]
func (h *discussionHandler) getPostThread(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	postID := c.Param("postID")

	thread, err := h.discussionService.GetPostThread(c.Request.Context(), eventID, postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event or post not found"})
			return
		}
		logger.Error("Failed to get post thread", slog.String("post_id", postID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get post thread"})
		return
	}

	c.JSON(http.StatusOK, thread)
}
