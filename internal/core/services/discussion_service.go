package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	portsrepo "github.com/gathr-app/gathr_backend/internal/core/ports/repositories"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
	"github.com/gathr-app/gathr_backend/internal/dto"
	"github.com/gathr-app/gathr_backend/internal/middleware"
)

// discussionService manages the per-event discussion feed and pushes a
// best-effort notification for every new post and comment.
type discussionService struct {
	eventRepo      portsrepo.EventRepositoryFacade
	invitationRepo portsrepo.InvitationRepositoryFacade
	discussionRepo portsrepo.DiscussionRepositoryFacade
	sink           portssvc.NotificationSink
}

// NewDiscussionService creates a new DiscussionService.
func NewDiscussionService(
	eventRepo portsrepo.EventRepositoryFacade,
	invitationRepo portsrepo.InvitationRepositoryFacade,
	discussionRepo portsrepo.DiscussionRepositoryFacade,
	sink portssvc.NotificationSink,
) portssvc.DiscussionSvcFacade {
	return &discussionService{
		eventRepo:      eventRepo,
		invitationRepo: invitationRepo,
		discussionRepo: discussionRepo,
		sink:           sink,
	}
}

var _ portssvc.DiscussionSvcFacade = (*discussionService)(nil)

// CreatePost opens a topic on the event feed and notifies subscribers.
func (s *discussionService) CreatePost(ctx context.Context, eventID string, author domain.ParticipantRef, req dto.CreatePostRequest) (*domain.Post, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	post := domain.Post{
		PostID:    uuid.NewString(),
		EventID:   eventID,
		Topic:     req.Topic,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.discussionRepo.SavePost(ctx, post); err != nil {
		logger.Error("Failed to save post", slog.String("event_id", eventID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save post: %w", err)
	}

	post.AuthorName, err = s.resolveAuthorName(ctx, event, author)
	if err != nil {
		return nil, err
	}

	s.sink.Publish(ctx, eventID, portssvc.Notification{
		Type:    "post.created",
		Payload: dto.ToPostResponse(post),
	})

	logger.Info("Post created", slog.String("event_id", eventID), slog.String("post_id", post.PostID))
	return &post, nil
}

// ListPosts lists the event's posts with resolved author names, newest first.
func (s *discussionService) ListPosts(ctx context.Context, eventID string) (*dto.ListPostsResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	posts, err := s.discussionRepo.ListPostsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for event %s: %w", eventID, err)
	}

	names, err := s.nameIndex(ctx, event)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		p.AuthorName = names[p.Author]
		out = append(out, dto.ToPostResponse(p))
	}
	return &dto.ListPostsResponse{Posts: out}, nil
}

// CreateComment appends a message to a post's thread and notifies subscribers.
func (s *discussionService) CreateComment(ctx context.Context, eventID, postID string, author domain.ParticipantRef, req dto.CreateCommentRequest) (*domain.Comment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	post, err := s.discussionRepo.FindPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to find post %s: %w", postID, err)
	}
	if post.EventID != eventID {
		return nil, fmt.Errorf("%w: post %s does not belong to event %s", apperrors.ErrNotFound, postID, eventID)
	}

	comment := domain.Comment{
		CommentID: uuid.NewString(),
		PostID:    postID,
		EventID:   eventID,
		Message:   req.Message,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.discussionRepo.SaveComment(ctx, comment); err != nil {
		logger.Error("Failed to save comment", slog.String("post_id", postID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	comment.AuthorName, err = s.resolveAuthorName(ctx, event, author)
	if err != nil {
		return nil, err
	}

	s.sink.Publish(ctx, eventID, portssvc.Notification{
		Type:    "comment.created",
		Payload: dto.ToCommentResponse(comment),
	})

	logger.Info("Comment created", slog.String("event_id", eventID), slog.String("post_id", postID), slog.String("comment_id", comment.CommentID))
	return &comment, nil
}

// GetPostThread returns a post and its comments with resolved author names.
func (s *discussionService) GetPostThread(ctx context.Context, eventID, postID string) (*dto.PostThreadResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	post, err := s.discussionRepo.FindPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to find post %s: %w", postID, err)
	}
	if post.EventID != eventID {
		return nil, fmt.Errorf("%w: post %s does not belong to event %s", apperrors.ErrNotFound, postID, eventID)
	}

	comments, err := s.discussionRepo.ListCommentsByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for post %s: %w", postID, err)
	}

	names, err := s.nameIndex(ctx, event)
	if err != nil {
		return nil, err
	}

	post.AuthorName = names[post.Author]
	out := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		c.AuthorName = names[c.Author]
		out = append(out, dto.ToCommentResponse(c))
	}

	thread := dto.ToPostResponse(*post)
	return &dto.PostThreadResponse{Post: thread, Comments: out}, nil
}

func (s *discussionService) nameIndex(ctx context.Context, event *domain.Event) (map[domain.ParticipantRef]string, error) {
	invitations, err := s.invitationRepo.ListInvitationsByEvent(ctx, event.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations for event %s: %w", event.EventID, err)
	}
	return buildNameIndex(event, invitations), nil
}

func (s *discussionService) resolveAuthorName(ctx context.Context, event *domain.Event, author domain.ParticipantRef) (string, error) {
	names, err := s.nameIndex(ctx, event)
	if err != nil {
		return "", err
	}
	return names[author], nil
}
