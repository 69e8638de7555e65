package services

import (
	"context"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
	"github.com/gathr-app/gathr_backend/internal/dto"
)

// DiscussionSvcFacade manages the per-event discussion feed.
type DiscussionSvcFacade interface {
	// CreatePost opens a topic on the event feed and notifies subscribers.
	CreatePost(ctx context.Context, eventID string, author domain.ParticipantRef, req dto.CreatePostRequest) (*domain.Post, error)

	// ListPosts lists the event's posts with resolved author names.
	ListPosts(ctx context.Context, eventID string) (*dto.ListPostsResponse, error)

	// CreateComment appends a message to a post's thread and notifies
	// subscribers.
	CreateComment(ctx context.Context, eventID, postID string, author domain.ParticipantRef, req dto.CreateCommentRequest) (*domain.Comment, error)

	// GetPostThread returns a post and its comments with resolved names.
	GetPostThread(ctx context.Context, eventID, postID string) (*dto.PostThreadResponse, error)
}
