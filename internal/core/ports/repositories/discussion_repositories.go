package repositories

import (
	"context"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
)

// DiscussionReader defines read operations for posts and comments
type DiscussionReader interface {
	// FindPostByID retrieves a post by its unique identifier.
	FindPostByID(ctx context.Context, postID string) (*domain.Post, error)

	// ListPostsByEvent retrieves all posts of an event, newest first.
	ListPostsByEvent(ctx context.Context, eventID string) ([]domain.Post, error)

	// ListCommentsByPost retrieves the comment thread of a post, oldest first.
	ListCommentsByPost(ctx context.Context, postID string) ([]domain.Comment, error)
}

// DiscussionWriter defines write operations for posts and comments
type DiscussionWriter interface {
	// SavePost persists a new post.
	SavePost(ctx context.Context, post domain.Post) error

	// SaveComment persists a new comment.
	SaveComment(ctx context.Context, comment domain.Comment) error
}

// DiscussionRepositoryFacade combines all discussion repository interfaces
type DiscussionRepositoryFacade interface {
	DiscussionReader
	DiscussionWriter
}
