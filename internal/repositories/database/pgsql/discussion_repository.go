package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	portsrepo "github.com/gathr-app/gathr_backend/internal/core/ports/repositories"
	"github.com/gathr-app/gathr_backend/internal/models"
	"github.com/gathr-app/gathr_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDiscussionRepository struct {
	BaseRepository
}

// newPgxDiscussionRepository creates a new repository for posts and comments.
func newPgxDiscussionRepository(pool *pgxpool.Pool) portsrepo.DiscussionRepositoryFacade {
	return &PgxDiscussionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DiscussionRepositoryFacade = (*PgxDiscussionRepository)(nil)

// FindPostByID retrieves a post by its unique identifier.
func (r *PgxDiscussionRepository) FindPostByID(ctx context.Context, postID string) (*domain.Post, error) {
	query := `
		SELECT post_id, event_id, topic, author_kind, author_id, created_at
		FROM posts
		WHERE post_id = $1;
	`
	var m models.Post
	err := r.Pool.QueryRow(ctx, query, postID).Scan(
		&m.PostID,
		&m.EventID,
		&m.Topic,
		&m.AuthorKind,
		&m.AuthorID,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post %s: %w", postID, err)
	}

	post := mapping.ToDomainPost(m)
	return &post, nil
}

// ListPostsByEvent retrieves all posts of an event, newest first.
func (r *PgxDiscussionRepository) ListPostsByEvent(ctx context.Context, eventID string) ([]domain.Post, error) {
	query := `
		SELECT post_id, event_id, topic, author_kind, author_id, created_at
		FROM posts
		WHERE event_id = $1
		ORDER BY created_at DESC, post_id;
	`
	rows, err := r.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	modelPosts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Post, error) {
		var m models.Post
		err := row.Scan(&m.PostID, &m.EventID, &m.Topic, &m.AuthorKind, &m.AuthorID, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan posts: %w", err)
	}

	out := make([]domain.Post, len(modelPosts))
	for i, m := range modelPosts {
		out[i] = mapping.ToDomainPost(m)
	}
	return out, nil
}

// ListCommentsByPost retrieves the comment thread of a post, oldest first.
func (r *PgxDiscussionRepository) ListCommentsByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	query := `
		SELECT comment_id, post_id, event_id, message, author_kind, author_id, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at, comment_id;
	`
	rows, err := r.Pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	modelComments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Comment, error) {
		var m models.Comment
		err := row.Scan(&m.CommentID, &m.PostID, &m.EventID, &m.Message, &m.AuthorKind, &m.AuthorID, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan comments: %w", err)
	}

	out := make([]domain.Comment, len(modelComments))
	for i, m := range modelComments {
		out[i] = mapping.ToDomainComment(m)
	}
	return out, nil
}

// SavePost persists a new post.
func (r *PgxDiscussionRepository) SavePost(ctx context.Context, post domain.Post) error {
	m := mapping.ToModelPost(post)

	query := `
		INSERT INTO posts (post_id, event_id, topic, author_kind, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.PostID, m.EventID, m.Topic, m.AuthorKind, m.AuthorID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save post %s: %w", m.PostID, err)
	}
	return nil
}

// SaveComment persists a new comment.
func (r *PgxDiscussionRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	m := mapping.ToModelComment(comment)

	query := `
		INSERT INTO comments (comment_id, post_id, event_id, message, author_kind, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, m.CommentID, m.PostID, m.EventID, m.Message, m.AuthorKind, m.AuthorID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save comment %s: %w", m.CommentID, err)
	}
	return nil
}
