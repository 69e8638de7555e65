package dto

import (
	"time"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
)

// CreatePostRequest opens a new discussion topic on an event.
type CreatePostRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// CreateCommentRequest adds a message to a post's thread.
type CreateCommentRequest struct {
	Message string `json:"message" binding:"required"`
}

// PostResponse is a post with its author's display name.
type PostResponse struct {
	PostID     string    `json:"postID"`
	Topic      string    `json:"topic"`
	AuthorKind string    `json:"authorKind"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CommentResponse is a comment with its author's display name.
type CommentResponse struct {
	CommentID  string    `json:"commentID"`
	Message    string    `json:"message"`
	AuthorKind string    `json:"authorKind"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ListPostsResponse lists the posts of an event.
type ListPostsResponse struct {
	Posts []PostResponse `json:"posts"`
}

// PostThreadResponse is a post together with its comment thread.
type PostThreadResponse struct {
	Post     PostResponse      `json:"post"`
	Comments []CommentResponse `json:"comments"`
}

// ToPostResponse converts a domain Post to a PostResponse
func ToPostResponse(p domain.Post) PostResponse {
	return PostResponse{
		PostID:     p.PostID,
		Topic:      p.Topic,
		AuthorKind: string(p.Author.Kind),
		AuthorName: p.AuthorName,
		CreatedAt:  p.CreatedAt,
	}
}

// ToCommentResponse converts a domain Comment to a CommentResponse
func ToCommentResponse(c domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID:  c.CommentID,
		Message:    c.Message,
		AuthorKind: string(c.Author.Kind),
		AuthorName: c.AuthorName,
		CreatedAt:  c.CreatedAt,
	}
}
