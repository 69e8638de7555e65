package models

import "time"

// Post maps to the posts table.
type Post struct {
	PostID     string
	EventID    string
	Topic      string
	AuthorKind ParticipantKind
	AuthorID   string
	CreatedAt  time.Time
}

// Comment maps to the comments table.
type Comment struct {
	CommentID  string
	PostID     string
	EventID    string
	Message    string
	AuthorKind ParticipantKind
	AuthorID   string
	CreatedAt  time.Time
}
