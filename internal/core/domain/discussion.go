package domain

import "time"

// Post is a discussion topic opened on an event's feed.
type Post struct {
	PostID     string         `json:"postID"`
	EventID    string         `json:"eventID"`
	Topic      string         `json:"topic"`
	Author     ParticipantRef `json:"author"`
	AuthorName string         `json:"authorName,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// Comment is a single message in the thread under a post.
type Comment struct {
	CommentID  string         `json:"commentID"`
	PostID     string         `json:"postID"`
	EventID    string         `json:"eventID"`
	Message    string         `json:"message"`
	Author     ParticipantRef `json:"author"`
	AuthorName string         `json:"authorName,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}
