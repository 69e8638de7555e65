package mapping

import (
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	"github.com/gathr-app/gathr_backend/internal/models"
)

// ToDomainPost converts a model Post to a domain Post
func ToDomainPost(m models.Post) domain.Post {
	return domain.Post{
		PostID:    m.PostID,
		EventID:   m.EventID,
		Topic:     m.Topic,
		Author:    ToDomainParticipantRef(m.AuthorKind, m.AuthorID),
		CreatedAt: m.CreatedAt,
	}
}

// ToModelPost converts a domain Post to a model Post
func ToModelPost(d domain.Post) models.Post {
	return models.Post{
		PostID:     d.PostID,
		EventID:    d.EventID,
		Topic:      d.Topic,
		AuthorKind: models.ParticipantKind(d.Author.Kind),
		AuthorID:   d.Author.ID,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainComment converts a model Comment to a domain Comment
func ToDomainComment(m models.Comment) domain.Comment {
	return domain.Comment{
		CommentID: m.CommentID,
		PostID:    m.PostID,
		EventID:   m.EventID,
		Message:   m.Message,
		Author:    ToDomainParticipantRef(m.AuthorKind, m.AuthorID),
		CreatedAt: m.CreatedAt,
	}
}

// ToModelComment converts a domain Comment to a model Comment
func ToModelComment(d domain.Comment) models.Comment {
	return models.Comment{
		CommentID:  d.CommentID,
		PostID:     d.PostID,
		EventID:    d.EventID,
		Message:    d.Message,
		AuthorKind: models.ParticipantKind(d.Author.Kind),
		AuthorID:   d.Author.ID,
		CreatedAt:  d.CreatedAt,
	}
}
