package repository

import (
	"context"

	"carecorner/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPostNotFound is returned when a post does not exist.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the interface for post-related database operations.
type PostRepository interface {
	// Create inserts a post and sets its ID and store-assigned timestamp.
	Create(ctx context.Context, post *entity.Post) error

	// ListSummaries returns every post with its author name and comment count, newest first.
	// Author names are returned unmasked.
	ListSummaries(ctx context.Context) ([]*entity.PostSummary, error)

	// FindByID returns a post with its author name (unmasked) and no comments.
	FindByID(ctx context.Context, id int64) (*entity.PostDetail, error)

	// Exists reports whether a post with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes a post and, through the schema, its comments.
	Delete(ctx context.Context, id int64) error
}

// CommentRepository defines the interface for comment-related database operations.
type CommentRepository interface {
	// Create inserts a comment and sets its ID and store-assigned timestamp.
	Create(ctx context.Context, comment *entity.Comment) error

	// ListByPost returns the comments of a post, oldest first.
	ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error)
}
