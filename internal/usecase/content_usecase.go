package usecase

import (
	"context"

	"carecorner/internal/domain/entity"
)

// CreatePostInput defines the data required to publish a post.
type CreatePostInput struct {
	Title       string
	Category    string
	Content     string
	AuthorID    int64
	IsAnonymous bool
}

// AddCommentInput defines the data required to comment on a post.
type AddCommentInput struct {
	PostID   int64
	Content  string
	AuthorID int64
}

// ContentUsecase defines the interface for post and comment operations.
// Every returned author name is already masked.
type ContentUsecase interface {
	// ListPosts returns all posts, newest first, each with its comment count.
	ListPosts(ctx context.Context) ([]*entity.PostSummary, error)

	// CreatePost publishes a post. A blank title becomes entity.DefaultPostTitle.
	CreatePost(ctx context.Context, input *CreatePostInput) (*entity.Post, error)

	// GetPostDetail returns a post with its comments, oldest first.
	GetPostDetail(ctx context.Context, postID int64) (*entity.PostDetail, error)

	// DeletePost removes a post and its comments. Ownership is not checked.
	DeletePost(ctx context.Context, postID int64) error

	// AddComment attaches a comment to an existing post.
	AddComment(ctx context.Context, input *AddCommentInput) (*entity.Comment, error)
}
