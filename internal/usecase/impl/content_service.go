package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "carecorner/internal/delivery/context"
	"carecorner/internal/domain/entity"
	domainerrors "carecorner/internal/domain/errors"
	"carecorner/internal/domain/repository"
	"carecorner/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	logger    *slog.Logger
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	Logger    *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		logger:    params.Logger,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPosts returns every post newest first. Anonymous authors are masked.
func (srv *contentService) ListPosts(ctx context.Context) ([]*entity.PostSummary, error) {
	summaries, err := srv.postRepo.ListSummaries(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list posts", slog.Any("error", err))

		return nil, domainerrors.ErrFetchPostsFailed.WithCause(err)
	}

	for _, summary := range summaries {
		summary.Title = titleOrDefault(summary.Title)
		summary.AuthorName = summary.DisplayAuthor(summary.AuthorName)
	}

	return summaries, nil
}

// CreatePost validates and inserts a post. The store assigns its id and timestamp.
func (srv *contentService) CreatePost(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	if input == nil || isBlank(input.Category) || isBlank(input.Content) || input.AuthorID <= 0 {
		return nil, domainerrors.ErrValidationFailed
	}

	post := &entity.Post{
		Title:       titleOrDefault(input.Title),
		Category:    entity.Category(input.Category),
		Content:     input.Content,
		AuthorID:    input.AuthorID,
		IsAnonymous: input.IsAnonymous,
	}
	if !post.Category.IsKnown() {
		srv.log(ctx).Warn("Post filed under an unlisted category", slog.String("category", input.Category))
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewPostRepository().Create(ctx, post)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Int64("authorID", input.AuthorID), slog.Any("error", err))

		return nil, domainerrors.ErrCreatePostFailed.WithCause(err)
	}

	return post, nil
}

// GetPostDetail reads a post and its comments within one transaction.
// Comment authors are always shown as entity.AnonymousCommentAuthor.
func (srv *contentService) GetPostDetail(ctx context.Context, postID int64) (*entity.PostDetail, error) {
	if postID <= 0 {
		return nil, domainerrors.ErrPostNotFound
	}

	var detail *entity.PostDetail
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		post, err := repoFactory.NewPostRepository().FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound
			}

			return err
		}

		comments, err := repoFactory.NewCommentRepository().ListByPost(ctx, postID)
		if err != nil {
			return err
		}

		post.Comments = comments
		detail = post

		return nil
	})
	if err != nil {
		if !errors.Is(err, domainerrors.ErrPostNotFound) {
			srv.log(ctx).Error("Failed to fetch post detail", slog.Int64("postID", postID), slog.Any("error", err))
		}

		return nil, classify(err, domainerrors.ErrFetchPostFailed)
	}

	detail.Title = titleOrDefault(detail.Title)
	detail.AuthorName = detail.DisplayAuthor(detail.AuthorName)
	for _, comment := range detail.Comments {
		comment.AuthorName = entity.AnonymousCommentAuthor
	}

	return detail, nil
}

// DeletePost removes a post and its comments. Any caller may delete any post.
func (srv *contentService) DeletePost(ctx context.Context, postID int64) error {
	if postID <= 0 {
		return domainerrors.ErrPostNotFound
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPostRepository().Delete(ctx, postID); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound
			}

			return err
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, domainerrors.ErrPostNotFound) {
			srv.log(ctx).Error("Failed to delete post", slog.Int64("postID", postID), slog.Any("error", err))
		}

		return classify(err, domainerrors.ErrDeletePostFailed)
	}

	srv.log(ctx).Info("Post deleted", slog.Int64("postID", postID))

	return nil
}

// AddComment checks that the post exists and inserts the comment in the same transaction.
func (srv *contentService) AddComment(ctx context.Context, input *usecase.AddCommentInput) (*entity.Comment, error) {
	if input == nil || isBlank(input.Content) || input.AuthorID <= 0 {
		return nil, domainerrors.ErrValidationFailed
	}
	if input.PostID <= 0 {
		return nil, domainerrors.ErrPostNotFound
	}

	comment := &entity.Comment{
		PostID:   input.PostID,
		Content:  input.Content,
		AuthorID: input.AuthorID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		exists, err := repoFactory.NewPostRepository().Exists(ctx, input.PostID)
		if err != nil {
			return err
		}
		if !exists {
			return domainerrors.ErrPostNotFound
		}

		return repoFactory.NewCommentRepository().Create(ctx, comment)
	})
	if err != nil {
		if !errors.Is(err, domainerrors.ErrPostNotFound) {
			srv.log(ctx).Error("Failed to add comment", slog.Int64("postID", input.PostID), slog.Any("error", err))
		}

		return nil, classify(err, domainerrors.ErrAddCommentFailed)
	}

	comment.AuthorName = entity.AnonymousCommentAuthor

	return comment, nil
}

func titleOrDefault(title string) string {
	if strings.TrimSpace(title) == "" {
		return entity.DefaultPostTitle
	}

	return title
}
