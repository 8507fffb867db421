package postgres

import (
	"context"

	"carecorner/internal/domain/entity"
	domainerrors "carecorner/internal/domain/errors"
	"carecorner/internal/domain/repository"
	"carecorner/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

// Create inserts a comment and reads back its id and timestamp.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		PostID:   comment.PostID,
		Content:  comment.Content,
		AuthorID: comment.AuthorID,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "comment references a missing post or author")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.Timestamp = commentM.Timestamp

	return nil
}

// ListByPost returns the comments of a post, oldest first.
func (repo *commentRepository) ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel

	if err := repo.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("timestamp ASC, id ASC").
		Find(&commentModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, &entity.Comment{
			ID:        commentM.ID,
			PostID:    commentM.PostID,
			Content:   commentM.Content,
			Timestamp: commentM.Timestamp,
			AuthorID:  commentM.AuthorID,
		})
	}

	return comments, nil
}
