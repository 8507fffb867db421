package postgres

import (
	"context"

	"carecorner/internal/domain/entity"
	domainerrors "carecorner/internal/domain/errors"
	"carecorner/internal/domain/repository"
	"carecorner/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const postColumns = "p.id, p.title, p.category, p.content, p.timestamp, p.author_id, p.is_anonymous, " +
	"COALESCE(u.name, '') AS author_name"

// postRepository implements the repository.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{
		db: db,
	}
}

// Create inserts a post. The database assigns id and timestamp, which are read back via RETURNING.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create post: "+describeConstraintViolation(err))
	}

	post.ID = postM.ID
	post.Timestamp = postM.Timestamp

	return nil
}

// ListSummaries returns every post with its author and comment count, newest first.
// Rows are streamed and mapped in a single pass.
func (repo *postRepository) ListSummaries(ctx context.Context) ([]*entity.PostSummary, error) {
	db := repo.db.WithContext(ctx)

	rows, err := db.
		Table("posts AS p").
		Select(postColumns + ", COUNT(c.id) AS comment_count").
		Joins("LEFT JOIN users u ON u.id = p.author_id").
		Joins("LEFT JOIN comments c ON c.post_id = p.id").
		Group("p.id, u.name").
		Order("p.timestamp DESC, p.id DESC").
		Rows()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list posts")
	}
	defer rows.Close()

	summaries := make([]*entity.PostSummary, 0)
	for rows.Next() {
		var row model.PostSummaryRow
		if err := db.ScanRows(rows, &row); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to scan post")
		}
		summaries = append(summaries, toPostSummaryDomain(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to iterate posts")
	}

	return summaries, nil
}

// FindByID returns a post joined with its author, without comments.
func (repo *postRepository) FindByID(ctx context.Context, id int64) (*entity.PostDetail, error) {
	var row model.PostDetailRow

	if err := repo.db.WithContext(ctx).
		Table("posts AS p").
		Select(postColumns).
		Joins("LEFT JOIN users u ON u.id = p.author_id").
		Where("p.id = ?", id).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDetailDomain(&row), nil
}

// Exists reports whether a post with the given ID exists.
func (repo *postRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check post existence")
	}

	return count > 0, nil
}

// Delete removes a post. Comments are removed by the ON DELETE CASCADE constraint.
func (repo *postRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func fromPostDomain(post *entity.Post) *model.PostModel {
	return &model.PostModel{
		ID:          post.ID,
		Title:       post.Title,
		Category:    string(post.Category),
		Content:     post.Content,
		Timestamp:   post.Timestamp,
		AuthorID:    post.AuthorID,
		IsAnonymous: post.IsAnonymous,
	}
}

func toPostSummaryDomain(row *model.PostSummaryRow) *entity.PostSummary {
	return &entity.PostSummary{
		Post: entity.Post{
			ID:          row.ID,
			Title:       row.Title,
			Category:    entity.Category(row.Category),
			Content:     row.Content,
			Timestamp:   row.Timestamp,
			AuthorID:    row.AuthorID,
			IsAnonymous: row.IsAnonymous,
		},
		AuthorName:   row.AuthorName,
		CommentCount: row.CommentCount,
	}
}

func toPostDetailDomain(row *model.PostDetailRow) *entity.PostDetail {
	return &entity.PostDetail{
		Post: entity.Post{
			ID:          row.ID,
			Title:       row.Title,
			Category:    entity.Category(row.Category),
			Content:     row.Content,
			Timestamp:   row.Timestamp,
			AuthorID:    row.AuthorID,
			IsAnonymous: row.IsAnonymous,
		},
		AuthorName: row.AuthorName,
	}
}
