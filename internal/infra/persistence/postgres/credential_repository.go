package postgres

import (
	"context"
	"fmt"

	"carecorner/internal/domain/entity"
	domainerrors "carecorner/internal/domain/errors"
	"carecorner/internal/domain/repository"
	"carecorner/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// UpdatePassword replaces the stored hash of a user.
func (repo *credentialRepository) UpdatePassword(ctx context.Context, userID int64, hash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("password", hash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// PasswordColumnLength reads the declared length of users.password from the catalog.
func (repo *credentialRepository) PasswordColumnLength(ctx context.Context) (int, error) {
	var length int64

	if err := repo.db.WithContext(ctx).
		Raw(`SELECT COALESCE(character_maximum_length, 0) FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name = ? AND column_name = ?`,
			model.UserModel{}.TableName(), "password").
		Scan(&length).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to read password column length")
	}

	return int(length), nil
}

// WidenPasswordColumn alters users.password to VARCHAR(length).
func (repo *credentialRepository) WidenPasswordColumn(ctx context.Context, length int) error {
	if length <= 0 {
		return errors.Errorf("invalid password column length %d", length)
	}

	stmt := fmt.Sprintf("ALTER TABLE %s ALTER COLUMN password TYPE VARCHAR(%d)", model.UserModel{}.TableName(), length)
	if err := repo.db.WithContext(ctx).Exec(stmt).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to widen password column")
	}

	return nil
}

// FindUnhashed returns every non-null password that starts with none of hashPrefixes.
func (repo *credentialRepository) FindUnhashed(ctx context.Context, hashPrefixes []string) ([]*entity.Credential, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("id", "password").
		Where("password IS NOT NULL")
	for _, prefix := range hashPrefixes {
		query = query.Where("password NOT LIKE ?", escapeLike(prefix)+"%")
	}

	var rows []model.UserModel
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find unhashed passwords")
	}

	credentials := make([]*entity.Credential, 0, len(rows))
	for _, row := range rows {
		credentials = append(credentials, &entity.Credential{
			UserID:   row.ID,
			Password: row.Password,
		})
	}

	return credentials, nil
}

// escapeLike escapes LIKE wildcards using PostgreSQL's default backslash escape.
func escapeLike(s string) string {
	var escaped []rune
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, r)
	}

	return string(escaped)
}
