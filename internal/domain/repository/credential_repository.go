package repository

import (
	"context"

	"carecorner/internal/domain/entity"
)

// CredentialRepository covers the password column of the users table.
type CredentialRepository interface {
	// UpdatePassword replaces the stored hash of a user.
	UpdatePassword(ctx context.Context, userID int64, hash string) error

	// PasswordColumnLength returns the declared maximum length of the password column,
	// or 0 when the column is unbounded.
	PasswordColumnLength(ctx context.Context) (int, error)

	// WidenPasswordColumn alters the password column to VARCHAR(length).
	WidenPasswordColumn(ctx context.Context, length int) error

	// FindUnhashed returns every non-null password that starts with none of the given prefixes.
	FindUnhashed(ctx context.Context, hashPrefixes []string) ([]*entity.Credential, error)
}
