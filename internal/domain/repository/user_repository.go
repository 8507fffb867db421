// Package repository declares the storage ports the use cases depend on.
package repository

import (
	"context"
	"errors"

	"carecorner/internal/domain/entity"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

type UserRepository interface {
	// Create inserts user and fills in its ID. A taken email yields ErrDuplicateEmail.
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	// FindByEmail matches the email exactly, case included.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
