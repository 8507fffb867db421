package repository

import "context"

// TransactionManager runs a unit of work atomically. Use cases depend on it
// instead of on a database driver.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back when fn returns an
	// error or panics. Repositories obtained from the factory share the
	// transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewCredentialRepository() CredentialRepository
	NewPostRepository() PostRepository
	NewCommentRepository() CommentRepository
}
