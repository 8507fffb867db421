package usecase

import "context"

// MigrationReport summarizes one run of the credential migrator.
type MigrationReport struct {
	ColumnWidened bool // users.password was altered to the target length
	Found         int  // rows whose password matched no recognized hash prefix
	Migrated      int  // rows rewritten with a fresh hash
	Skipped       int  // rows left untouched (empty password or hashing failure)
}

// CredentialMigrationUsecase converts plaintext passwords left from before hashing was introduced.
// It is an offline, single-instance job.
type CredentialMigrationUsecase interface {
	Migrate(ctx context.Context) (*MigrationReport, error)
}
