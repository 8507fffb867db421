package impl

import (
	"context"
	"log/slog"

	"carecorner/config"
	domainerrors "carecorner/internal/domain/errors"
	"carecorner/internal/domain/repository"
	"carecorner/internal/domain/service"
	"carecorner/internal/usecase"

	"go.uber.org/fx"
)

const defaultPasswordColumnLength = 255

// credentialMigrator implements the CredentialMigrationUsecase interface.
type credentialMigrator struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	columnLength   int
	logger         *slog.Logger
}

// CredentialMigratorParams holds dependencies for the credential migrator, injected by Fx.
type CredentialMigratorParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCredentialMigrator is the constructor for credentialMigrator.
func NewCredentialMigrator(params CredentialMigratorParams) usecase.CredentialMigrationUsecase {
	columnLength := defaultPasswordColumnLength
	if params.Config != nil && params.Config.Migration != nil && params.Config.Migration.PasswordColumnLength > 0 {
		columnLength = params.Config.Migration.PasswordColumnLength
	}

	return &credentialMigrator{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		columnLength:   columnLength,
		logger:         params.Logger,
	}
}

// Migrate widens the password column if needed, then hashes every stored plaintext
// password in a single transaction. Empty passwords and hashing failures are skipped;
// a store failure rolls the whole batch back. A second run finds nothing to do.
func (m *credentialMigrator) Migrate(ctx context.Context) (*usecase.MigrationReport, error) {
	report := &usecase.MigrationReport{}

	widened, err := m.ensureColumnCapacity(ctx)
	if err != nil {
		return nil, domainerrors.ErrMigrationFailed.WithCause(err)
	}
	report.ColumnWidened = widened

	err = m.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.NewCredentialRepository()

		credentials, err := credentialRepo.FindUnhashed(ctx, m.hasher.RecognizedPrefixes())
		if err != nil {
			return err
		}
		report.Found = len(credentials)
		m.logger.Info("Found plaintext passwords", slog.Int("count", report.Found))

		for _, credential := range credentials {
			if credential.Password == "" {
				m.logger.Warn("Skipping user with empty password", slog.Int64("userID", credential.UserID))
				report.Skipped++

				continue
			}

			hash, err := m.hasher.Hash(credential.Password)
			if err != nil {
				m.logger.Error("Failed to hash password, skipping",
					slog.Int64("userID", credential.UserID), slog.Any("error", err))
				report.Skipped++

				continue
			}

			if err := credentialRepo.UpdatePassword(ctx, credential.UserID, hash); err != nil {
				return err
			}
			report.Migrated++
			m.logger.Debug("Password migrated", slog.Int64("userID", credential.UserID))
		}

		return nil
	})
	if err != nil {
		m.logger.Error("Credential migration rolled back", slog.Any("error", err))

		return nil, domainerrors.ErrMigrationFailed.WithCause(err)
	}

	m.logger.Info("Credential migration complete",
		slog.Int("found", report.Found),
		slog.Int("migrated", report.Migrated),
		slog.Int("skipped", report.Skipped),
	)

	return report, nil
}

// ensureColumnCapacity widens users.password when it is bounded below the target length.
// It runs outside the batch transaction so the schema change is committed on its own.
func (m *credentialMigrator) ensureColumnCapacity(ctx context.Context) (bool, error) {
	length, err := m.credentialRepo.PasswordColumnLength(ctx)
	if err != nil {
		return false, err
	}
	if length == 0 || length >= m.columnLength {
		return false, nil
	}

	if err := m.credentialRepo.WidenPasswordColumn(ctx, m.columnLength); err != nil {
		return false, err
	}
	m.logger.Info("Password column widened", slog.Int("from", length), slog.Int("to", m.columnLength))

	return true, nil
}
