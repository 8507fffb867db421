// Command migrate brings the database schema up to date and hashes any
// plaintext passwords still stored in users.password. It is meant to run once,
// offline, before the server is started against an old database.
package main

import (
	"context"
	"flag"
	"log/slog"

	"carecorner/config"
	"carecorner/internal/infra/auth"
	logs "carecorner/internal/infra/log"
	"carecorner/internal/infra/persistence/postgres"
	"carecorner/internal/usecase"
	"carecorner/internal/usecase/impl"

	"go.uber.org/fx"
)

type options struct {
	schema      bool
	credentials bool
}

type runParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Options  options
	Migrator usecase.CredentialMigrationUsecase
	Logger   *slog.Logger
}

func main() {
	var opts options
	flag.BoolVar(&opts.schema, "schema", true, "apply pending schema migrations")
	flag.BoolVar(&opts.credentials, "credentials", true, "hash plaintext passwords")
	flag.Parse()

	fx.New(
		fx.Supply(opts),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewCredentialRepository,
			postgres.NewTransactionManager,
			auth.NewArgon2Hasher,
			impl.NewCredentialMigrator,
		),
		fx.Decorate(schemaMigration(opts.schema)),
		fx.Invoke(run),
	).Run()
}

// schemaMigration makes postgres.New apply the embedded schema migrations on
// start exactly when the -schema flag asks for it.
func schemaMigration(enabled bool) func(*config.Config) *config.Config {
	return func(cfg *config.Config) *config.Config {
		decorated := *cfg
		migration := config.MigrationConfig{}
		if cfg.Migration != nil {
			migration = *cfg.Migration
		}
		migration.ApplyOnStart = enabled
		decorated.Migration = &migration

		return &decorated
	}
}

func run(ctx context.Context, params runParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				if params.Options.credentials {
					exitCode = migrateCredentials(ctx, params.Migrator, params.Logger)
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shut down", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}

func migrateCredentials(ctx context.Context, migrator usecase.CredentialMigrationUsecase, logger *slog.Logger) int {
	report, err := migrator.Migrate(ctx)
	if err != nil {
		logger.Error("Credential migration failed", slog.Any("error", err))

		return 1
	}

	logger.Info("Credential migration finished",
		slog.Bool("columnWidened", report.ColumnWidened),
		slog.Int("found", report.Found),
		slog.Int("migrated", report.Migrated),
		slog.Int("skipped", report.Skipped),
	)

	return 0
}
