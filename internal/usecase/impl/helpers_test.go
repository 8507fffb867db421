package impl

import (
	"io"
	"log/slog"

	"carecorner/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(passwordColumnLength int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Argon2: config.DefaultArgon2,
		},
		Migration: &config.MigrationConfig{
			PasswordColumnLength: passwordColumnLength,
		},
	}
}
