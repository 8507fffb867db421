package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"argon2": map[string]any{
				"saltLength": 16,
			},
		},
		"migration": map[string]any{
			"passwordColumnLength": 255,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_ARGON2_SALTLENGTH", want: "auth.argon2.saltLength"},
		{envKey: "MIGRATION_PASSWORDCOLUMNLENGTH", want: "migration.passwordColumnLength"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

type testConfig struct {
	HTTP struct {
		Port     int `yaml:"port"`
		Timeouts struct {
			ReadTimeout time.Duration `yaml:"readTimeout"`
		} `yaml:"timeouts"`
	} `yaml:"http"`
	Auth struct {
		Argon2 Argon2Config `yaml:"argon2"`
	} `yaml:"auth"`
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
http:
  port: 5000
  timeouts:
    readTimeout: 3s
auth:
  argon2:
    memory: 1024
    iterations: 1
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("AUTH_ARGON2_ITERATIONS", "7")

	cfg, err := LoadWithEnv[testConfig]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, uint32(1024), cfg.Auth.Argon2.Memory)
	assert.Equal(t, uint32(7), cfg.Auth.Argon2.Iterations)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[testConfig]("does-not-exist", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestArgon2Config_WithDefaults(t *testing.T) {
	got := Argon2Config{Memory: 2048}.withDefaults()

	assert.Equal(t, uint32(2048), got.Memory)
	assert.Equal(t, DefaultArgon2.Iterations, got.Iterations)
	assert.Equal(t, DefaultArgon2.Parallelism, got.Parallelism)
	assert.Equal(t, DefaultArgon2.SaltLength, got.SaltLength)
	assert.Equal(t, DefaultArgon2.KeyLength, got.KeyLength)
}

func TestReplicasFromEnv(t *testing.T) {
	vars := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		"POSTGRES_REPLICAS_2_HOST":     "no-port",
	}
	getenv := func(key string) string { return vars[key] }

	replicas := replicasFromEnv(getenv)

	require.Len(t, replicas, 2)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "5433", replicas[1].Port)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DefaultArgon2, cfg.Auth.Argon2)
	assert.Equal(t, defaultPasswordColumnLength, cfg.Migration.PasswordColumnLength)
}
