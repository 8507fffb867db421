package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"carecorner/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"Warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}

	for input, want := range tests {
		got, err := parseLogLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParseLogLevel_Unknown(t *testing.T) {
	level, err := parseLogLevel("verbose")
	assert.EqualError(t, err, `unknown log level: "verbose"`)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestNew_Level(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "warn"

	logger, err := New(Params{Config: cfg, Output: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))

	cfg.Env.Log.Level = "loud"
	_, err = New(Params{Config: cfg})
	assert.Error(t, err)
}

func TestNew_JSONWithServiceAttrs(t *testing.T) {
	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.ServiceName = "carecorner"
	cfg.Env.Env = "staging"

	logger, err := New(Params{Config: cfg, Output: &out})
	require.NoError(t, err)
	logger.Info("ready", slog.Int("port", 5000))

	var record map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Equal(t, "ready", record["msg"])
	assert.Equal(t, "carecorner", record["service"])
	assert.Equal(t, "staging", record["env"])
	assert.EqualValues(t, 5000, record["port"])
}

func TestNew_Pretty(t *testing.T) {
	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true

	logger, err := New(Params{Config: cfg, Output: &out})
	require.NoError(t, err)
	logger.Info("ready")

	assert.Contains(t, out.String(), "msg=ready")
	assert.NotContains(t, out.String(), "service=")
}
