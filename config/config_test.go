package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvSeed, EnvLogLevel, EnvLogFile, EnvSound} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.NotZero(t, cfg.Seed)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.True(t, cfg.Sound)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, StderrLogFile)
	t.Setenv(EnvSound, "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, StderrLogFile, cfg.LogFile)
	assert.False(t, cfg.Sound)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSound, "true")

	path := filepath.Join(t.TempDir(), "game.env")
	content := "TETRIS_SEED=7\nTETRIS_LOG_LEVEL=warn\nTETRIS_SOUND=false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		os.Unsetenv(EnvSeed)
		os.Unsetenv(EnvLogLevel)
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
	assert.True(t, cfg.Sound, "environment wins over the file")
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvSeed, "soon"},
		{EnvLogLevel, "loud"},
		{EnvSound, "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	cfg := Config{LogLevel: zerolog.InfoLevel, LogFile: path}

	logger, closer, err := cfg.NewLogger()
	require.NoError(t, err)
	logger.Info().Str("game", "abc").Msg("game started")
	logger.Debug().Msg("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"game":"abc"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestLoadWithoutFiles(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "9")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Seed)
}
