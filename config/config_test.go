package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kochabx/restkit/log"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func logFile(t *testing.T) log.FileConfig {
	t.Helper()
	return log.FileConfig{Filepath: t.TempDir(), Filename: "dispatch"}
}

func TestLoadDispatcher(t *testing.T) {
	path := writeFile(t, "restkit.yaml", `
base_url: https://api.example.com
user_agent: turboself/2.0
headers:
  X-Tenant: acme
log:
  level: debug
`)

	cfg, err := LoadDispatcher(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, "turboself/2.0", cfg.UserAgent)
	assert.Equal(t, "acme", cfg.Headers["x-tenant"], "viper lowercases map keys")
	assert.False(t, cfg.Tracing)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Log.Output)
}

func TestLoadDispatcherJSON(t *testing.T) {
	path := writeFile(t, "restkit.json", `{"base_url":"http://localhost:8080","tracing":true}`)

	cfg, err := LoadDispatcher(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.True(t, cfg.Tracing)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("BASE_URL", "https://staging.example.com")
	t.Setenv("LOG_LEVEL", "warn")

	path := writeFile(t, "restkit.yaml", "base_url: https://api.example.com\n")

	cfg, err := LoadDispatcher(path)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", cfg.BaseURL)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing base url", "user_agent: x\n"},
		{"invalid base url", "base_url: not a url\n"},
		{"unknown log output", "base_url: https://api.example.com\nlog:\n  output: syslog\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDispatcher(writeFile(t, "restkit.yaml", tt.content))
			assert.Error(t, err)
		})
	}
}

func TestMissingFile(t *testing.T) {
	_, err := LoadDispatcher(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLogConfigLogger(t *testing.T) {
	logger, err := LogConfig{}.Logger()
	require.NoError(t, err)
	assert.NotNil(t, logger)

	logger, err = LogConfig{Output: "console", Level: "debug"}.Logger()
	require.NoError(t, err)
	logger.Debug().Msg("console logger")

	logger, err = LogConfig{Output: "file", File: logFile(t)}.Logger()
	require.NoError(t, err)
	logger.Info().Msg("file logger")
	assert.NoError(t, logger.Close())

	_, err = LogConfig{Level: "loud"}.Logger()
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	path := writeFile(t, "restkit.yaml", "base_url: https://api.example.com\n")

	changed := make(chan struct{}, 1)
	cfg := new(DispatcherConfig)
	c := New(cfg, WithFile(path), WithOnChange(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))

	require.NoError(t, c.Load())
	require.NoError(t, c.Watch())

	require.NoError(t, os.WriteFile(path, []byte("base_url: https://v2.example.com\n"), 0o644))

	select {
	case <-changed:
		c.Read(func(target any) {
			assert.Equal(t, "https://v2.example.com", target.(*DispatcherConfig).BaseURL)
		})
	case <-time.After(5 * time.Second):
		t.Skip("no file change notification on this platform")
	}
}
