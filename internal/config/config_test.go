package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBotToken = "123456789:ABC-DEF1234ghIkl-zyx57W2v1u123ew11"

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// =============================================================================
// Helpers
// =============================================================================

func TestNormalizeEnvKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"PROBE_DEBUG", "debug"},
		{"PROBE_POLLER__MAX_WAIT", "poller.max_wait"},
		{"PROBE_STATUS_API__LISTEN_PORT", "status_api.listen_port"},
		{"PROBE_STATUS_API__CORS__ALLOW_ORIGINS", "status_api.cors.allow_origins"},
		{"PROBE_Mixed_Case__Key", "mixed_case.key"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeEnvKey(tt.input), "Input: %s", tt.input)
	}
}

func TestNewDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := newDefaultConfig()

	assert.False(t, cfg.Debug)
	assert.Equal(t, 10*time.Second, cfg.Poller.HealthTimeout)
	assert.Equal(t, 5*time.Second, cfg.Poller.ReadyTimeout)
	assert.Equal(t, 60*time.Second, cfg.Poller.MaxWait)
	assert.Equal(t, 2*time.Second, cfg.Poller.PollInterval)
	assert.Equal(t, DefaultListenPort, cfg.StatusAPI.ListenPort)
	assert.Equal(t, []string{"*"}, cfg.StatusAPI.CORS.AllowOrigins)
	assert.Equal(t, DefaultStorageDir, cfg.Storage.Dir)
	assert.Empty(t, cfg.Targets)
}

// =============================================================================
// LoadWithFile
// =============================================================================

func TestLoadWithFile_MinimalUsesDefaults(t *testing.T) {
	path := writeConfigFile(t, `{
		"targets": [
			{"id": "agileflow", "base_url": "http://localhost:8080", "schedule": "@every 30s"}
		]
	}`)

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, newDefaultConfig().Poller, cfg.Poller)
	assert.Equal(t, DefaultListenPort, cfg.StatusAPI.ListenPort)
	require.Len(t, cfg.Targets, 1)
	assert.Equal(t, "agileflow", cfg.Targets[0].DisplayName())
	assert.False(t, cfg.Targets[0].Notify)
}

func TestLoadWithFile_Full(t *testing.T) {
	path := writeConfigFile(t, `{
		"debug": true,
		"poller": {"health_timeout": "3s", "ready_timeout": "2s", "max_wait": "90s", "poll_interval": "500ms"},
		"targets": [
			{"id": "prod", "title": "AgileFlow 운영", "base_url": "https://agileflow.example.com", "schedule": "0 */1 * * * *", "notify": true},
			{"id": "stage", "base_url": "http://stage:8080", "schedule": "@every 1m", "notify": true, "notifier_id": "ops"}
		],
		"notifiers": {
			"default_notifier_id": "dev",
			"telegrams": [
				{"id": "dev", "bot_token": "`+validBotToken+`", "chat_id": 1},
				{"id": "ops", "bot_token": "`+validBotToken+`", "chat_id": 2}
			]
		},
		"status_api": {"listen_port": 9090, "cors": {"allow_origins": ["https://dash.example.com"]}},
		"storage": {"dir": "/var/lib/agileflow-probe"}
	}`)

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 3*time.Second, cfg.Poller.HealthTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Poller.PollInterval)
	assert.Equal(t, "AgileFlow 운영", cfg.Targets[0].DisplayName())
	assert.Equal(t, "ops", cfg.Targets[1].NotifierID)
	assert.Len(t, cfg.Notifiers.Telegrams, 2)
	assert.Equal(t, 9090, cfg.StatusAPI.ListenPort)
	assert.Equal(t, []string{"https://dash.example.com"}, cfg.StatusAPI.CORS.AllowOrigins)
	assert.Equal(t, "/var/lib/agileflow-probe", cfg.Storage.Dir)

	assert.Len(t, cfg.VerifyRecommendations(), 1, "짧은 점검 간격 경고만 있어야 합니다")
}

func TestLoadWithFile_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `{
		"poller": {"max_wait": "30s"},
		"targets": [{"id": "a", "base_url": "http://localhost:8080", "schedule": "@every 30s"}]
	}`)

	t.Setenv("PROBE_DEBUG", "true")
	t.Setenv("PROBE_POLLER__MAX_WAIT", "2m")
	t.Setenv("PROBE_STATUS_API__LISTEN_PORT", "8088")
	t.Setenv("PROBE_STATUS_API__CORS__ALLOW_ORIGINS", "http://localhost:3000,https://dash.example.com")

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 2*time.Minute, cfg.Poller.MaxWait)
	assert.Equal(t, 8088, cfg.StatusAPI.ListenPort)
	assert.Equal(t, []string{"http://localhost:3000", "https://dash.example.com"}, cfg.StatusAPI.CORS.AllowOrigins)
}

func TestLoadWithFile_Errors(t *testing.T) {
	t.Run("File Not Found", func(t *testing.T) {
		_, err := LoadWithFile(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.NotFound))
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := LoadWithFile(writeConfigFile(t, `{"targets": [`))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})

	t.Run("Unknown Key", func(t *testing.T) {
		_, err := LoadWithFile(writeConfigFile(t, `{
			"targets": [{"id": "a", "base_url": "http://localhost:8080", "schedule": "@every 30s"}],
			"unknown_section": {"x": 1}
		}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown_section")
	})

	t.Run("Invalid Duration", func(t *testing.T) {
		_, err := LoadWithFile(writeConfigFile(t, `{
			"poller": {"max_wait": "soon"},
			"targets": [{"id": "a", "base_url": "http://localhost:8080", "schedule": "@every 30s"}]
		}`))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})

	t.Run("Validation Failure", func(t *testing.T) {
		_, err := LoadWithFile(writeConfigFile(t, `{"targets": []}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "점검 대상(targets)")
	})
}
