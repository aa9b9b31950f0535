package config

import (
	"testing"
	"time"

	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *AppConfig {
	cfg := newDefaultConfig()
	cfg.Targets = []TargetConfig{
		{ID: "agileflow", BaseURL: "http://localhost:8080", Schedule: "@every 30s", Notify: true},
	}
	cfg.Notifiers = NotifierConfig{
		DefaultNotifierID: "ops",
		Telegrams: []TelegramConfig{
			{ID: "ops", BotToken: validBotToken, ChatID: 12345},
		},
	}
	return &cfg
}

func TestAppConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		modify      func(*AppConfig)
		wantErrType apperrors.ErrorType
		wantMsg     string
	}{
		{name: "Valid", modify: func(*AppConfig) {}},
		{
			name: "No Notifiers Is Valid",
			modify: func(c *AppConfig) {
				c.Notifiers = NotifierConfig{}
			},
		},
		{
			name:        "Zero Poll Interval",
			modify:      func(c *AppConfig) { c.Poller.PollInterval = 0 },
			wantErrType: apperrors.InvalidInput,
			wantMsg:     "poll_interval",
		},
		{
			name:        "Negative Health Timeout",
			modify:      func(c *AppConfig) { c.Poller.HealthTimeout = -time.Second },
			wantErrType: apperrors.InvalidInput,
			wantMsg:     "health_timeout",
		},
		{
			name:        "No Targets",
			modify:      func(c *AppConfig) { c.Targets = nil },
			wantErrType: apperrors.InvalidInput,
			wantMsg:     "1개 이상",
		},
		{
			name: "Duplicate Target ID",
			modify: func(c *AppConfig) {
				c.Targets = append(c.Targets, c.Targets[0])
			},
			wantErrType: apperrors.InvalidInput,
			wantMsg:     "중복된 점검 대상(Target) ID",
		},
		{
			name:        "Missing Target ID",
			modify:      func(c *AppConfig) { c.Targets[0].ID = "" },
			wantErrType: apperrors.InvalidInput,
			wantMsg:     "필수 항목(id)",
		},
		{
			name:        "Relative Base URL",
			modify:      func(c *AppConfig) { c.Targets[0].BaseURL = "/api" },
			wantErrType: apperrors.InvalidInput,
			wantMsg:     "점검 대상 URL(base_url)",
		},
		{
			name:        "Five Field Schedule",
			modify:      func(c *AppConfig) { c.Targets[0].Schedule = "*/5 * * * *" },
			wantErrType: apperrors.InvalidInput,
			wantMsg:     "점검 스케줄(schedule)",
		},
		{
			name:        "Unknown Target Notifier",
			modify:      func(c *AppConfig) { c.Targets[0].NotifierID = "nobody" },
			wantErrType: apperrors.NotFound,
			wantMsg:     "nobody",
		},
		{
			name:        "Unknown Default Notifier",
			modify:      func(c *AppConfig) { c.Notifiers.DefaultNotifierID = "nobody" },
			wantErrType: apperrors.NotFound,
			wantMsg:     "기본 NotifierID('nobody')",
		},
		{
			name: "Default Notifier Without Channels",
			modify: func(c *AppConfig) {
				c.Notifiers.Telegrams = nil
			},
			wantErrType: apperrors.NotFound,
			wantMsg:     "정의된 알림 채널이 없습니다",
		},
		{
			name:        "Invalid Bot Token",
			modify:      func(c *AppConfig) { c.Notifiers.Telegrams[0].BotToken = "invalid" },
			wantErrType: apperrors.InvalidInput,
			wantMsg:     "BotToken",
		},
		{
			name: "Duplicate Notifier ID",
			modify: func(c *AppConfig) {
				c.Notifiers.Telegrams = append(c.Notifiers.Telegrams, c.Notifiers.Telegrams[0])
			},
			wantErrType: apperrors.InvalidInput,
			wantMsg:     "중복된 알림 채널(Notifier) ID",
		},
		{
			name:        "Port Out Of Range",
			modify:      func(c *AppConfig) { c.StatusAPI.ListenPort = 70000 },
			wantErrType: apperrors.InvalidInput,
			wantMsg:     "listen_port",
		},
		{
			name:        "Empty CORS",
			modify:      func(c *AppConfig) { c.StatusAPI.CORS.AllowOrigins = nil },
			wantErrType: apperrors.InvalidInput,
			wantMsg:     "allow_origins",
		},
		{
			name:        "Wildcard Mixed",
			modify:      func(c *AppConfig) { c.StatusAPI.CORS.AllowOrigins = []string{"*", "https://a.com"} },
			wantErrType: apperrors.InvalidInput,
			wantMsg:     "와일드카드",
		},
		{
			name:        "Invalid Origin",
			modify:      func(c *AppConfig) { c.StatusAPI.CORS.AllowOrigins = []string{"https://a.com/path"} },
			wantErrType: apperrors.InvalidInput,
			wantMsg:     "CORS Origin",
		},
		{
			name:        "Empty Storage Dir",
			modify:      func(c *AppConfig) { c.Storage.Dir = "" },
			wantErrType: apperrors.InvalidInput,
			wantMsg:     "dir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, tt.wantErrType), "got: %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestAppConfig_VerifyRecommendations(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	assert.Empty(t, cfg.VerifyRecommendations())

	cfg.StatusAPI.ListenPort = 80
	cfg.Poller.PollInterval = 200 * time.Millisecond
	cfg.Notifiers = NotifierConfig{}

	warnings := cfg.VerifyRecommendations()
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "port: 80")
	assert.Contains(t, warnings[1], "poll_interval")
	assert.Contains(t, warnings[2], "로그로만")
}

func TestTargetConfig_DisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "운영", TargetConfig{ID: "prod", Title: "운영"}.DisplayName())
	assert.Equal(t, "prod", TargetConfig{ID: "prod"}.DisplayName())
}
