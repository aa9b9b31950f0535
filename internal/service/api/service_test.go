package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/agileflow-probe/internal/config"
	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
	"github.com/darkkaiser/agileflow-probe/internal/pkg/version"
	"github.com/darkkaiser/agileflow-probe/internal/readiness"
	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	monitormocks "github.com/darkkaiser/agileflow-probe/internal/service/monitor/mocks"
	notificationmocks "github.com/darkkaiser/agileflow-probe/internal/service/notification/mocks"
	"github.com/darkkaiser/agileflow-probe/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

func newTestAppConfig(t *testing.T) *config.AppConfig {
	t.Helper()

	port, err := testutil.GetFreePort()
	require.NoError(t, err, "사용 가능한 포트를 가져오는데 실패했습니다")

	appConfig := &config.AppConfig{Debug: true}
	appConfig.StatusAPI.ListenPort = port
	appConfig.StatusAPI.CORS.AllowOrigins = []string{"*"}

	return appConfig
}

// startTestService 서비스를 시작하고, 테스트 종료 시 종료 및 대기를 등록합니다.
func startTestService(t *testing.T, s *Service) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	require.NoError(t, testutil.WaitForServer(s.appConfig.StatusAPI.ListenPort, 5*time.Second))

	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
}

// =============================================================================
// Constructor & Start
// =============================================================================

func TestNewService_PanicsWithoutConfig(t *testing.T) {
	assert.Panics(t, func() {
		NewService(nil, monitormocks.NewMockTargetStatusProvider(), notificationmocks.NewMockNotificationSender(), version.Info{})
	})
}

func TestService_Start_MissingDependencies(t *testing.T) {
	tests := []struct {
		name    string
		service func(appConfig *config.AppConfig) *Service
		wantErr error
	}{
		{
			name: "Nil status provider",
			service: func(appConfig *config.AppConfig) *Service {
				return NewService(appConfig, nil, notificationmocks.NewMockNotificationSender(), version.Info{})
			},
			wantErr: ErrStatusProviderNotInitialized,
		},
		{
			name: "Nil notification service",
			service: func(appConfig *config.AppConfig) *Service {
				return NewService(appConfig, monitormocks.NewMockTargetStatusProvider(), nil, version.Info{})
			},
			wantErr: ErrNotificationServiceNotInitialized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.service(newTestAppConfig(t))

			wg := &sync.WaitGroup{}
			wg.Add(1)

			err := s.Start(context.Background(), wg)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, apperrors.Is(err, apperrors.Internal))

			// 에러 경로에서도 Done()이 호출되어야 합니다.
			wg.Wait()
		})
	}
}

func TestService_Start_Twice(t *testing.T) {
	s := NewService(newTestAppConfig(t), monitormocks.NewMockTargetStatusProvider(), notificationmocks.NewMockNotificationSender(), version.Info{})
	startTestService(t, s)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	assert.NoError(t, s.Start(context.Background(), wg))
	wg.Wait()
}

func TestService_Shutdown(t *testing.T) {
	appConfig := newTestAppConfig(t)
	s := NewService(appConfig, monitormocks.NewMockTargetStatusProvider(), notificationmocks.NewMockNotificationSender(), version.Info{})

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	require.NoError(t, testutil.WaitForServer(appConfig.StatusAPI.ListenPort, 5*time.Second))

	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("서비스가 제한 시간 내에 종료되지 않았습니다")
	}

	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	assert.False(t, s.running)
}

func TestService_HandleServerError(t *testing.T) {
	t.Run("Server closed is not reported", func(t *testing.T) {
		sender := notificationmocks.NewMockNotificationSender()
		s := NewService(newTestAppConfig(t), monitormocks.NewMockTargetStatusProvider(), sender, version.Info{})

		s.handleServerError(http.ErrServerClosed)
		s.handleServerError(nil)

		assert.Empty(t, sender.Notifications())
	})

	t.Run("Unexpected error is reported to the default notifier", func(t *testing.T) {
		sender := notificationmocks.NewMockNotificationSender()
		s := NewService(newTestAppConfig(t), monitormocks.NewMockTargetStatusProvider(), sender, version.Info{})

		s.handleServerError(errors.New("address already in use"))

		notifications := sender.Notifications()
		require.Len(t, notifications, 1)
		assert.True(t, notifications[0].ErrorOccurred)
		assert.True(t, notifications[0].NotifierID.IsEmpty())
		assert.Contains(t, notifications[0].Message, "address already in use")
	})
}

// =============================================================================
// Status API as a readiness target
// =============================================================================

func TestService_ProbedByReadinessPoller(t *testing.T) {
	appConfig := newTestAppConfig(t)
	provider := monitormocks.NewMockTargetStatusProvider(contract.TargetStatus{
		ID:    "web",
		State: contract.TargetStateReady,
	})

	s := NewService(appConfig, provider, notificationmocks.NewMockNotificationSender(), version.Info{Version: "v1.0.0"})
	startTestService(t, s)

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	poller, err := readiness.New(testutil.BaseURL(appConfig.StatusAPI.ListenPort),
		readiness.WithHTTPClient(client),
		readiness.WithMaxWait(2*time.Second),
		readiness.WithPollInterval(50*time.Millisecond),
	)
	require.NoError(t, err)

	// 첫 번째 점검 라운드가 끝나기 전에는 /api/ready가 503을 반환합니다.
	assert.False(t, poller.CheckOnce(context.Background()))

	err = poller.Check(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Unavailable))

	provider.SetInitialized(true)

	assert.True(t, poller.CheckOnce(context.Background()))
	assert.True(t, poller.WaitUntilReady(context.Background()))
}
