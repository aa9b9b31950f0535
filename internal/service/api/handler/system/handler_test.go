package system

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/agileflow-probe/internal/pkg/version"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/constants"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/model/system"
	monitormocks "github.com/darkkaiser/agileflow-probe/internal/service/monitor/mocks"
	notificationmocks "github.com/darkkaiser/agileflow-probe/internal/service/notification/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestNew_PanicsWithoutStatusProvider(t *testing.T) {
	assert.Panics(t, func() {
		New(nil, nil, version.Info{})
	})
}

func TestHealthCheckHandler(t *testing.T) {
	tests := []struct {
		name          string
		healthChecker func() *notificationmocks.MockNotificationSender
		wantDep       *system.DependencyStatus
	}{
		{
			name:          "Without health checker",
			healthChecker: func() *notificationmocks.MockNotificationSender { return nil },
		},
		{
			name:          "Notification service healthy",
			healthChecker: notificationmocks.NewMockNotificationSender,
			wantDep:       &system.DependencyStatus{Status: healthStatusHealthy},
		},
		{
			name: "Notification service unhealthy",
			healthChecker: func() *notificationmocks.MockNotificationSender {
				m := notificationmocks.NewMockNotificationSender()
				m.HealthErr = errors.New("telegram unreachable")
				return m
			},
			wantDep: &system.DependencyStatus{Status: healthStatusUnhealthy, Message: "telegram unreachable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h *Handler
			if checker := tt.healthChecker(); checker != nil {
				h = New(monitormocks.NewMockTargetStatusProvider(), checker, version.Info{})
			} else {
				h = New(monitormocks.NewMockTargetStatusProvider(), nil, version.Info{})
			}

			c, rec := newContext(http.MethodGet, "/api/health")
			require.NoError(t, h.HealthCheckHandler(c))

			// 알림 서비스 상태와 관계없이 liveness는 항상 200 / "ok"입니다.
			assert.Equal(t, http.StatusOK, rec.Code)

			var resp system.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, constants.StatusOK, resp.Status)
			assert.GreaterOrEqual(t, resp.Uptime, int64(0))

			if tt.wantDep == nil {
				assert.Empty(t, resp.Dependencies)
				return
			}
			assert.Equal(t, *tt.wantDep, resp.Dependencies[dependencyNotificationService])
		})
	}
}

func TestReadyHandler_FlipsAfterInitialization(t *testing.T) {
	provider := monitormocks.NewMockTargetStatusProvider()
	h := New(provider, nil, version.Info{})

	c, rec := newContext(http.MethodGet, "/api/ready")
	require.NoError(t, h.ReadyHandler(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp system.ReadyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, constants.StatusNotReady, resp.Status)
	assert.Equal(t, constants.ErrMsgMonitorNotReady, resp.Message)

	provider.SetInitialized(true)

	c, rec = newContext(http.MethodGet, "/api/ready")
	require.NoError(t, h.ReadyHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
}

func TestVersionHandler(t *testing.T) {
	info := version.Info{
		Version:     "v1.2.0",
		Commit:      "0123456789abcdef",
		BuildDate:   "2026-01-01T14:00:00Z",
		BuildNumber: "42",
		GoVersion:   "go1.24.0",
	}
	h := New(monitormocks.NewMockTargetStatusProvider(), nil, info)

	c, rec := newContext(http.MethodGet, "/api/version")
	require.NoError(t, h.VersionHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp system.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, system.VersionResponse{
		Version:     "v1.2.0",
		Commit:      "0123456",
		BuildDate:   "2026-01-01T14:00:00Z",
		BuildNumber: "42",
		GoVersion:   "go1.24.0",
	}, resp)
}
