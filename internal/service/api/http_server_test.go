package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/darkkaiser/agileflow-probe/internal/pkg/version"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/constants"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/handler/system"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/model/response"
	v1 "github.com/darkkaiser/agileflow-probe/internal/service/api/v1"
	v1handler "github.com/darkkaiser/agileflow-probe/internal/service/api/v1/handler"
	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	monitormocks "github.com/darkkaiser/agileflow-probe/internal/service/monitor/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg HTTPServerConfig, statuses ...contract.TargetStatus) (*echo.Echo, *monitormocks.MockTargetStatusProvider) {
	t.Helper()

	provider := monitormocks.NewMockTargetStatusProvider(statuses...)

	e := NewHTTPServer(cfg)
	RegisterRoutes(e, system.New(provider, nil, version.Info{Version: "v1.0.0"}))
	v1.RegisterRoutes(e, v1handler.New(provider))

	return e, provider
}

func serve(e *echo.Echo, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestNewHTTPServer_Configuration(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{Debug: true})

	assert.True(t, e.Debug)
	assert.True(t, e.HideBanner)
	assert.True(t, e.HidePort)
	assert.Equal(t, constants.DefaultReadTimeout, e.Server.ReadTimeout)
	assert.Equal(t, constants.DefaultReadHeaderTimeout, e.Server.ReadHeaderTimeout)
	assert.Equal(t, constants.DefaultWriteTimeout, e.Server.WriteTimeout)
	assert.Equal(t, constants.DefaultIdleTimeout, e.Server.IdleTimeout)
}

func TestRoutes(t *testing.T) {
	e, provider := newTestServer(t, HTTPServerConfig{}, contract.TargetStatus{ID: "web", State: contract.TargetStateReady})
	provider.SetInitialized(true)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{"Health", "/api/health", http.StatusOK, `"status":"ok"`},
		{"Ready", "/api/ready", http.StatusOK, `"status":"ready"`},
		{"Version", "/api/version", http.StatusOK, `"version":"v1.0.0"`},
		{"Targets", "/api/v1/targets", http.StatusOK, `"id":"web"`},
		{"Target", "/api/v1/targets/web", http.StatusOK, `"state":"ready"`},
		{"Unknown target", "/api/v1/targets/none", http.StatusNotFound, `"result_code":404`},
		{"Unknown route", "/api/v2/targets", http.StatusNotFound, constants.ErrMsgNotFound},
		{"Swagger", "/swagger/doc.json", http.StatusOK, `"2.0"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestMiddleware_Headers(t *testing.T) {
	e, _ := newTestServer(t, HTTPServerConfig{AllowOrigins: []string{"https://dashboard.example.com"}})

	rec := serve(e, http.MethodGet, "/api/health", map[string]string{
		echo.HeaderOrigin: "https://dashboard.example.com",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Empty(t, rec.Header().Get(echo.HeaderServer))
	assert.Equal(t, "https://dashboard.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
}

func TestMiddleware_RateLimit(t *testing.T) {
	e, _ := newTestServer(t, HTTPServerConfig{RateLimitPerSecond: 1, RateLimitBurst: 2})

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/api/health", nil).Code)
	}

	rec := serve(e, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusTooManyRequests, resp.ResultCode)
	assert.True(t, strings.TrimSpace(resp.Message) != "")
}

func TestReadyRoute_NotInitialized(t *testing.T) {
	e, _ := newTestServer(t, HTTPServerConfig{})

	rec := serve(e, http.MethodGet, "/api/ready", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"not_ready"`)
}
