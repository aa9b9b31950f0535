// Package system 시스템 엔드포인트(헬스체크, 준비 상태, 버전)를 처리합니다.
//
// /api/health와 /api/ready는 readiness.Poller가 소비하는 것과 같은 계약을 따르므로
// agileflow-probe 자신도 같은 방식으로 점검할 수 있습니다.
package system

import (
	"net/http"
	"time"

	"github.com/darkkaiser/agileflow-probe/internal/pkg/version"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/constants"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/model/system"
	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
	"github.com/labstack/echo/v4"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"

	dependencyNotificationService = "notification_service"
)

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	statusProvider contract.TargetStatusProvider

	// healthChecker 알림 서비스 상태 확인용 (nil이면 의존성 항목을 생략합니다)
	healthChecker contract.NotificationHealthChecker

	buildInfo version.Info

	serverStartTime time.Time
}

// New Handler 인스턴스를 생성합니다.
func New(statusProvider contract.TargetStatusProvider, healthChecker contract.NotificationHealthChecker, buildInfo version.Info) *Handler {
	if statusProvider == nil {
		panic("TargetStatusProvider는 필수입니다")
	}

	return &Handler{
		statusProvider: statusProvider,
		healthChecker:  healthChecker,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 헬스체크 (liveness)
// @Description 프로세스가 요청을 처리할 수 있으면 항상 200과 status "ok"를 반환합니다.
// @Description 알림 서비스의 상태는 dependencies에 참고용으로만 표시됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse
// @Router /api/health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	resp := system.HealthResponse{
		Status: constants.StatusOK,
		Uptime: int64(time.Since(h.serverStartTime).Seconds()),
	}

	if h.healthChecker != nil {
		dep := system.DependencyStatus{Status: healthStatusHealthy}
		if err := h.healthChecker.Health(); err != nil {
			dep = system.DependencyStatus{Status: healthStatusUnhealthy, Message: err.Error()}
		}
		resp.Dependencies = map[string]system.DependencyStatus{dependencyNotificationService: dep}
	}

	return c.JSON(http.StatusOK, resp)
}

// ReadyHandler godoc
// @Summary 준비 상태 (readiness)
// @Description 모든 점검 대상에 대한 첫 번째 점검 라운드가 끝나면 200과 status "ready"를,
// @Description 그 전에는 503과 status "not_ready"를 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.ReadyResponse
// @Failure 503 {object} system.ReadyResponse
// @Router /api/ready [get]
func (h *Handler) ReadyHandler(c echo.Context) error {
	if !h.statusProvider.Initialized() {
		applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
			"remote_ip": c.RealIP(),
		}).Debug("준비 상태 요청: 첫 번째 점검 라운드 진행 중")

		return c.JSON(http.StatusServiceUnavailable, system.ReadyResponse{
			Status:  constants.StatusNotReady,
			Message: constants.ErrMsgMonitorNotReady,
		})
	}

	return c.JSON(http.StatusOK, system.ReadyResponse{Status: constants.StatusReady})
}

// VersionHandler godoc
// @Summary 버전 정보
// @Description 버전, 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse
// @Router /api/version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.ShortCommit(),
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
	})
}
