// Package api agileflow-probe의 상태 API 서버를 제공합니다.
//
// 서버는 모니터가 수집한 점검 대상 상태를 조회하는 엔드포인트와 함께,
// AgileFlow 백엔드와 같은 /api/health, /api/ready 계약을 노출합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/darkkaiser/agileflow-probe/internal/config"
	"github.com/darkkaiser/agileflow-probe/internal/pkg/version"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/constants"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/agileflow-probe/internal/service/api/v1"
	v1handler "github.com/darkkaiser/agileflow-probe/internal/service/api/v1/handler"
	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
	"github.com/labstack/echo/v4"
)

// NotificationService 상태 API가 사용하는 알림 서비스 기능입니다.
// 서버 장애를 알리고, 헬스체크 응답에 알림 서비스 상태를 표시합니다.
type NotificationService interface {
	contract.NotificationSender
	contract.NotificationHealthChecker
}

// Service 상태 API 서버의 생명주기를 관리합니다.
type Service struct {
	appConfig *config.AppConfig

	statusProvider contract.TargetStatusProvider

	notificationService NotificationService

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

var _ contract.Service = (*Service)(nil)

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, statusProvider contract.TargetStatusProvider, notificationService NotificationService, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}

	return &Service{
		appConfig: appConfig,

		statusProvider: statusProvider,

		notificationService: notificationService,

		buildInfo: buildInfo,
	}
}

// Start HTTP 서버를 별도 고루틴에서 시작하고 즉시 반환합니다.
// serviceStopCtx가 취소되면 Graceful Shutdown을 수행한 뒤 serviceStopWG.Done()을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.statusProvider == nil {
		defer serviceStopWG.Done()
		return ErrStatusProviderNotInitialized
	}
	if s.notificationService == nil {
		defer serviceStopWG.Done()
		return ErrNotificationServiceNotInitialized
	}

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": s.appConfig.StatusAPI.ListenPort,
	}).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러와 미들웨어, 라우트가 모두 구성된 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.New(s.statusProvider, s.notificationService, s.buildInfo)
	v1Handler := v1handler.New(s.statusProvider)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		AllowOrigins: s.appConfig.StatusAPI.CORS.AllowOrigins,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler)

	return e
}

func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.StatusAPI.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Debug(constants.LogMsgHTTPServerStarting)

	s.handleServerError(e.Start(fmt.Sprintf(":%d", port)))
}

// handleServerError http.ErrServerClosed는 정상 종료로 보고, 그 외 에러는 기록한 뒤 기본 알림 채널로 알립니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.StatusAPI.ListenPort,
		"error": err,
	}).Error(constants.LogMsgHTTPServerFatalError)

	if notifyErr := s.notificationService.NotifyDefaultWithError(fmt.Sprintf("%s\n\n%s", constants.LogMsgHTTPServerFatalError, err)); notifyErr != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": notifyErr,
		}).Warn("서버 장애 알림 전송 실패")
	}
}

// waitForShutdown 종료 신호 또는 서버의 조기 종료를 기다린 뒤 상태를 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
