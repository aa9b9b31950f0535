// Package monitor 설정 파일에 정의된 AgileFlow 인스턴스들을 스케줄에 따라 점검하고
// 준비 상태의 변화를 알림으로 전달하는 서비스를 제공합니다.
package monitor

import (
	"context"
	"sync"
	"sync/atomic"

	"code.cloudfoundry.org/clock"
	"github.com/darkkaiser/agileflow-probe/internal/config"
	"github.com/darkkaiser/agileflow-probe/internal/readiness"
	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	"github.com/darkkaiser/agileflow-probe/internal/service/monitor/storage"
	"github.com/darkkaiser/agileflow-probe/pkg/cronx"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// component Monitor 서비스의 로깅용 컴포넌트 이름
const component = "monitor.service"

// initialRoundConcurrency 첫 번째 점검 라운드에서 동시에 점검하는 최대 대상 수
const initialRoundConcurrency = 4

// checker 점검 대상 하나의 준비 상태를 확인합니다. readiness.Poller가 구현합니다.
type checker interface {
	Check(ctx context.Context) error
}

// checkerFactory 점검 대상 설정으로 checker를 생성합니다.
type checkerFactory func(target config.TargetConfig, pollerConfig config.PollerConfig) (checker, error)

func newReadinessChecker(target config.TargetConfig, pollerConfig config.PollerConfig) (checker, error) {
	return readiness.New(target.BaseURL,
		readiness.WithHealthTimeout(pollerConfig.HealthTimeout),
		readiness.WithReadyTimeout(pollerConfig.ReadyTimeout),
	)
}

// target 스케줄러에 등록된 점검 대상 하나
type target struct {
	config  config.TargetConfig
	checker checker
}

// Service 점검 대상별 cron 작업을 관리하고 최신 상태를 보관합니다.
type Service struct {
	appConfig *config.AppConfig

	notificationSender contract.NotificationSender

	// store 상태 스냅샷 저장소입니다. nil이면 상태를 보존하지 않습니다.
	store storage.SnapshotStore

	clock      clock.Clock
	newChecker checkerFactory

	targets []*target
	cron    *cron.Cron

	statusesMu sync.RWMutex
	statuses   map[string]*contract.TargetStatus

	initialized atomic.Bool

	running   bool
	runningMu sync.Mutex
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var (
	_ contract.Service              = (*Service)(nil)
	_ contract.TargetStatusProvider = (*Service)(nil)
)

// NewService 새로운 Monitor 서비스를 생성합니다.
func NewService(appConfig *config.AppConfig, notificationSender contract.NotificationSender, store storage.SnapshotStore) *Service {
	return &Service{
		appConfig: appConfig,

		notificationSender: notificationSender,

		store: store,

		clock:      clock.NewClock(),
		newChecker: newReadinessChecker,

		statuses: make(map[string]*contract.TargetStatus),
	}
}

// Start 점검 대상을 준비하고 저장된 상태를 복원한 뒤, 첫 번째 점검 라운드와 cron 스케줄을 시작합니다.
//
// 첫 번째 라운드는 백그라운드에서 모든 대상을 한 번씩 점검하며, 라운드가 끝나야 Initialized가 true가 됩니다.
// cron 스케줄은 첫 번째 라운드가 끝난 뒤에 시작합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Monitor 서비스 초기화 프로세스를 시작합니다")

	if s.notificationSender == nil {
		serviceStopWG.Done()
		return ErrNotificationSenderNotInitialized
	}

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Monitor 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	if len(s.appConfig.Targets) == 0 {
		serviceStopWG.Done()
		return ErrNoTargets
	}

	targets := make([]*target, 0, len(s.appConfig.Targets))
	for _, tc := range s.appConfig.Targets {
		c, err := s.newChecker(tc, s.appConfig.Poller)
		if err != nil {
			serviceStopWG.Done()
			return newErrCheckerCreationFailed(tc.ID, err)
		}
		targets = append(targets, &target{config: tc, checker: c})
	}

	c := cronx.New(component)
	for _, t := range targets {
		if _, err := c.AddFunc(t.config.Schedule, func() { s.checkTarget(serviceStopCtx, t) }); err != nil {
			serviceStopWG.Done()
			return newErrInvalidSchedule(t.config.ID, t.config.Schedule, err)
		}
	}

	s.targets = targets
	s.cron = c
	s.restoreStatuses()

	s.initialized.Store(false)
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"targets": len(targets),
	}).Info("서비스 시작 완료: Monitor 서비스가 정상적으로 초기화되었습니다")

	go s.run(serviceStopCtx, serviceStopWG, c)

	return nil
}

func (s *Service) run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, c *cron.Cron) {
	defer serviceStopWG.Done()

	if s.runInitialRound(serviceStopCtx) {
		c.Start()
	}

	<-serviceStopCtx.Done()

	s.stop()
}

// runInitialRound 모든 대상을 한 번씩 점검합니다. 도중에 ctx가 취소되면 false를 반환합니다.
func (s *Service) runInitialRound(ctx context.Context) bool {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(initialRoundConcurrency)

	for _, t := range s.targets {
		g.Go(func() error {
			s.checkTarget(gctx, t)
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil {
		applog.WithComponent(component).Warn("첫 번째 점검 라운드가 서비스 종료로 중단되었습니다")
		return false
	}

	s.initialized.Store(true)

	applog.WithComponentAndFields(component, applog.Fields{
		"targets": len(s.targets),
		"ready":   s.readyCount(),
	}).Info("첫 번째 점검 라운드 완료: 준비 상태 조회가 가능합니다")

	return true
}

// stop cron 엔진을 멈추고 실행 중인 점검이 끝날 때까지 기다립니다.
func (s *Service) stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Monitor 서비스 중지 시그널을 수신했습니다")

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}

	s.cron = nil
	s.running = false
	s.initialized.Store(false)

	applog.WithComponent(component).Info("Monitor 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}
