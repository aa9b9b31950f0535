// Package notification 점검 대상의 상태 변화를 알림 채널(텔레그램, 로그)로 발송하는 서비스를 제공합니다.
package notification

import (
	"context"
	"fmt"
	"sync"

	"github.com/darkkaiser/agileflow-probe/internal/config"
	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	"github.com/darkkaiser/agileflow-probe/internal/service/notification/notifier"
	"github.com/darkkaiser/agileflow-probe/internal/service/notification/notifier/logonly"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
)

const component = "notification.service"

var (
	_ contract.Service                   = (*Service)(nil)
	_ contract.NotificationSender        = (*Service)(nil)
	_ contract.NotificationHealthChecker = (*Service)(nil)
)

// Service 설정된 알림 채널(Notifier)들을 실행하고, 알림 요청을 ID에 맞는 채널로 전달합니다.
type Service struct {
	appConfig *config.AppConfig

	factory notifier.Factory

	notifiers       map[contract.NotifierID]notifier.Notifier
	defaultNotifier notifier.Notifier

	// notifiersStopWG 모든 Notifier 워커의 종료를 대기하는 WaitGroup
	notifiersStopWG sync.WaitGroup

	running   bool
	runningMu sync.RWMutex
}

// NewService 새로운 알림 서비스를 생성합니다. factory에 등록된 CreatorFunc로 Notifier가 생성됩니다.
func NewService(appConfig *config.AppConfig, factory notifier.Factory) *Service {
	return &Service{
		appConfig: appConfig,
		factory:   factory,
	}
}

// Start 알림 서비스를 시작하여 Notifier 워커들을 실행합니다.
//
// 설정된 알림 채널이 하나도 없으면 알림을 로그로만 기록하는 Notifier를 기본 채널로 사용합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("Notification 서비스 시작중...")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Warn("Notification 서비스가 이미 시작됨!!!")
		return nil
	}

	// 1. Notifier 생성
	created, err := s.factory.CreateNotifiers(s.appConfig)
	if err != nil {
		defer serviceStopWG.Done()
		return apperrors.Wrap(err, apperrors.Internal, "Notifier 초기화 중 에러가 발생했습니다")
	}

	defaultNotifierID := contract.NotifierID(s.appConfig.Notifiers.DefaultNotifierID)
	if len(created) == 0 {
		created = []notifier.Notifier{logonly.New(logonly.DefaultID)}
		defaultNotifierID = logonly.DefaultID

		applog.WithComponent(component).Info("설정된 알림 채널이 없어 알림을 로그로만 기록합니다")
	}

	// 2. 등록 및 기본 Notifier 확인 (워커 실행 전에 모두 검증합니다)
	notifiers := make(map[contract.NotifierID]notifier.Notifier, len(created))
	for _, n := range created {
		if _, exists := notifiers[n.ID()]; exists {
			defer serviceStopWG.Done()
			return newErrDuplicateNotifierID(n.ID())
		}
		notifiers[n.ID()] = n
	}

	defaultNotifier, ok := notifiers[defaultNotifierID]
	if !ok {
		defer serviceStopWG.Done()
		return newErrDefaultNotifierNotFound(defaultNotifierID)
	}

	// 3. 워커 실행
	for _, n := range created {
		s.notifiersStopWG.Add(1)
		go s.runNotifier(serviceStopCtx, n)

		applog.WithComponentAndFields(component, applog.Fields{
			"notifier_id": n.ID(),
		}).Debug("Notifier가 Notification 서비스에 등록됨")
	}

	s.notifiers = notifiers
	s.defaultNotifier = defaultNotifier
	s.running = true

	// 4. 종료 감시
	go s.waitForShutdown(serviceStopCtx, serviceStopWG)

	applog.WithComponent(component).Info("Notification 서비스 시작됨")

	return nil
}

// runNotifier Notifier 워커를 실행합니다. 워커에서 패닉이 발생해도 서비스 전체는 중단되지 않습니다.
func (s *Service) runNotifier(ctx context.Context, n notifier.Notifier) {
	defer s.notifiersStopWG.Done()
	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"notifier_id": n.ID(),
				"panic":       r,
			}).Error("Notification 서비스 > Notifier 실행 중 패닉 복구됨")

			n.Close()
		}
	}()

	n.Run(ctx)
}

// waitForShutdown 서비스의 종료 신호를 감지하고 모든 Notifier가 남은 알림을 처리할 때까지 기다립니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	<-serviceStopCtx.Done()

	applog.WithComponent(component).Info("Notification 서비스 중지중...")

	// 새로운 요청을 먼저 차단한 뒤 워커들의 Drain을 기다립니다.
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	s.notifiersStopWG.Wait()

	s.runningMu.Lock()
	s.notifiers = nil
	s.defaultNotifier = nil
	s.runningMu.Unlock()

	applog.WithComponent(component).Info("Notification 서비스 중지됨")
}

// Notify 알림을 지정된 채널로 발송합니다. NotifierID가 비어있으면 기본 채널을 사용합니다.
//
// 등록되지 않은 채널 ID가 요청되면 기본 채널로 오류 알림을 보내고 ErrNotifierNotFound를 반환합니다.
func (s *Service) Notify(notification contract.Notification) error {
	s.runningMu.RLock()
	defer s.runningMu.RUnlock()

	if !s.running {
		applog.WithComponentAndFields(component, applog.Fields{
			"notifier_id": notification.NotifierID,
		}).Warn("Notification 서비스가 실행 중이 아니어서 메시지를 전송할 수 없습니다")

		return ErrServiceNotRunning
	}

	if notification.NotifierID.IsEmpty() {
		return s.defaultNotifier.Send(context.Background(), notification)
	}

	if n, ok := s.notifiers[notification.NotifierID]; ok {
		return n.Send(context.Background(), notification)
	}

	m := fmt.Sprintf("등록되지 않은 Notifier ID('%s')입니다. 메시지 발송이 거부되었습니다. 원본 메시지: %s", notification.NotifierID, notification.Message)

	applog.WithComponentAndFields(component, applog.Fields{
		"notifier_id": notification.NotifierID,
	}).Error(m)

	if err := s.defaultNotifier.Send(context.Background(), contract.NewErrorNotification(m)); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Warn("기본 Notifier로 에러 알림 전송 실패 (큐 가득 참 또는 종료됨)")
	}

	return ErrNotifierNotFound
}

// NotifyDefault 기본 알림 채널로 일반 메시지를 발송합니다.
func (s *Service) NotifyDefault(message string) error {
	return s.Notify(contract.NewNotification(message))
}

// NotifyDefaultWithError 기본 알림 채널로 "오류" 성격의 메시지를 발송합니다.
func (s *Service) NotifyDefaultWithError(message string) error {
	return s.Notify(contract.NewErrorNotification(message))
}

// Health 서비스가 실행 중이면 nil을 반환합니다.
func (s *Service) Health() error {
	s.runningMu.RLock()
	defer s.runningMu.RUnlock()

	if !s.running {
		return ErrServiceNotRunning
	}
	return nil
}
