// Package notifier 알림 채널(Notifier)의 공통 인터페이스와 대기열(Base) 구현을 제공합니다.
package notifier

import (
	"context"

	"github.com/darkkaiser/agileflow-probe/internal/config"
	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
)

// component Notifier 공통 로직의 로깅용 컴포넌트 이름
const component = "notification.notifier"

// Notifier 다양한 알림 채널(예: 텔레그램, 로그)을 추상화한 인터페이스입니다.
type Notifier interface {
	// ID Notifier 인스턴스의 고유 식별자(ID)를 반환합니다.
	ID() contract.NotifierID

	// Run 대기열에 쌓인 알림을 하나씩 꺼내어 실제로 전송하는 워커를 실행합니다.
	// ctx가 취소되면 남은 알림을 처리(Drain)한 뒤 반환합니다.
	Run(ctx context.Context)

	// Send 알림 발송 요청을 대기열에 등록합니다. 실제 전송은 Run 고루틴에서 비동기로 처리됩니다.
	Send(ctx context.Context, notification contract.Notification) error

	// Close 더 이상 새로운 요청을 받지 않도록 Notifier를 종료합니다.
	Close()

	// Done Notifier가 종료되면 닫히는 채널을 반환합니다.
	Done() <-chan struct{}
}

// CreatorFunc 설정 정보를 바탕으로 Notifier 목록을 생성하는 함수 타입입니다.
type CreatorFunc func(appConfig *config.AppConfig) ([]Notifier, error)

// Factory Notifier 생성을 담당하는 팩토리 인터페이스입니다.
type Factory interface {
	Register(creator CreatorFunc)

	CreateNotifiers(appConfig *config.AppConfig) ([]Notifier, error)
}

type defaultFactory struct {
	creators []CreatorFunc
}

// NewFactory 새로운 Factory 인스턴스를 생성합니다.
func NewFactory(creators ...CreatorFunc) Factory {
	f := &defaultFactory{}
	for _, c := range creators {
		f.Register(c)
	}
	return f
}

// Register Notifier 생성을 담당할 CreatorFunc를 등록합니다.
func (f *defaultFactory) Register(creator CreatorFunc) {
	if creator != nil {
		f.creators = append(f.creators, creator)
	}
}

// CreateNotifiers 등록된 모든 CreatorFunc를 실행하여 Notifier 목록을 생성합니다.
func (f *defaultFactory) CreateNotifiers(appConfig *config.AppConfig) ([]Notifier, error) {
	var notifiers []Notifier

	for _, create := range f.creators {
		created, err := create(appConfig)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, created...)
	}

	return notifiers, nil
}
