package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
)

// Request 대기열을 통해 워커에게 전달되는 알림 발송 요청입니다.
//
// 채널을 통해 요청자의 Context를 워커까지 전달하기 위해 구조체에 Context를 담습니다.
type Request struct {
	Ctx          context.Context
	Notification contract.Notification
}

// Base 모든 Notifier 구현체가 임베딩하여 사용하는 대기열 관리 구조체입니다.
//
// 구현체는 "알림을 큐에 넣고 종료를 관리하는 책임"을 Base에 위임하고, 실제 외부 전송에만 집중합니다.
type Base struct {
	id contract.NotifierID

	// enqueueTimeout 대기열이 가득 찼을 때 요청을 버리기 전까지 기다리는 최대 시간
	enqueueTimeout time.Duration

	requestC chan *Request

	mu     sync.RWMutex
	closed bool
	done   chan struct{}

	// pendingSendsWG Send()에 진입하여 채널 전송을 시도 중인 고루틴 수
	// 워커는 종료 직전 이들이 끝나기를 기다린 후 잔여 요청을 처리합니다.
	pendingSendsWG sync.WaitGroup
}

// NewBase 새로운 Base 인스턴스를 생성합니다.
func NewBase(id contract.NotifierID, bufferSize int, enqueueTimeout time.Duration) *Base {
	return &Base{
		id: id,

		enqueueTimeout: enqueueTimeout,

		requestC: make(chan *Request, bufferSize),

		done: make(chan struct{}),
	}
}

// ID Notifier의 고유 식별자를 반환합니다.
func (b *Base) ID() contract.NotifierID {
	return b.id
}

// Send 알림 발송 요청을 대기열에 등록합니다.
//
// 대기열이 가득 차면 enqueueTimeout만큼 기다리고, 그래도 자리가 나지 않으면 ErrQueueFull을 반환합니다.
func (b *Base) Send(ctx context.Context, notification contract.Notification) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := notification.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrClosed
	}
	b.pendingSendsWG.Add(1)
	requestC, done := b.requestC, b.done
	b.mu.RUnlock()

	defer b.pendingSendsWG.Done()

	req := &Request{Ctx: ctx, Notification: notification}

	// 빈 자리가 있으면 타이머 없이 바로 등록합니다.
	select {
	case requestC <- req:
		return nil
	default:
	}

	timer := time.NewTimer(b.enqueueTimeout)
	defer timer.Stop()

	select {
	case requestC <- req:
		return nil

	case <-done:
		return ErrClosed

	case <-ctx.Done():
		return ctx.Err()

	case <-timer.C:
		applog.WithComponentAndFields(component, applog.Fields{
			"notifier_id": b.id,
			"title":       notification.Title,
			"queue_depth": len(requestC),
		}).Warn("알림 요청 거부: 발송 대기열 용량 초과 (Queue Full)")

		return ErrQueueFull
	}
}

// Close Notifier를 종료 상태로 전환하고 Done 채널을 닫습니다. 여러 번 호출해도 안전합니다.
//
// 여러 고루틴이 동시에 Send()를 호출할 수 있으므로 요청 채널은 닫지 않습니다.
// 종료는 Done 채널이나 Context로 감지해야 합니다.
func (b *Base) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.done)
	}
}

// IsClosed Close()가 호출되었는지 여부를 반환합니다.
func (b *Base) IsClosed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.closed
}

// Done Notifier가 종료되면 닫히는 채널을 반환합니다.
func (b *Base) Done() <-chan struct{} {
	return b.done
}

// RequestC 워커가 요청을 꺼내기 위한 읽기 전용 채널을 반환합니다.
func (b *Base) RequestC() <-chan *Request {
	return b.requestC
}

// Drain Notifier를 종료하고 대기열에 남아있는 요청을 ctx가 만료될 때까지 handle로 처리합니다.
//
// 먼저 최대 pendingTimeout 동안 진행 중인 Send()가 끝나기를 기다린 뒤 대기열을 비웁니다.
// 처리하지 못하고 버려진 요청 수를 반환합니다.
func (b *Base) Drain(ctx context.Context, pendingTimeout time.Duration, handle func(ctx context.Context, req *Request)) int {
	b.Close()

	pendingDone := make(chan struct{})
	go func() {
		b.pendingSendsWG.Wait()
		close(pendingDone)
	}()

	timer := time.NewTimer(pendingTimeout)
	select {
	case <-pendingDone:
	case <-timer.C:
		applog.WithComponentAndFields(component, applog.Fields{
			"notifier_id": b.id,
			"timeout":     pendingTimeout,
		}).Warn("진행 중인 발송 요청 대기 시간 초과, 현재 대기열만 처리합니다")
	}
	timer.Stop()

	for {
		select {
		case req := <-b.requestC:
			if ctx.Err() != nil {
				dropped := 1 + len(b.requestC)
				applog.WithComponentAndFields(component, applog.Fields{
					"notifier_id": b.id,
					"dropped":     dropped,
				}).Warn("잔여 메시지 폐기: 종료 대기 시간(Drain Timeout) 초과")
				return dropped
			}
			handle(ctx, req)

		default:
			return 0
		}
	}
}
