// Package logonly 외부 알림 채널이 설정되지 않았을 때 사용하는, 알림을 로그로만 기록하는 Notifier를 제공합니다.
package logonly

import (
	"context"
	"time"

	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	"github.com/darkkaiser/agileflow-probe/internal/service/notification/notifier"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
)

const component = "notification.notifier.logonly"

const (
	// DefaultID 로그 Notifier의 기본 ID
	DefaultID contract.NotifierID = "log"

	bufferSize     = 100
	enqueueTimeout = time.Second
	drainTimeout   = 5 * time.Second
)

type logNotifier struct {
	*notifier.Base
}

// New 알림을 로그로 기록하는 Notifier를 생성합니다.
func New(id contract.NotifierID) notifier.Notifier {
	return &logNotifier{
		Base: notifier.NewBase(id, bufferSize, enqueueTimeout),
	}
}

// Run 대기열의 알림을 로그로 기록합니다. ctx가 취소되면 남은 알림을 모두 기록한 후 반환합니다.
func (n *logNotifier) Run(ctx context.Context) {
	for {
		select {
		case req := <-n.RequestC():
			n.write(req.Notification)

		case <-ctx.Done():
			n.drain()
			return

		case <-n.Done():
			n.drain()
			return
		}
	}
}

func (n *logNotifier) drain() {
	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	n.Drain(drainCtx, drainTimeout, func(_ context.Context, req *notifier.Request) {
		n.write(req.Notification)
	})
}

func (n *logNotifier) write(notification contract.Notification) {
	entry := applog.WithComponentAndFields(component, applog.Fields{
		"notifier_id": n.ID(),
		"title":       notification.Title,
	})

	if notification.ErrorOccurred {
		entry.Warn(notification.Message)
		return
	}
	entry.Info(notification.Message)
}
