package telegram

import (
	"context"

	"github.com/darkkaiser/agileflow-probe/internal/service/notification/notifier"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
)

// Run 대기열의 알림을 텔레그램으로 발송하는 워커 루프를 실행합니다.
//
// ctx가 취소되거나 Close()가 호출되면 최대 shutdownTimeout 동안 남은 알림을 발송한 뒤 반환합니다.
func (n *telegramNotifier) Run(ctx context.Context) {
	applog.WithComponentAndFields(component, applog.Fields{
		"notifier_id": n.ID(),
		"chat_id":     n.chatID,
	}).Debug("Telegram Notifier의 작업이 시작됨")

	defer func() {
		applog.WithComponentAndFields(component, applog.Fields{
			"notifier_id": n.ID(),
		}).Debug("Telegram Notifier의 작업이 중지됨")
	}()

	for {
		select {
		case req := <-n.RequestC():
			n.handleRequest(req.Ctx, req)

		case <-ctx.Done():
			n.drain()
			return

		case <-n.Done():
			n.drain()
			return
		}
	}
}

func (n *telegramNotifier) drain() {
	drainCtx, cancel := context.WithTimeout(context.Background(), n.shutdownTimeout)
	defer cancel()

	n.Drain(drainCtx, pendingSendsTimeout, n.handleRequest)
}

// handleRequest 알림 한 건을 전송합니다. 전송 중 발생한 패닉은 해당 건만 건너뛰고 워커는 계속 실행됩니다.
func (n *telegramNotifier) handleRequest(ctx context.Context, req *notifier.Request) {
	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"notifier_id": n.ID(),
				"chat_id":     n.chatID,
				"panic":       r,
			}).Error("메시지 처리 실패: 발송 로직 수행 중 패닉 발생 (해당 건 스킵)")
		}
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	n.sendMessage(sendCtx, buildMessage(req.Notification))
}
