package telegram

import (
	"context"
	"errors"
	"time"

	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
	"github.com/darkkaiser/agileflow-probe/pkg/strutil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendMessage 메시지를 messageMaxLength 단위로 분할하여 순서대로 전송합니다.
// 중간 조각의 전송이 실패하면 나머지 조각은 전송하지 않습니다.
func (n *telegramNotifier) sendMessage(ctx context.Context, message string) {
	for _, chunk := range strutil.SplitLines(message, messageMaxLength) {
		if ctx.Err() != nil {
			return
		}
		if err := n.sendChunk(ctx, chunk); err != nil {
			return
		}
	}
}

// sendChunk 분할된 메시지 한 조각을 속도 제한을 지키며 전송합니다.
//
// 429(Too Many Requests)와 5xx 응답은 최대 maxRetries회까지 재시도하고, 그 외 4xx 응답은 즉시 실패로 처리합니다.
func (n *telegramNotifier) sendChunk(ctx context.Context, chunk string) error {
	if err := n.limiter.Wait(ctx); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"notifier_id": n.ID(),
			"error":       err,
		}).Debug("작업 중단: RateLimiter 대기 중 컨텍스트가 취소되었습니다")

		return err
	}

	messageConfig := tgbotapi.NewMessage(n.chatID, chunk)
	messageConfig.ParseMode = tgbotapi.ModeHTML

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, err := n.client.Send(messageConfig)
		if err == nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"notifier_id":    n.ID(),
				"chat_id":        n.chatID,
				"attempt":        attempt,
				"message_length": len(chunk),
			}).Info("발송 성공: 텔레그램 API로 메시지가 정상 전송되었습니다")

			return nil
		}
		lastErr = err

		code, retryAfter := extractErrorCode(err)
		fields := applog.Fields{
			"notifier_id": n.ID(),
			"chat_id":     n.chatID,
			"attempt":     attempt,
			"error_code":  code,
			"error":       err,
		}

		if !shouldRetry(code) {
			applog.WithComponentAndFields(component, fields).Error("발송 실패: 재시도할 수 없는 텔레그램 API 오류입니다")
			return err
		}
		if attempt == maxRetries {
			break
		}

		wait := n.retryWait(retryAfter)
		fields["retry_after"] = wait
		applog.WithComponentAndFields(component, fields).Warn("발송 실패: 잠시 후 재시도합니다")

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"notifier_id": n.ID(),
		"chat_id":     n.chatID,
		"error":       lastErr,
	}).Error("발송 최종 실패: 최대 재시도 횟수를 초과했습니다")

	return lastErr
}

// extractErrorCode 텔레그램 API 에러에서 에러 코드와 Retry-After 값을 추출합니다.
// 네트워크 오류처럼 API 에러가 아닌 경우 (0, 0)을 반환합니다.
func extractErrorCode(err error) (code int, retryAfter int) {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.RetryAfter
	}

	var apiErrValue tgbotapi.Error
	if errors.As(err, &apiErrValue) {
		return apiErrValue.Code, apiErrValue.RetryAfter
	}

	return 0, 0
}

// shouldRetry 429는 재시도하고 그 외 4xx는 재시도하지 않습니다. 네트워크 오류(0)와 5xx는 재시도합니다.
func shouldRetry(code int) bool {
	if code >= 400 && code < 500 {
		return code == 429
	}
	return true
}

func (n *telegramNotifier) retryWait(retryAfter int) time.Duration {
	if retryAfter > 0 {
		return time.Duration(retryAfter) * time.Second
	}
	return n.retryDelay
}
