package notifier

import (
	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
)

var (
	// ErrQueueFull 대기열이 가득 차서 enqueueTimeout 동안 빈 공간이 생기지 않았을 때 반환됩니다.
	ErrQueueFull = apperrors.New(apperrors.Unavailable, "현재 알림 발송 대기열이 가득 차서 요청을 처리할 수 없습니다. 잠시 후 다시 시도해 주세요")

	// ErrClosed Notifier가 종료되어 더 이상 요청을 받을 수 없을 때 반환됩니다.
	ErrClosed = apperrors.New(apperrors.Unavailable, "알림 발송 채널이 종료되었기 때문에 새로운 요청을 수락할 수 없습니다")
)
