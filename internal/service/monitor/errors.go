package monitor

import (
	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
)

var (
	// ErrNotificationSenderNotInitialized 상태 변화를 알릴 NotificationSender 없이 서비스를 시작하려 할 때 반환됩니다.
	ErrNotificationSenderNotInitialized = apperrors.New(apperrors.Internal, "NotificationSender 객체가 초기화되지 않았습니다")

	// ErrNoTargets 점검할 대상이 하나도 없을 때 반환됩니다.
	ErrNoTargets = apperrors.New(apperrors.InvalidInput, "점검 대상이 정의되지 않았습니다")
)

func newErrCheckerCreationFailed(targetID string, cause error) error {
	return apperrors.Wrapf(cause, apperrors.InvalidInput, "점검기 생성 실패 (TargetID=%s)", targetID)
}

func newErrInvalidSchedule(targetID, schedule string, cause error) error {
	return apperrors.Wrapf(cause, apperrors.InvalidInput, "스케줄 등록 실패: 잘못된 Cron 표현식입니다 (TargetID=%s, Schedule='%s')", targetID, schedule)
}
