package api

import (
	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
)

var (
	// ErrStatusProviderNotInitialized 점검 상태를 제공할 TargetStatusProvider 없이 서비스를 시작하려 할 때 반환됩니다.
	ErrStatusProviderNotInitialized = apperrors.New(apperrors.Internal, "TargetStatusProvider 객체가 초기화되지 않았습니다")

	// ErrNotificationServiceNotInitialized 알림 서비스 없이 서비스를 시작하려 할 때 반환됩니다.
	ErrNotificationServiceNotInitialized = apperrors.New(apperrors.Internal, "NotificationService 객체가 초기화되지 않았습니다")
)
