package notification

import (
	"fmt"

	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
)

var (
	// ErrServiceNotRunning 서비스가 시작되지 않았거나 종료 절차가 진행 중이어서 알림 요청을 처리할 수 없을 때 반환하는 에러입니다.
	ErrServiceNotRunning = apperrors.New(apperrors.Unavailable, "시스템 종료 절차가 진행 중이거나, 초기화되지 않아 알림을 보낼 수 없습니다")

	// ErrNotifierNotFound 설정 파일에 등록되지 않은 알림 채널 ID가 요청되었을 때 반환하는 에러입니다.
	ErrNotifierNotFound = apperrors.New(apperrors.NotFound, "등록되지 않은 알림 채널입니다. 설정 파일을 확인해 주세요")
)

func newErrDuplicateNotifierID(id contract.NotifierID) error {
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("중복된 Notifier ID('%s')가 감지되었습니다. 설정을 확인해주세요", id))
}

func newErrDefaultNotifierNotFound(id contract.NotifierID) error {
	return apperrors.New(apperrors.NotFound, fmt.Sprintf("기본 NotifierID('%s')를 찾을 수 없습니다", id))
}
