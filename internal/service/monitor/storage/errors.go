package storage

import (
	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
)

var (
	// ErrSnapshotNotFound 대상의 상태 스냅샷 파일이 아직 존재하지 않을 때 반환됩니다. (첫 실행 등)
	ErrSnapshotNotFound = apperrors.New(apperrors.NotFound, "저장된 상태 스냅샷이 없습니다")

	// ErrTargetIDRequired 빈 대상 ID로 저장소를 호출했을 때 반환됩니다.
	ErrTargetIDRequired = apperrors.New(apperrors.InvalidInput, "대상 ID가 비어 있습니다")

	// ErrLoadRequiresPointer Load 대상 객체가 nil이 아닌 포인터가 아닐 때 반환됩니다.
	ErrLoadRequiresPointer = apperrors.New(apperrors.Internal, "내부 시스템 오류: 스냅샷 로드 대상 객체가 올바른 포인터 타입이 아닙니다")

	// ErrPathTraversalDetected 생성된 파일 경로가 저장소 디렉토리를 벗어났을 때 반환됩니다.
	ErrPathTraversalDetected = apperrors.New(apperrors.Internal, "보안 정책 위반: 허용되지 않은 경로 접근 시도로 인해 요청이 차단되었습니다")
)

func newErrStoreInitFailed(err error, dir string) error {
	return apperrors.Wrapf(err, apperrors.System, "스냅샷 저장소 초기화 실패: 디렉토리에 접근할 수 없습니다 (%s)", dir)
}

func newErrPathResolutionFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "보안 검증 실패: 파일 경로를 해석할 수 없습니다")
}

func newErrSnapshotReadFailed(err error) error {
	return apperrors.Wrap(err, apperrors.System, "상태 스냅샷 읽기 실패")
}

func newErrSnapshotDecodeFailed(err error) error {
	return apperrors.Wrap(err, apperrors.ParsingFailed, "상태 스냅샷 역직렬화(JSON Unmarshal) 실패")
}

func newErrSnapshotEncodeFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "상태 스냅샷 직렬화(JSON Marshal) 실패")
}

// newErrSnapshotWriteFailed 원자적 쓰기의 각 단계(임시 파일 생성, 쓰기, 동기화, 이름 변경)에서 발생한 에러를 감쌉니다.
func newErrSnapshotWriteFailed(err error, step string) error {
	return apperrors.Wrapf(err, apperrors.System, "상태 스냅샷 저장 실패: %s 단계에서 오류가 발생했습니다", step)
}
