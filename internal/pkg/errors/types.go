package errors

//go:generate stringer -type=ErrorType

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 알 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 시스템 또는 인프라 오류 (디스크, 파일 시스템 등)
	System

	// Unauthorized 인증 실패
	Unauthorized

	// Forbidden 권한 없음
	Forbidden

	// InvalidInput 잘못된 입력값 (설정 값, 명령행 인자 등)
	InvalidInput

	// Conflict 리소스 충돌
	Conflict

	// NotFound 리소스를 찾을 수 없음 (미등록 대상, 스냅샷 없음 등)
	NotFound

	// ExecutionFailed 요청은 수행되었으나 기대한 결과를 얻지 못함 (4xx 응답 등)
	ExecutionFailed

	// ParsingFailed 응답 본문 파싱 실패
	ParsingFailed

	// Timeout 요청 시간 초과
	Timeout

	// Unavailable 대상 서비스 일시적 사용 불가 (연결 실패, 5xx, 준비 미완료 등)
	Unavailable
)
