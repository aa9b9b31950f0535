package constants

// 상태 API가 반환하는 status 값
const (
	StatusOK       = "ok"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// 클라이언트에게 반환되는 에러 메시지
const (
	ErrMsgNotFound        = "요청한 리소스를 찾을 수 없습니다"
	ErrMsgTargetNotFound  = "등록되지 않은 점검 대상입니다 (ID: %s)"
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"
	ErrMsgInternalServer  = "내부 서버 오류가 발생했습니다"
	ErrMsgMonitorNotReady = "첫 번째 점검 라운드가 아직 완료되지 않았습니다"
)

// 내부 로깅 메시지
const (
	LogMsgServiceStarting       = "서비스 시작 진입: 상태 API 서비스 초기화 프로세스를 시작합니다"
	LogMsgServiceStarted        = "서비스 시작 완료: 상태 API 서비스가 정상적으로 초기화되었습니다"
	LogMsgServiceAlreadyStarted = "상태 API 서비스가 이미 실행 중입니다 (중복 호출)"
	LogMsgServiceStopping       = "종료 절차 진입: 상태 API 서비스 중지 시그널을 수신했습니다"
	LogMsgServiceStopped        = "상태 API 서비스 종료 완료"
	LogMsgServiceUnexpectedExit = "상태 API 서비스가 예기치 않게 종료되었습니다"

	LogMsgHTTPServerStarting      = "HTTP 서버 시작"
	LogMsgHTTPServerStopped       = "HTTP 서버 중지됨"
	LogMsgHTTPServerShutdownError = "HTTP 서버 종료 중 오류 발생"
	LogMsgHTTPServerFatalError    = "상태 API 서버를 구동하는 중에 치명적인 오류가 발생하였습니다."

	LogMsgHTTP4xxClientError = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "HTTP 5xx: 서버 내부 오류"
)
