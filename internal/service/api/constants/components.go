// Package constants 상태 API 서버 전반에서 사용하는 상수를 모아둡니다.
package constants

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	ComponentService       = "api.service"
	ComponentHandler       = "api.handler"
	ComponentErrorHandler  = "api.error_handler"
	ComponentHTTPLogger    = "api.middleware.http_logger"
	ComponentRateLimit     = "api.middleware.rate_limit"
	ComponentPanicRecovery = "api.middleware.panic_recovery"
)
