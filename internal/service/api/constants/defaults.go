package constants

import "time"

// 서버 설정 기본값
const (
	// DefaultRequestTimeout 요청 하나의 최대 처리 시간
	DefaultRequestTimeout = 30 * time.Second

	DefaultReadTimeout       = 15 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 30 * time.Second
	DefaultIdleTimeout       = 60 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultMaxBodySize 상태 API는 조회 전용이므로 요청 본문을 작게 제한합니다.
	DefaultMaxBodySize = "16K"

	// DefaultRateLimitPerSecond IP별 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP별 버스트 허용량
	DefaultRateLimitBurst = 40
)
