package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/agileflow-probe/internal/service/api/constants"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/agileflow-probe/internal/service/api/middleware"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정
type HTTPServerConfig struct {
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 요청 하나의 최대 처리 시간 (0이면 기본값 사용)
	RequestTimeout time.Duration

	// RateLimitPerSecond, RateLimitBurst IP별 요청 제한 (0이면 기본값 사용)
	RateLimitPerSecond int
	RateLimitBurst     int
}

// NewHTTPServer 미들웨어 체인이 구성된 Echo 인스턴스를 생성합니다. 라우트는 등록하지 않습니다.
//
// 미들웨어 적용 순서:
//  1. PanicRecovery: 다른 미들웨어의 패닉까지 복구하도록 가장 바깥에 둡니다.
//  2. RequestID: 이후 로그에 request_id가 포함되도록 로깅보다 먼저 둡니다.
//  3. Server 헤더 제거
//  4. HTTPLogger: 429/503 응답도 기록되도록 RateLimit보다 먼저 둡니다.
//  5. RateLimit
//  6. BodyLimit
//  7. ContextTimeout
//  8. CORS
//  9. Secure (보안 헤더)
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}
	rps, burst := cfg.RateLimitPerSecond, cfg.RateLimitBurst
	if rps <= 0 {
		rps = constants.DefaultRateLimitPerSecond
	}
	if burst <= 0 {
		burst = constants.DefaultRateLimitBurst
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimit(rps, burst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(middleware.Secure())

	return e
}
