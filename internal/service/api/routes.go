package api

import (
	_ "github.com/darkkaiser/agileflow-probe/docs"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes 시스템 엔드포인트(/api/health, /api/ready, /api/version)와 Swagger UI(/swagger/*)를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *system.Handler) {
	registerSystemRoutes(e, h)
	registerSwaggerRoutes(e)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/api/health", h.HealthCheckHandler)
	e.GET("/api/ready", h.ReadyHandler)
	e.GET("/api/version", h.VersionHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
