// Package v1 버전 1 API 라우트를 등록합니다.
package v1

import (
	"github.com/darkkaiser/agileflow-probe/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes /api/v1 그룹에 점검 대상 조회 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	g := e.Group("/api/v1")

	g.GET("/targets", h.ListTargetsHandler)
	g.GET("/targets/:id", h.GetTargetHandler)
}
