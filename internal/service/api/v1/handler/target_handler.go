// Package handler v1 API 핸들러를 제공합니다.
package handler

import (
	"fmt"
	"net/http"

	"github.com/darkkaiser/agileflow-probe/internal/service/api/constants"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/httputil"
	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	"github.com/labstack/echo/v4"
)

// Handler 점검 대상 상태 조회 API 핸들러
type Handler struct {
	statusProvider contract.TargetStatusProvider
}

// New Handler 인스턴스를 생성합니다.
func New(statusProvider contract.TargetStatusProvider) *Handler {
	if statusProvider == nil {
		panic("TargetStatusProvider는 필수입니다")
	}

	return &Handler{statusProvider: statusProvider}
}

// ListTargetsHandler godoc
// @Summary 점검 대상 상태 목록
// @Description 설정 파일에 정의된 순서대로 모든 점검 대상의 최신 상태를 반환합니다.
// @Tags Targets
// @Produce json
// @Success 200 {array} contract.TargetStatus
// @Failure 429 {object} response.ErrorResponse
// @Router /api/v1/targets [get]
func (h *Handler) ListTargetsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, h.statusProvider.Statuses())
}

// GetTargetHandler godoc
// @Summary 점검 대상 상태 조회
// @Tags Targets
// @Produce json
// @Param id path string true "점검 대상 ID"
// @Success 200 {object} contract.TargetStatus
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/targets/{id} [get]
func (h *Handler) GetTargetHandler(c echo.Context) error {
	id := c.Param("id")

	status, ok := h.statusProvider.Status(id)
	if !ok {
		return httputil.NewNotFoundError(fmt.Sprintf(constants.ErrMsgTargetNotFound, id))
	}

	return c.JSON(http.StatusOK, status)
}
