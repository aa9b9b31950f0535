package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkkaiser/agileflow-probe/internal/service/api/constants"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/model/response"
	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	"github.com/darkkaiser/agileflow-probe/internal/service/monitor/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	checkedAt = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	webStatus = contract.TargetStatus{
		ID:          "web",
		Title:       "AgileFlow Web",
		BaseURL:     "https://agileflow.example.com",
		State:       contract.TargetStateReady,
		LastChecked: checkedAt,
		LastChanged: checkedAt,
	}
	stagingStatus = contract.TargetStatus{
		ID:                  "staging",
		Title:               "AgileFlow Staging",
		BaseURL:             "https://staging.example.com",
		State:               contract.TargetStateNotReady,
		LastChecked:         checkedAt,
		LastError:           "[Unavailable] 헬스체크 요청 실패",
		ConsecutiveFailures: 3,
	}
)

func TestNew_PanicsWithoutStatusProvider(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}

func TestListTargetsHandler(t *testing.T) {
	t.Run("Returns statuses in provider order", func(t *testing.T) {
		h := New(mocks.NewMockTargetStatusProvider(webStatus, stagingStatus))

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/targets", nil), rec)

		require.NoError(t, h.ListTargetsHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got []contract.TargetStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, []contract.TargetStatus{webStatus, stagingStatus}, got)
	})

	t.Run("Empty list is rendered as an array", func(t *testing.T) {
		h := New(mocks.NewMockTargetStatusProvider())

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/targets", nil), rec)

		require.NoError(t, h.ListTargetsHandler(c))
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestGetTargetHandler(t *testing.T) {
	h := New(mocks.NewMockTargetStatusProvider(webStatus, stagingStatus))

	t.Run("Known target", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/targets/staging", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("staging")

		require.NoError(t, h.GetTargetHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got contract.TargetStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, stagingStatus, got)
	})

	t.Run("Unknown target", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/targets/missing", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues("missing")

		err := h.GetTargetHandler(c)
		require.Error(t, err)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
		assert.Equal(t, response.ErrorResponse{
			ResultCode: http.StatusNotFound,
			Message:    fmt.Sprintf(constants.ErrMsgTargetNotFound, "missing"),
		}, httpErr.Message)
	})
}
