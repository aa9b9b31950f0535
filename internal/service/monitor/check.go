package monitor

import (
	"context"
	"fmt"

	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
	"github.com/darkkaiser/agileflow-probe/internal/pkg/mark"
	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
)

// checkTarget 대상을 한 번 점검하고 상태를 갱신합니다.
// 상태가 바뀌면 스냅샷을 저장하고, 알릴 만한 전이라면 알림을 보냅니다.
//
// 서비스 종료로 ctx가 취소되어 중단된 점검 결과는 반영하지 않습니다.
func (s *Service) checkTarget(ctx context.Context, t *target) {
	err := t.checker.Check(ctx)
	if ctx.Err() != nil {
		return
	}

	now := s.clock.Now()

	s.statusesMu.Lock()
	st, ok := s.statuses[t.config.ID]
	if !ok {
		s.statusesMu.Unlock()
		return
	}

	prev := st.State
	st.LastChecked = now
	if err == nil {
		st.State = contract.TargetStateReady
		st.LastError = ""
		st.ConsecutiveFailures = 0
	} else {
		st.State = contract.TargetStateNotReady
		st.LastError = err.Error()
		st.ConsecutiveFailures++
	}

	changed := prev != st.State
	if changed {
		st.LastChanged = now
	}

	current := *st
	s.statusesMu.Unlock()

	fields := applog.Fields{
		"target_id":            current.ID,
		"state":                current.State,
		"previous_state":       prev,
		"consecutive_failures": current.ConsecutiveFailures,
	}
	if err != nil {
		fields["error_type"] = apperrors.UnderlyingType(err).String()
		fields["error"] = err.Error()
	}
	logger := applog.WithComponentAndFields(component, fields)

	if !changed {
		logger.Debug("점검 완료: 상태 변화 없음")
		return
	}

	if current.IsReady() {
		logger.Info("상태 변경: 대상 서비스가 준비되었습니다")
	} else {
		logger.Warn("상태 변경: 대상 서비스가 준비되지 않았습니다")
	}

	s.persist(current)

	if t.config.Notify && shouldAnnounce(prev, current.State) {
		s.announce(t, current)
	}
}

// shouldAnnounce 상태 전이를 알려야 하는지 판단합니다.
// 처음 점검에서 바로 준비 완료로 확인된 경우(unknown → ready)는 알리지 않습니다.
func shouldAnnounce(prev, next contract.TargetState) bool {
	if prev == next {
		return false
	}

	switch next {
	case contract.TargetStateNotReady:
		return true
	case contract.TargetStateReady:
		return prev == contract.TargetStateNotReady
	default:
		return false
	}
}

func (s *Service) announce(t *target, st contract.TargetStatus) {
	notification := contract.Notification{
		NotifierID: contract.NotifierID(t.config.NotifierID),
		Title:      t.config.DisplayName(),
		Message:    transitionMessage(st),
	}
	notification.ErrorOccurred = !st.IsReady()

	if err := s.notificationSender.Notify(notification); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"target_id":   st.ID,
			"notifier_id": t.config.NotifierID,
			"error":       err,
		}).Error("상태 변경 알림 전송 실패")
	}
}

func transitionMessage(st contract.TargetStatus) string {
	when := st.LastChanged.Format("2006-01-02 15:04:05")

	if st.IsReady() {
		return fmt.Sprintf("서비스가 다시 준비 상태가 되었습니다.%s\n\n대상: %s\n시각: %s", mark.ForState(st.State).WithSpace(), st.BaseURL, when)
	}

	return fmt.Sprintf("서비스가 준비되지 않았습니다.%s\n\n대상: %s\n시각: %s\n원인: %s", mark.ForState(st.State).WithSpace(), st.BaseURL, when, st.LastError)
}
