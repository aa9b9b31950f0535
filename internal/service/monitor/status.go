package monitor

import (
	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
	"github.com/darkkaiser/agileflow-probe/internal/readiness/fetcher"
	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
)

// Initialized 첫 번째 점검 라운드가 끝났는지 여부를 반환합니다.
func (s *Service) Initialized() bool {
	return s.initialized.Load()
}

// Statuses 설정 파일에 정의된 순서대로 모든 대상의 상태 복사본을 반환합니다.
func (s *Service) Statuses() []contract.TargetStatus {
	s.statusesMu.RLock()
	defer s.statusesMu.RUnlock()

	statuses := make([]contract.TargetStatus, 0, len(s.appConfig.Targets))
	for _, t := range s.appConfig.Targets {
		if st, ok := s.statuses[t.ID]; ok {
			statuses = append(statuses, *st)
		}
	}

	return statuses
}

// Status 지정된 대상의 상태 복사본을 반환합니다.
func (s *Service) Status(id string) (contract.TargetStatus, bool) {
	s.statusesMu.RLock()
	defer s.statusesMu.RUnlock()

	st, ok := s.statuses[id]
	if !ok {
		return contract.TargetStatus{}, false
	}

	return *st, true
}

func (s *Service) readyCount() int {
	s.statusesMu.RLock()
	defer s.statusesMu.RUnlock()

	n := 0
	for _, st := range s.statuses {
		if st.IsReady() {
			n++
		}
	}

	return n
}

// restoreStatuses 모든 대상의 상태를 unknown으로 초기화한 뒤, 저장된 스냅샷이 있으면 이전 상태를 복원합니다.
//
// ID, 제목, URL은 항상 현재 설정 값을 사용하며, URL의 인증 정보는 가립니다.
func (s *Service) restoreStatuses() {
	s.statusesMu.Lock()
	defer s.statusesMu.Unlock()

	s.statuses = make(map[string]*contract.TargetStatus, len(s.targets))

	for _, t := range s.targets {
		st := &contract.TargetStatus{
			ID:      t.config.ID,
			Title:   t.config.DisplayName(),
			BaseURL: fetcher.RedactRawURL(t.config.BaseURL),
			State:   contract.TargetStateUnknown,
		}
		s.statuses[t.config.ID] = st

		if s.store == nil {
			continue
		}

		var saved contract.TargetStatus
		if err := s.store.Load(t.config.ID, &saved); err != nil {
			if !apperrors.Is(err, apperrors.NotFound) {
				applog.WithComponentAndFields(component, applog.Fields{
					"target_id": t.config.ID,
					"error":     err,
				}).Warn("상태 스냅샷 복원 실패: unknown 상태로 시작합니다")
			}
			continue
		}

		switch saved.State {
		case contract.TargetStateReady, contract.TargetStateNotReady:
			st.State = saved.State
			st.LastChecked = saved.LastChecked
			st.LastChanged = saved.LastChanged
			st.LastError = saved.LastError
			st.ConsecutiveFailures = saved.ConsecutiveFailures

			applog.WithComponentAndFields(component, applog.Fields{
				"target_id":    t.config.ID,
				"state":        st.State,
				"last_changed": st.LastChanged,
			}).Debug("이전 실행의 상태 스냅샷을 복원했습니다")
		}
	}
}

// persist 상태 스냅샷을 저장합니다. 실패해도 점검은 계속되며 경고 로그만 남깁니다.
func (s *Service) persist(st contract.TargetStatus) {
	if s.store == nil {
		return
	}

	if err := s.store.Save(st.ID, st); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"target_id": st.ID,
			"error":     err,
		}).Warn("상태 스냅샷 저장 실패")
	}
}
