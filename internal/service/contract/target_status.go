package contract

import (
	"time"
)

// TargetState 점검 대상의 준비 상태
type TargetState string

const (
	// TargetStateUnknown 아직 한 번도 점검하지 않은 상태
	TargetStateUnknown TargetState = "unknown"

	// TargetStateReady health와 ready 엔드포인트가 모두 정상인 상태
	TargetStateReady TargetState = "ready"

	// TargetStateNotReady 마지막 점검이 실패한 상태
	TargetStateNotReady TargetState = "not_ready"
)

// TargetStatus 점검 대상 하나의 최신 상태입니다. 스냅샷으로 저장되고 상태 API로 노출됩니다.
type TargetStatus struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	BaseURL string      `json:"base_url"`
	State   TargetState `json:"state"`

	LastChecked time.Time `json:"last_checked"`
	LastChanged time.Time `json:"last_changed"`

	// LastError 마지막 점검 실패 사유 (성공 시 비어있음)
	LastError string `json:"last_error,omitempty"`

	ConsecutiveFailures int `json:"consecutive_failures"`
}

// IsReady 대상이 준비 완료 상태인지 여부를 반환합니다.
func (s TargetStatus) IsReady() bool {
	return s.State == TargetStateReady
}

// TargetStatusProvider 모니터가 수집한 점검 대상 상태를 조회하는 인터페이스입니다.
type TargetStatusProvider interface {
	// Initialized 모든 점검 대상에 대한 첫 번째 점검이 끝났는지 여부를 반환합니다.
	Initialized() bool

	// Statuses 설정 파일에 정의된 순서대로 모든 점검 대상의 상태를 반환합니다.
	Statuses() []TargetStatus

	// Status 지정된 점검 대상의 상태를 반환합니다. 존재하지 않으면 false를 반환합니다.
	Status(id string) (TargetStatus, bool)
}
