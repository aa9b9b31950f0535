// Package system 시스템 엔드포인트의 응답 모델을 정의합니다.
package system

// HealthResponse 헬스체크(/api/health) 응답
type HealthResponse struct {
	// Status 프로세스가 살아있으면 항상 "ok"
	Status string `json:"status" example:"ok"`

	// Uptime 서버 가동 시간(초)
	Uptime int64 `json:"uptime" example:"3600"`

	// Dependencies 외부 의존성별 상태 (키: 의존성 이름)
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}

// DependencyStatus 외부 의존성의 상태
type DependencyStatus struct {
	// Status healthy, unhealthy
	Status string `json:"status" example:"healthy"`

	Message string `json:"message,omitempty" example:"정상 작동 중"`
}

// ReadyResponse 준비 상태(/api/ready) 응답
type ReadyResponse struct {
	// Status ready 또는 not_ready
	Status string `json:"status" example:"ready"`

	Message string `json:"message,omitempty" example:"첫 번째 점검 라운드가 아직 완료되지 않았습니다"`
}
