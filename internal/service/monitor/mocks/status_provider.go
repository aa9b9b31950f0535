// Package mocks 모니터 서비스의 테스트 대역을 제공합니다.
package mocks

import (
	"sync"

	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
)

var _ contract.TargetStatusProvider = (*MockTargetStatusProvider)(nil)

// MockTargetStatusProvider 고정된 상태 목록을 반환하는 테스트용 TargetStatusProvider 구현체입니다.
type MockTargetStatusProvider struct {
	mu sync.RWMutex

	initialized bool
	statuses    []contract.TargetStatus
}

// NewMockTargetStatusProvider 주어진 상태 목록으로 Mock 객체를 생성합니다.
func NewMockTargetStatusProvider(statuses ...contract.TargetStatus) *MockTargetStatusProvider {
	return &MockTargetStatusProvider{statuses: statuses}
}

// SetInitialized 첫 번째 점검 라운드 완료 여부를 설정합니다.
func (m *MockTargetStatusProvider) SetInitialized(initialized bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.initialized = initialized
}

func (m *MockTargetStatusProvider) Initialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.initialized
}

func (m *MockTargetStatusProvider) Statuses() []contract.TargetStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]contract.TargetStatus{}, m.statuses...)
}

func (m *MockTargetStatusProvider) Status(id string) (contract.TargetStatus, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.statuses {
		if s.ID == id {
			return s, true
		}
	}
	return contract.TargetStatus{}, false
}
