// Package concurrency 동시성 제어에 필요한 보조 도구를 제공합니다.
package concurrency

import (
	"sync"
)

// KeyedMutex 키(예: 점검 대상 ID) 단위로 독립적인 잠금을 제공합니다.
// 서로 다른 키는 동시에 잠글 수 있고, 같은 키는 순차적으로만 잠깁니다.
//
// 키별 잠금 객체는 참조 카운트로 관리되며, 마지막 사용자가 Unlock하면 즉시 해제되므로
// 키가 많아져도 메모리가 누적되지 않습니다.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

// NewKeyedMutex 새로운 KeyedMutex 인스턴스를 생성합니다.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*refMutex),
	}
}

// Lock key에 대한 잠금을 획득할 때까지 대기합니다.
func (km *KeyedMutex) Lock(key string) {
	km.mu.Lock()
	m, ok := km.locks[key]
	if !ok {
		m = &refMutex{}
		km.locks[key] = m
	}
	m.refs++
	km.mu.Unlock()

	m.Lock()
}

// Unlock key에 대한 잠금을 해제합니다. 잠기지 않은 키를 해제하면 패닉이 발생합니다.
func (km *KeyedMutex) Unlock(key string) {
	km.mu.Lock()
	defer km.mu.Unlock()

	m, ok := km.locks[key]
	if !ok {
		panic("concurrency: 잠기지 않은 키의 잠금 해제 시도: " + key)
	}

	m.Unlock()

	m.refs--
	if m.refs == 0 {
		delete(km.locks, key)
	}
}

// WithLock key를 잠근 상태로 fn을 실행합니다.
func (km *KeyedMutex) WithLock(key string, fn func() error) error {
	km.Lock(key)
	defer km.Unlock(key)

	return fn()
}

// Len 현재 사용 중인(잠겨 있거나 대기 중인) 키의 개수를 반환합니다.
func (km *KeyedMutex) Len() int {
	km.mu.Lock()
	defer km.mu.Unlock()

	return len(km.locks)
}
