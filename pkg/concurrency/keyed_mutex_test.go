package concurrency

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SameKeyIsExclusive(t *testing.T) {
	km := NewKeyedMutex()

	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			km.Lock("agileflow")
			n := inside.Add(1)
			for {
				cur := maxInside.Load()
				if n <= cur || maxInside.CompareAndSwap(cur, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
			km.Unlock("agileflow")
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
	assert.Zero(t, km.Len(), "모든 잠금이 해제되면 키가 정리되어야 합니다")
}

func TestKeyedMutex_DifferentKeysAreIndependent(t *testing.T) {
	km := NewKeyedMutex()

	km.Lock("a")
	defer km.Unlock("a")

	done := make(chan struct{})
	go func() {
		km.Lock("b")
		km.Unlock("b")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("다른 키의 잠금이 차단되었습니다")
	}
	assert.Equal(t, 1, km.Len())
}

func TestKeyedMutex_WithLock(t *testing.T) {
	km := NewKeyedMutex()
	errBoom := errors.New("boom")

	err := km.WithLock("k", func() error {
		assert.Equal(t, 1, km.Len())
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Zero(t, km.Len())
}

func TestKeyedMutex_UnlockWithoutLockPanics(t *testing.T) {
	km := NewKeyedMutex()

	assert.Panics(t, func() { km.Unlock("missing") })
}
