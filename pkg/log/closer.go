package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer 로그 파일들과 hook의 해제를 한 번에 처리합니다.
// hook을 먼저 닫아 해제 중인 파일에 쓰기가 일어나지 않도록 하며, 여러 번 호출해도 안전합니다.
type closer struct {
	closers []io.Closer

	hook *hook

	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if s, ok := cl.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
