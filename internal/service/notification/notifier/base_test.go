package notifier

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/agileflow-probe/internal/config"
	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBase_Send(t *testing.T) {
	t.Run("Enqueue", func(t *testing.T) {
		b := NewBase("test", 1, 10*time.Millisecond)

		require.NoError(t, b.Send(context.Background(), contract.NewNotification("hello")))

		req := <-b.RequestC()
		assert.Equal(t, "hello", req.Notification.Message)
		assert.NotNil(t, req.Ctx)
	})

	t.Run("Nil context", func(t *testing.T) {
		b := NewBase("test", 1, 10*time.Millisecond)

		//nolint:staticcheck // nil Context 처리를 검증합니다.
		require.NoError(t, b.Send(nil, contract.NewNotification("hello")))
	})

	t.Run("Empty message", func(t *testing.T) {
		b := NewBase("test", 1, 10*time.Millisecond)

		assert.ErrorIs(t, b.Send(context.Background(), contract.NewNotification(" ")), contract.ErrMessageRequired)
	})

	t.Run("Queue full", func(t *testing.T) {
		b := NewBase("test", 1, 20*time.Millisecond)

		require.NoError(t, b.Send(context.Background(), contract.NewNotification("1")))
		assert.ErrorIs(t, b.Send(context.Background(), contract.NewNotification("2")), ErrQueueFull)
	})

	t.Run("Canceled context", func(t *testing.T) {
		b := NewBase("test", 1, time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, b.Send(ctx, contract.NewNotification("1")), context.Canceled)
	})

	t.Run("Closed", func(t *testing.T) {
		b := NewBase("test", 1, time.Second)
		b.Close()
		b.Close()

		assert.True(t, b.IsClosed())
		assert.ErrorIs(t, b.Send(context.Background(), contract.NewNotification("1")), ErrClosed)

		select {
		case <-b.Done():
		default:
			t.Fatal("Done 채널이 닫혀야 합니다")
		}
	})

	t.Run("Close unblocks waiting sender", func(t *testing.T) {
		b := NewBase("test", 1, 5*time.Second)
		require.NoError(t, b.Send(context.Background(), contract.NewNotification("1")))

		errC := make(chan error, 1)
		go func() {
			errC <- b.Send(context.Background(), contract.NewNotification("2"))
		}()

		time.Sleep(20 * time.Millisecond)
		b.Close()

		select {
		case err := <-errC:
			assert.ErrorIs(t, err, ErrClosed)
		case <-time.After(time.Second):
			t.Fatal("Close 이후 대기 중인 Send가 반환되어야 합니다")
		}
	})
}

func TestBase_Drain(t *testing.T) {
	t.Run("Processes remaining requests", func(t *testing.T) {
		b := NewBase("test", 5, time.Second)
		for _, m := range []string{"a", "b", "c"} {
			require.NoError(t, b.Send(context.Background(), contract.NewNotification(m)))
		}

		var handled []string
		dropped := b.Drain(context.Background(), time.Second, func(_ context.Context, req *Request) {
			handled = append(handled, req.Notification.Message)
		})

		assert.Zero(t, dropped)
		assert.Equal(t, []string{"a", "b", "c"}, handled)
		assert.True(t, b.IsClosed())
	})

	t.Run("Drops when context expired", func(t *testing.T) {
		b := NewBase("test", 5, time.Second)
		for _, m := range []string{"a", "b"} {
			require.NoError(t, b.Send(context.Background(), contract.NewNotification(m)))
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		dropped := b.Drain(ctx, time.Second, func(context.Context, *Request) { called = true })

		assert.False(t, called)
		assert.Equal(t, 2, dropped)
	})
}

func TestBase_ConcurrentSendAndClose(t *testing.T) {
	b := NewBase("test", 100, 10*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = b.Send(context.Background(), contract.NewNotification("msg"))
		}()
	}

	b.Drain(context.Background(), time.Second, func(context.Context, *Request) {})
	wg.Wait()

	assert.ErrorIs(t, b.Send(context.Background(), contract.NewNotification("late")), ErrClosed)
}

type stubNotifier struct {
	*Base
}

func (s *stubNotifier) Run(context.Context) {}

func TestFactory_CreateNotifiers(t *testing.T) {
	appConfig := &config.AppConfig{}

	f := NewFactory(
		func(*config.AppConfig) ([]Notifier, error) {
			return []Notifier{&stubNotifier{NewBase("a", 1, time.Second)}}, nil
		},
		nil,
	)
	f.Register(func(*config.AppConfig) ([]Notifier, error) {
		return []Notifier{&stubNotifier{NewBase("b", 1, time.Second)}}, nil
	})

	notifiers, err := f.CreateNotifiers(appConfig)
	require.NoError(t, err)
	require.Len(t, notifiers, 2)
	assert.Equal(t, contract.NotifierID("a"), notifiers[0].ID())
	assert.Equal(t, contract.NotifierID("b"), notifiers[1].ID())

	f.Register(func(*config.AppConfig) ([]Notifier, error) {
		return nil, ErrClosed
	})
	_, err = f.CreateNotifiers(appConfig)
	assert.ErrorIs(t, err, ErrClosed)
}
