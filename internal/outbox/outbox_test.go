package outbox

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"agencyflow/internal/pkg/config"
)

func newTestOutbox(workers, queueSize, retryCount int) *Outbox {
	return New(&config.OutboxConfig{
		Workers:      workers,
		QueueSize:    queueSize,
		RetryCount:   retryCount,
		RetryBackoff: time.Millisecond,
	}, zap.NewNop())
}

func TestOutbox_执行入队任务(t *testing.T) {
	o := newTestOutbox(2, 16, 0)
	o.Start()

	var count int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		o.Enqueue("test", func(ctx context.Context) error {
			defer wg.Done()
			atomic.AddInt32(&count, 1)
			return nil
		})
	}

	wg.Wait()
	o.Stop()
	assert.Equal(t, int32(10), atomic.LoadInt32(&count))
}

func TestOutbox_失败任务按配置重试(t *testing.T) {
	o := newTestOutbox(1, 4, 3)
	o.Start()

	var attempts int32
	done := make(chan struct{})
	o.Enqueue("flaky", func(ctx context.Context) error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return errors.New("smtp unavailable")
		}
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("任务未在预期时间内重试成功")
	}
	o.Stop()
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestOutbox_重试次数耗尽后放弃(t *testing.T) {
	o := newTestOutbox(1, 4, 2)
	o.Start()

	var attempts int32
	o.Enqueue("broken", func(ctx context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("permanent failure")
	})

	o.Stop()
	// 首次执行 + 2次重试
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestOutbox_Stop后丢弃新任务(t *testing.T) {
	o := newTestOutbox(1, 4, 0)
	o.Start()
	o.Stop()

	var count int32
	o.Enqueue("late", func(ctx context.Context) error {
		atomic.AddInt32(&count, 1)
		return nil
	})

	assert.Equal(t, int32(0), atomic.LoadInt32(&count))
}

func TestOutbox_Stop前处理完剩余任务(t *testing.T) {
	o := newTestOutbox(1, 32, 0)
	o.Start()

	var count int32
	for i := 0; i < 20; i++ {
		o.Enqueue("drain", func(ctx context.Context) error {
			atomic.AddInt32(&count, 1)
			return nil
		})
	}

	o.Stop()
	assert.Equal(t, int32(20), atomic.LoadInt32(&count))
}
