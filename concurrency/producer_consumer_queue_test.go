package concurrency

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func TestBoundedQueueFIFO(t *testing.T) {
	ctx := context.Background()
	q := NewBoundedQueue[int](3)
	require.Equal(t, 3, q.Capacity())

	for i := 1; i <= 3; i++ {
		require.NoError(t, q.Enqueue(ctx, i))
	}
	require.ErrorIs(t, q.TryEnqueue(4), ErrQueueFull)
	require.Equal(t, 3, q.Size())

	for i := 1; i <= 3; i++ {
		v, err := q.Dequeue(ctx)
		require.NoError(t, err)
		require.Equal(t, i, v)
	}

	// 清空后队尾重新回到前置位置
	require.NoError(t, q.TryEnqueue(5))
	require.NoError(t, q.TryEnqueue(6))
	v, err := q.Dequeue(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.NoError(t, q.TryEnqueue(7))
	v, _ = q.Dequeue(ctx)
	require.Equal(t, 6, v)
	v, _ = q.Dequeue(ctx)
	require.Equal(t, 7, v)

	stats := q.Stats()
	require.Equal(t, QueueStats{Capacity: 3, Size: 0, EnqueueCount: 6, DequeueCount: 6}, stats)
}

func TestBoundedQueueDefaultCapacity(t *testing.T) {
	require.Equal(t, 10, NewBoundedQueue[string](0).Capacity())
	require.Equal(t, 10, NewBoundedQueue[string](-3).Capacity())
}

func TestBoundedQueueBlocksUntilSpace(t *testing.T) {
	ctx := context.Background()
	q := NewBoundedQueue[int](1)
	require.NoError(t, q.Enqueue(ctx, 1))

	done := make(chan error, 1)
	go func() { done <- q.Enqueue(ctx, 2) }()

	select {
	case err := <-done:
		t.Fatalf("enqueue into full queue returned early: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	v, err := q.Dequeue(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.NoError(t, <-done)

	v, err = q.Dequeue(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestBoundedQueueContextCancel(t *testing.T) {
	q := NewBoundedQueue[int](1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := q.Dequeue(ctx)
		done <- err
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	require.NoError(t, q.Enqueue(context.Background(), 1))
	tctx, tcancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer tcancel()
	require.ErrorIs(t, q.Enqueue(tctx, 2), context.DeadlineExceeded)
	require.Equal(t, 1, q.Size())
}

func TestBoundedQueueClose(t *testing.T) {
	ctx := context.Background()
	q := NewBoundedQueue[string](2)
	require.NoError(t, q.Enqueue(ctx, "a"))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	// 一个消费者取走剩余项，另一个阻塞直到关闭
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = q.Dequeue(ctx)
		}(i)
	}
	time.Sleep(10 * time.Millisecond)
	q.Close()
	q.Close()
	wg.Wait()

	require.True(t, q.IsClosed())
	closedCount := 0
	for _, err := range errs {
		if errors.Is(err, ErrQueueClosed) {
			closedCount++
		} else {
			require.NoError(t, err)
		}
	}
	require.Equal(t, 1, closedCount)
	require.ErrorIs(t, q.Enqueue(ctx, "b"), ErrQueueClosed)
	require.ErrorIs(t, q.TryEnqueue("b"), ErrQueueClosed)
}

func TestBoundedQueueDrainsAfterClose(t *testing.T) {
	ctx := context.Background()
	q := NewBoundedQueue[int](4)
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Enqueue(ctx, i))
	}
	q.Close()
	for i := 0; i < 3; i++ {
		v, err := q.Dequeue(ctx)
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	_, err := q.Dequeue(ctx)
	require.ErrorIs(t, err, ErrQueueClosed)
}

func TestBoundedQueueConcurrent(t *testing.T) {
	const producers, perProducer = 4, 250
	ctx := context.Background()
	q := NewBoundedQueue[int](8)

	var g errgroup.Group
	for p := 0; p < producers; p++ {
		base := p * perProducer
		g.Go(func() error {
			for i := 0; i < perProducer; i++ {
				if err := q.Enqueue(ctx, base+i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	var mu sync.Mutex
	var got []int
	var consumers errgroup.Group
	for c := 0; c < 3; c++ {
		consumers.Go(func() error {
			last := map[int]int{}
			for {
				v, err := q.Dequeue(ctx)
				if errors.Is(err, ErrQueueClosed) {
					return nil
				}
				if err != nil {
					return err
				}
				// 同一生产者的项按入队顺序被取出
				p := v / perProducer
				if prev, ok := last[p]; ok && prev >= v {
					return errors.Newf("producer %d out of order: %d after %d", p, v, prev)
				}
				last[p] = v
				mu.Lock()
				got = append(got, v)
				mu.Unlock()
			}
		})
	}

	require.NoError(t, g.Wait())
	q.Close()
	require.NoError(t, consumers.Wait())

	sort.Ints(got)
	want := make([]int, producers*perProducer)
	for i := range want {
		want[i] = i
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("consumed items mismatch (-want +got):\n%s", diff)
	}
}

func TestProducerConsumerDemo(t *testing.T) {
	var buf bytes.Buffer
	stats, err := ProducerConsumerDemo(context.Background(), &buf, zap.NewNop(), DemoConfig{
		Capacity:  2,
		Producers: 3,
		Consumers: 2,
		Items:     5,
	})
	require.NoError(t, err)
	require.Equal(t, int64(15), stats.EnqueueCount)
	require.Equal(t, int64(15), stats.DequeueCount)
	require.True(t, stats.Closed)
	require.Contains(t, buf.String(), "总出队数: 15")
}

func TestProducerConsumerDemoCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	_, err := ProducerConsumerDemo(ctx, &buf, zap.NewNop(), DemoConfig{
		Capacity:  1,
		Producers: 1,
		Consumers: 1,
		Items:     3,
	})
	require.ErrorIs(t, err, context.Canceled)
}
