package concurrency

/*
生产者-消费者队列

原理：
生产者-消费者模式是一种并发设计模式，它将任务的生产和消费解耦，通过共享队列在二者之间传递数据。
生产者负责创建数据并放入队列，消费者负责从队列取出数据并处理。

关键特点：
1. 生产者和消费者可以以不同的速率工作
2. 队列作为缓冲区，平衡生产和消费的速率
3. 支持阻塞操作（队列满时生产者阻塞，队列空时消费者阻塞）
4. 支持多个生产者和多个消费者

实现方式：
- 使用单向链表作为共享队列：保存队尾迭代器，入队为InsertAfter(队尾)，出队为PopFront
- 单向链表本身不是线程安全的，由互斥锁保护，条件变量实现阻塞行为
- 阻塞操作接受context，取消时通过context.AfterFunc唤醒等待者
- 提供优雅关闭机制

以下实现了一个线程安全的生产者-消费者队列，支持阻塞操作和优雅关闭。
*/

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/strive/forwardlist/forwardlist"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// 错误定义
var (
	ErrQueueClosed = errors.New("queue closed")
	ErrQueueFull   = errors.New("queue full")
)

// BoundedQueue 有界队列，支持生产者-消费者模式
type BoundedQueue[T any] struct {
	mu           sync.Mutex
	items        forwardlist.List[T]     // 队列项
	tail         forwardlist.Iterator[T] // 队尾位置，队列为空时为前置位置
	capacity     int                     // 队列容量
	notEmpty     *sync.Cond              // 非空条件变量
	notFull      *sync.Cond              // 非满条件变量
	closed       atomic.Bool             // 关闭标志
	enqueueCount atomic.Int64            // 入队计数
	dequeueCount atomic.Int64            // 出队计数
}

// NewBoundedQueue 创建新的有界队列，容量不大于0时使用默认容量10
func NewBoundedQueue[T any](capacity int) *BoundedQueue[T] {
	if capacity <= 0 {
		capacity = 10
	}

	q := &BoundedQueue[T]{capacity: capacity}
	q.tail = q.items.BeforeBegin()
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	return q
}

// wakeOnDone 在ctx结束时唤醒cond上的所有等待者，返回的函数用于注销。
// 必须在持有q.mu时调用。
func (q *BoundedQueue[T]) wakeOnDone(ctx context.Context, cond *sync.Cond) (stop func() bool) {
	return context.AfterFunc(ctx, func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		cond.Broadcast()
	})
}

// Enqueue 将项添加到队列，如果队列已满则阻塞，直到有空位、队列关闭或ctx结束
func (q *BoundedQueue[T]) Enqueue(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed.Load() {
		return ErrQueueClosed
	}

	stop := q.wakeOnDone(ctx, q.notFull)
	defer stop()

	// 等待直到队列非满或关闭
	for q.items.Len() == q.capacity && !q.closed.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}
		q.notFull.Wait()
	}

	// 再次检查队列是否已关闭（等待期间可能已关闭）
	if q.closed.Load() {
		return ErrQueueClosed
	}

	q.push(item)
	return nil
}

// TryEnqueue 尝试将项添加到队列，队列已满时立即返回ErrQueueFull
func (q *BoundedQueue[T]) TryEnqueue(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed.Load() {
		return ErrQueueClosed
	}
	if q.items.Len() == q.capacity {
		return ErrQueueFull
	}
	q.push(item)
	return nil
}

// push 添加项到队尾，必须持有q.mu
func (q *BoundedQueue[T]) push(item T) {
	q.tail = q.items.InsertAfter(q.tail, item)
	q.enqueueCount.Add(1)

	// 通知等待的消费者
	q.notEmpty.Signal()
}

// Dequeue 从队列中取出项，如果队列为空则阻塞。
// 队列关闭后仍可取出剩余的项，取完后返回ErrQueueClosed。
func (q *BoundedQueue[T]) Dequeue(ctx context.Context) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	stop := q.wakeOnDone(ctx, q.notEmpty)
	defer stop()

	// 等待直到队列非空或关闭
	for q.items.Empty() && !q.closed.Load() {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		q.notEmpty.Wait()
	}

	// 如果队列为空且已关闭，返回错误
	if q.items.Empty() {
		return zero, ErrQueueClosed
	}

	// 从队头取出项
	item := q.items.PopFront()
	if q.items.Empty() {
		q.tail = q.items.BeforeBegin()
	}
	q.dequeueCount.Add(1)

	// 通知等待的生产者
	q.notFull.Signal()

	return item, nil
}

// Close 关闭队列，阻止进一步入队，允许已入队的项被出队
func (q *BoundedQueue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed.Swap(true) {
		// 通知所有等待的生产者和消费者
		q.notFull.Broadcast()
		q.notEmpty.Broadcast()
	}
}

// Size 返回队列中的项数
func (q *BoundedQueue[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

// Capacity 返回队列容量
func (q *BoundedQueue[T]) Capacity() int {
	return q.capacity
}

// IsClosed 返回队列是否已关闭
func (q *BoundedQueue[T]) IsClosed() bool {
	return q.closed.Load()
}

// QueueStats 队列统计信息
type QueueStats struct {
	Capacity     int
	Size         int
	EnqueueCount int64
	DequeueCount int64
	Closed       bool
}

// Stats 返回队列的统计信息
func (q *BoundedQueue[T]) Stats() QueueStats {
	q.mu.Lock()
	defer q.mu.Unlock()

	return QueueStats{
		Capacity:     q.capacity,
		Size:         q.items.Len(),
		EnqueueCount: q.enqueueCount.Load(),
		DequeueCount: q.dequeueCount.Load(),
		Closed:       q.closed.Load(),
	}
}

// DemoConfig 生产者-消费者演示的参数
type DemoConfig struct {
	Capacity  int           // 队列容量
	Producers int           // 生产者数量
	Consumers int           // 消费者数量
	Items     int           // 每个生产者产生的日志条目数
	Delay     time.Duration // 生产者每次入队后的间隔
}

// ProducerConsumerDemo 场景示例：日志收集系统
func ProducerConsumerDemo(ctx context.Context, w io.Writer, logger *zap.Logger, cfg DemoConfig) (QueueStats, error) {
	queue := NewBoundedQueue[string](cfg.Capacity)

	fmt.Fprintln(w, "日志收集系统场景（生产者-消费者模式）:")

	producers, pctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Producers; i++ {
		id := i
		producers.Go(func() error {
			for j := 0; j < cfg.Items; j++ {
				entry := fmt.Sprintf("日志-生产者%d-%d", id, j)
				if err := queue.Enqueue(pctx, entry); err != nil {
					return errors.Wrapf(err, "producer %d", id)
				}
				logger.Debug("produced", zap.Int("producer", id), zap.String("entry", entry))
				if cfg.Delay > 0 {
					time.Sleep(time.Duration(id+1) * cfg.Delay)
				}
			}
			return nil
		})
	}

	consumers, cctx := errgroup.WithContext(ctx)
	var consumed atomic.Int64
	for i := 0; i < cfg.Consumers; i++ {
		id := i
		consumers.Go(func() error {
			// 消费者处理日志直到队列关闭且为空
			for {
				entry, err := queue.Dequeue(cctx)
				if errors.Is(err, ErrQueueClosed) {
					logger.Debug("consumer exiting", zap.Int("consumer", id))
					return nil
				}
				if err != nil {
					return errors.Wrapf(err, "consumer %d", id)
				}
				consumed.Add(1)
				logger.Debug("consumed", zap.Int("consumer", id), zap.String("entry", entry))
			}
		})
	}

	// 等待生产者完成，然后关闭队列，不再接受新的日志
	perr := producers.Wait()
	queue.Close()
	fmt.Fprintln(w, "所有生产者完成生产，队列已关闭")

	// 等待消费者处理完所有日志
	if err := errors.CombineErrors(perr, consumers.Wait()); err != nil {
		return queue.Stats(), err
	}
	fmt.Fprintln(w, "所有消费者已完成处理")

	stats := queue.Stats()
	fmt.Fprintln(w, "\n队列统计:")
	fmt.Fprintf(w, "容量: %d\n", stats.Capacity)
	fmt.Fprintf(w, "最终大小: %d\n", stats.Size)
	fmt.Fprintf(w, "总入队数: %d\n", stats.EnqueueCount)
	fmt.Fprintf(w, "总出队数: %d\n", stats.DequeueCount)

	logger.Info("producer/consumer demo finished",
		zap.Int64("enqueued", stats.EnqueueCount),
		zap.Int64("consumed", consumed.Load()))
	return stats, nil
}
