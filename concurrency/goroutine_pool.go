package concurrency

/*
协程池（Goroutine Pool）实现

原理：
协程池是一种资源管理模式，预先创建一定数量的goroutine，通过任务队列向这些goroutine分配工作，
从而避免频繁创建和销毁goroutine带来的开销。

关键特点：
1. 控制并发度，限制同时运行的goroutine数量
2. 重用goroutine，避免频繁的创建和销毁
3. 管理任务队列，提供优雅的提交和处理机制
4. 支持优雅关闭，等待所有任务完成

实现方式：
- 使用有界队列（BoundedQueue，底层为单向链表）作为任务队列
- 创建固定数量的worker goroutine处理任务
- Shutdown关闭队列并等待已提交的任务执行完；Stop取消上下文，丢弃未执行的任务

以下实现了一个基本的协程池，支持提交任务、关闭池和等待所有任务完成。
*/

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ErrPoolClosed 向已关闭的协程池提交任务时返回
var ErrPoolClosed = errors.New("goroutine pool closed")

// GoroutineTask 表示要执行的任务
type GoroutineTask func() error

// GoroutinePool 协程池
type GoroutinePool struct {
	workers      int                          // 工作协程数量
	tasks        *BoundedQueue[GoroutineTask] // 任务队列
	ctx          context.Context              // 用于控制池生命周期的上下文
	cancel       context.CancelFunc           // 取消函数
	wg           sync.WaitGroup               // 等待所有工作协程完成
	taskCount    atomic.Int64                 // 已提交任务数
	errorCount   atomic.Int64                 // 错误任务数
	successCount atomic.Int64                 // 成功任务数
}

// NewGoroutinePool 创建新的协程池
func NewGoroutinePool(workers int, queueSize int) *GoroutinePool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 100
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool := &GoroutinePool{
		workers: workers,
		tasks:   NewBoundedQueue[GoroutineTask](queueSize),
		ctx:     ctx,
		cancel:  cancel,
	}

	// 启动工作协程
	pool.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go pool.worker()
	}
	return pool
}

// worker 工作协程主循环，队列关闭并取空或池被取消时退出
func (p *GoroutinePool) worker() {
	defer p.wg.Done()

	for {
		task, err := p.tasks.Dequeue(p.ctx)
		if err != nil {
			return
		}
		if err := task(); err != nil {
			p.errorCount.Add(1)
		} else {
			p.successCount.Add(1)
		}
	}
}

// Submit 提交任务到池，任务队列已满时阻塞
func (p *GoroutinePool) Submit(ctx context.Context, task GoroutineTask) error {
	if err := p.tasks.Enqueue(ctx, task); err != nil {
		if errors.Is(err, ErrQueueClosed) {
			return ErrPoolClosed
		}
		return err
	}
	p.taskCount.Add(1)
	return nil
}

// Shutdown 关闭协程池并等待所有已提交的任务完成
func (p *GoroutinePool) Shutdown() {
	p.tasks.Close()
	p.wg.Wait()
	p.cancel()
}

// Stop 立即关闭协程池，未开始执行的任务被丢弃
func (p *GoroutinePool) Stop() {
	p.tasks.Close()
	p.cancel()
	p.wg.Wait()
}

// PoolStats 协程池统计信息
type PoolStats struct {
	Workers      int
	Running      bool
	TaskCount    int64
	ErrorCount   int64
	SuccessCount int64
	PendingTasks int
}

// Stats 返回协程池统计信息
func (p *GoroutinePool) Stats() PoolStats {
	return PoolStats{
		Workers:      p.workers,
		Running:      !p.tasks.IsClosed(),
		TaskCount:    p.taskCount.Load(),
		ErrorCount:   p.errorCount.Load(),
		SuccessCount: p.successCount.Load(),
		PendingTasks: p.tasks.Size(),
	}
}

// GoroutinePoolDemo 场景示例：Web服务器请求处理
func GoroutinePoolDemo(ctx context.Context, w io.Writer, logger *zap.Logger, workers, queueSize, requests int) (PoolStats, error) {
	pool := NewGoroutinePool(workers, queueSize)

	fmt.Fprintln(w, "Web服务器请求处理场景（使用协程池）:")

	for i := 0; i < requests; i++ {
		requestID := i
		err := pool.Submit(ctx, func() error {
			// 模拟请求处理
			time.Sleep(time.Duration(requestID%5) * time.Millisecond)

			// 模拟一些失败（每10个请求中有1个失败）
			if requestID%10 == 0 {
				logger.Debug("request failed", zap.Int("request", requestID))
				return errors.Newf("request %d failed", requestID)
			}
			return nil
		})
		if err != nil {
			pool.Stop()
			return pool.Stats(), errors.Wrapf(err, "submitting request %d", requestID)
		}
	}

	// 等待所有请求处理完成
	pool.Shutdown()

	stats := pool.Stats()
	fmt.Fprintln(w, "\n协程池统计:")
	fmt.Fprintf(w, "工作协程: %d\n", stats.Workers)
	fmt.Fprintf(w, "提交任务总数: %d\n", stats.TaskCount)
	fmt.Fprintf(w, "成功任务数: %d\n", stats.SuccessCount)
	fmt.Fprintf(w, "失败任务数: %d\n", stats.ErrorCount)
	fmt.Fprintln(w, "\n协程池已关闭")

	logger.Info("goroutine pool demo finished",
		zap.Int64("succeeded", stats.SuccessCount),
		zap.Int64("failed", stats.ErrorCount))
	return stats, nil
}
