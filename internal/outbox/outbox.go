package outbox

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"agencyflow/internal/pkg/config"
)

// Job 待执行的副作用任务(站内通知落库/邮件发送)
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Queue 副作用队列接口, 主事务路径只入队, 不等待执行结果
type Queue interface {
	// Enqueue 提交任务, 队列满时丢弃并记录日志, 不阻塞调用方
	Enqueue(name string, run func(ctx context.Context) error)
}

// Outbox 进程内副作用队列, 固定worker池消费, 失败按次数重试
type Outbox struct {
	cfg    *config.OutboxConfig
	logger *zap.Logger

	jobs   chan *Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

func New(cfg *config.OutboxConfig, logger *zap.Logger) *Outbox {
	ctx, cancel := context.WithCancel(context.Background())
	return &Outbox{
		cfg:    cfg,
		logger: logger,
		jobs:   make(chan *Job, cfg.QueueSize),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start 启动worker池
func (o *Outbox) Start() {
	for i := 0; i < o.cfg.Workers; i++ {
		o.wg.Add(1)
		go o.worker(i)
	}
	o.logger.Info("Outbox已启动",
		zap.Int("workers", o.cfg.Workers),
		zap.Int("queue_size", o.cfg.QueueSize))
}

// Stop 停止接收新任务, 处理完队列中剩余任务后返回
func (o *Outbox) Stop() {
	o.mu.Lock()
	if o.stopped {
		o.mu.Unlock()
		return
	}
	o.stopped = true
	close(o.jobs)
	o.mu.Unlock()

	o.wg.Wait()
	o.cancel()
	o.logger.Info("Outbox已停止")
}

// Enqueue 提交任务
func (o *Outbox) Enqueue(name string, run func(ctx context.Context) error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopped {
		o.logger.Warn("Outbox已停止,丢弃任务", zap.String("job", name))
		return
	}

	select {
	case o.jobs <- &Job{Name: name, Run: run}:
	default:
		o.logger.Error("Outbox队列已满,丢弃任务", zap.String("job", name))
	}
}

func (o *Outbox) worker(id int) {
	defer o.wg.Done()
	for job := range o.jobs {
		o.process(id, job)
	}
}

// process 执行任务, 失败后按退避间隔重试, 最终失败只记日志
func (o *Outbox) process(workerID int, job *Job) {
	var err error
	for attempt := 0; attempt <= o.cfg.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(o.cfg.RetryBackoff * time.Duration(attempt)):
			case <-o.ctx.Done():
				return
			}
		}

		if err = job.Run(o.ctx); err == nil {
			if attempt > 0 {
				o.logger.Info("Outbox任务重试成功",
					zap.String("job", job.Name),
					zap.Int("attempt", attempt))
			}
			return
		}

		o.logger.Warn("Outbox任务执行失败",
			zap.String("job", job.Name),
			zap.Int("worker", workerID),
			zap.Int("attempt", attempt),
			zap.Error(err))
	}

	o.logger.Error("Outbox任务最终失败",
		zap.String("job", job.Name),
		zap.Int("retries", o.cfg.RetryCount),
		zap.Error(err))
}
