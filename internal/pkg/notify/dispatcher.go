package notify

import (
	"context"
	"sync"
	"time"
)

// Dispatcher 触发通知扇出，不阻塞调用方
type Dispatcher interface {
	Dispatch(ctx context.Context, sub *Submission)
}

// AsyncDispatcher 在独立 goroutine 中执行扇出，脱离请求的取消信号
type AsyncDispatcher struct {
	notifier *Notifier
	timeout  time.Duration
	wg       sync.WaitGroup
}

func NewAsyncDispatcher(notifier *Notifier, timeout time.Duration) *AsyncDispatcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AsyncDispatcher{notifier: notifier, timeout: timeout}
}

func (d *AsyncDispatcher) Dispatch(ctx context.Context, sub *Submission) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()
		d.notifier.Notify(bgCtx, sub)
	}()
}

// Wait 等待已触发的扇出结束，用于优雅退出
func (d *AsyncDispatcher) Wait() {
	d.wg.Wait()
}
