package notify

import (
	"context"
	"fmt"
	log "log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result 单个渠道的投递结果
type Result struct {
	Sink    string
	Err     error
	Latency time.Duration
}

// Report 一次扇出的汇总，只记录日志，不回传给提交者
type Report struct {
	Type         string
	SubmissionID string
	Results      []Result
}

// Failed 投递失败的渠道
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

func (r *Report) Delivered() int {
	return len(r.Results) - len(r.Failed())
}

// Log 输出汇总日志
func (r *Report) Log(ctx context.Context) {
	if len(r.Results) == 0 {
		log.DebugContext(ctx, "no notification sinks configured",
			"type", r.Type, "submission_id", r.SubmissionID)
		return
	}

	failed := r.Failed()
	if len(failed) == 0 {
		log.InfoContext(ctx, "notification fan-out settled",
			"type", r.Type,
			"submission_id", r.SubmissionID,
			"delivered", r.Delivered())
		return
	}

	names := make([]string, 0, len(failed))
	errs := make([]string, 0, len(failed))
	for _, f := range failed {
		names = append(names, f.Sink)
		errs = append(errs, f.Err.Error())
	}
	log.WarnContext(ctx, "notification fan-out partially failed",
		"type", r.Type,
		"submission_id", r.SubmissionID,
		"delivered", r.Delivered(),
		"failed_sinks", names,
		"errors", errs)
}

// Notifier 把一条提交记录并发投递到所有已配置渠道
type Notifier struct {
	sinks []Sink
}

func NewNotifier(sinks ...Sink) *Notifier {
	return &Notifier{sinks: sinks}
}

// SinkNames 已启用的渠道
func (n *Notifier) SinkNames() []string {
	names := make([]string, 0, len(n.sinks))
	for _, s := range n.sinks {
		names = append(names, s.Name())
	}
	return names
}

// Notify 等待全部渠道完成，单个渠道失败不会取消其他渠道
func (n *Notifier) Notify(ctx context.Context, sub *Submission) *Report {
	report := &Report{
		Type:         sub.Type,
		SubmissionID: sub.ID,
		Results:      make([]Result, len(n.sinks)),
	}

	var g errgroup.Group
	for i, sink := range n.sinks {
		g.Go(func() error {
			start := time.Now()
			err := send(ctx, sink, sub)
			report.Results[i] = Result{
				Sink:    sink.Name(),
				Err:     err,
				Latency: time.Since(start),
			}
			return nil
		})
	}
	_ = g.Wait()

	report.Log(ctx)
	return report
}

func send(ctx context.Context, sink Sink, sub *Submission) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", sink.Name(), r)
		}
	}()
	return sink.Send(ctx, sub)
}
