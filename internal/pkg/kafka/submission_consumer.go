package kafka

import (
	"Brightline/internal/pkg/logger"
	"Brightline/internal/pkg/notify"
	"context"
	"errors"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// SubmissionHandler 消费表单提交事件并执行通知扇出
type SubmissionHandler struct {
	notifier *notify.Notifier
}

func NewSubmissionHandler(notifier *notify.Notifier) *SubmissionHandler {
	return &SubmissionHandler{notifier: notifier}
}

func (s *SubmissionHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("submission consumer setup")
	return nil
}

func (s *SubmissionHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("submission consumer cleanup")
	return nil
}

func (s *SubmissionHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	return pullMessageBatch(session, claim, s.logic)
}

func (s *SubmissionHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event SubmissionEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return err
	}
	if event.Submission == nil {
		return errors.New("submission event has no payload")
	}

	if event.TraceID != "" {
		ctx = logger.WithTraceID(ctx, event.TraceID)
	}
	s.notifier.Notify(ctx, event.Submission)
	return nil
}
