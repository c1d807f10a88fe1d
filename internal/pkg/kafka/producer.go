package kafka

import (
	"Brightline/internal/pkg/logger"
	"Brightline/internal/pkg/notify"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// SubmissionEvent 投递到 Kafka 的表单提交事件
type SubmissionEvent struct {
	TraceID    string             `json:"trace_id,omitempty"`
	Submission *notify.Submission `json:"submission"`
}

// Dispatcher 将扇出任务写入 Kafka，由消费组异步执行；写入失败时退回本地异步执行
type Dispatcher struct {
	producer sarama.SyncProducer
	topic    string
	fallback notify.Dispatcher
}

func NewDispatcher(producer sarama.SyncProducer, topic string, fallback notify.Dispatcher) *Dispatcher {
	return &Dispatcher{
		producer: producer,
		topic:    topic,
		fallback: fallback,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, sub *notify.Submission) {
	payload, err := json.Marshal(&SubmissionEvent{
		TraceID:    logger.TraceIDFrom(ctx),
		Submission: sub,
	})
	if err != nil {
		log.ErrorContext(ctx, "marshal submission event failed", "err", err)
		d.fallback.Dispatch(ctx, sub)
		return
	}

	partition, offset, err := d.producer.SendMessage(&sarama.ProducerMessage{
		Topic: d.topic,
		Key:   sarama.StringEncoder(sub.ID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		log.WarnContext(ctx, "publish submission event failed, notifying in-process", "err", err)
		d.fallback.Dispatch(ctx, sub)
		return
	}

	log.InfoContext(ctx, "submission event published",
		"topic", d.topic, "partition", partition, "offset", offset, "submission_id", sub.ID)
}

func (d *Dispatcher) Close() error {
	return d.producer.Close()
}
