package kafka

import (
	"Brightline/internal/api/config"
	"Brightline/internal/pkg/notify"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// Manager 管理 Kafka 生产者与表单提交消费组
type Manager struct {
	cfg        config.KafkaConfig
	producer   sarama.SyncProducer
	consumer   sarama.ConsumerGroup
	handler    sarama.ConsumerGroupHandler
	dispatcher *Dispatcher
}

// NewManager 构造函数，fallback 用于 Kafka 写入失败时的本地投递
func NewManager(cfg config.KafkaConfig, notifier *notify.Notifier, fallback notify.Dispatcher) (*Manager, error) {
	saramaCfg := newSaramaConfig(cfg)

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	consumer, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.SubmissionGroup, saramaCfg)
	if err != nil {
		_ = producer.Close()
		return nil, err
	}

	return &Manager{
		cfg:        cfg,
		producer:   producer,
		consumer:   consumer,
		handler:    NewSubmissionHandler(notifier),
		dispatcher: NewDispatcher(producer, cfg.SubmissionTopic, fallback),
	}, nil
}

// Dispatcher 基于 Kafka 的通知分发器
func (m *Manager) Dispatcher() notify.Dispatcher {
	return m.dispatcher
}

// Start 阻塞消费直到 ctx 结束
func (m *Manager) Start(ctx context.Context) error {
	topic := m.cfg.SubmissionTopic
	log.Info("Submission consumer started", "topic", topic, "group", m.cfg.SubmissionGroup)

	go func() {
		for err := range m.consumer.Errors() {
			log.Error("Error from submission consumer", "err", err)
		}
	}()

	for {
		if err := m.consumer.Consume(ctx, []string{topic}, m.handler); err != nil {
			log.Error("Error from consumer", "err", err)
		}
		if ctx.Err() != nil {
			break
		}
	}

	if err := m.consumer.Close(); err != nil {
		log.Error("Close submission consumer failed", "err", err)
	}
	if err := m.dispatcher.Close(); err != nil {
		log.Error("Close submission producer failed", "err", err)
	}
	return nil
}
