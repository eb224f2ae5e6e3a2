package mq

import (
	"Lumina/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// WorkerManager 管理任务消费者：按任务名分发到注册的 Runner
type WorkerManager struct {
	consumer sarama.ConsumerGroup
	handler  *jobDispatchHandler
	topic    string
}

func NewWorkerManager(cfg config.KafkaConfig, runners ...Runner) (*WorkerManager, error) {
	saramaCfg := newSaramaConfig(cfg)

	consumer, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, saramaCfg)
	if err != nil {
		return nil, errors.Wrap(err, "create kafka consumer group")
	}

	registry := make(map[string]Runner, len(runners))
	for _, runner := range runners {
		registry[runner.Name()] = runner
	}

	return &WorkerManager{
		consumer: consumer,
		handler:  &jobDispatchHandler{registry: registry},
		topic:    cfg.JobTopic,
	}, nil
}

// Start 启动消费循环，阻塞直到 ctx 结束
func (m *WorkerManager) Start(ctx context.Context) error {
	log.Info("Job worker started", "topic", m.topic)
	for {
		if err := m.consumer.Consume(ctx, []string{m.topic}, m.handler); err != nil {
			log.Error("Error from job consumer", "err", err)
		}
		if ctx.Err() != nil {
			break
		}
	}

	log.Info("Job worker shutting down...")
	return m.consumer.Close()
}

// jobDispatchHandler 实现 sarama.ConsumerGroupHandler
type jobDispatchHandler struct {
	registry map[string]Runner
}

func (s *jobDispatchHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("job consumer setup")
	return nil
}

func (s *jobDispatchHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("job consumer cleanup")
	return nil
}

func (s *jobDispatchHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		s.dispatch(session.Context(), msg)
		session.MarkMessage(msg, "")
	}
	return nil
}

// dispatch 解析任务消息并执行对应 Runner
// 执行失败仅记录日志，交由外部告警与重投策略处理
func (s *jobDispatchHandler) dispatch(ctx context.Context, msg *sarama.ConsumerMessage) {
	var jobMsg JobMessage
	if err := json.Unmarshal(msg.Value, &jobMsg); err != nil {
		log.ErrorContext(ctx, "unmarshal job message error", "err", err)
		return
	}

	runner, ok := s.registry[jobMsg.Job]
	if !ok {
		log.WarnContext(ctx, "unknown job", "job", jobMsg.Job)
		return
	}

	if err := runner.Run(ctx, jobMsg.Payload); err != nil {
		log.ErrorContext(ctx, "job run failed", "job", jobMsg.Job, "err", err)
		return
	}

	log.InfoContext(ctx, "job run success", "job", jobMsg.Job)
}
