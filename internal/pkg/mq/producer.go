package mq

import (
	"Lumina/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Producer 任务提交端，请求侧与调度侧只投递、不等待执行结果
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg config.KafkaConfig) (*Producer, error) {
	saramaCfg := newSaramaConfig(cfg)

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, errors.Wrap(err, "create kafka producer")
	}

	return &Producer{
		producer: producer,
		topic:    cfg.JobTopic,
	}, nil
}

// Submit 投递一个任务（任务名 + 载荷）到任务主题
func (s *Producer) Submit(ctx context.Context, jobName string, payload interface{}) error {
	msg := JobMessage{Job: jobName}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "marshal job payload")
		}
		msg.Payload = raw
	}

	value, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "marshal job message")
	}

	partition, offset, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(jobName),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return errors.Wrapf(err, "submit job %s", jobName)
	}

	log.InfoContext(ctx, "job submitted", "job", jobName, "partition", partition, "offset", offset)
	return nil
}

func (s *Producer) Close() error {
	return s.producer.Close()
}
