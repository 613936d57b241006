package messaging

import (
	"context"
	"log/slog"

	"rental-market/internal/pkg/errs"

	"github.com/IBM/sarama"
)

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte, headers map[string]string) error
	Close() error
}

type KafkaProducer struct {
	sync sarama.SyncProducer
}

func NewKafkaProducer(brokers []string, cfg *sarama.Config) (*KafkaProducer, error) {
	if cfg == nil {
		cfg = sarama.NewConfig()
	}
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1
	sync, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create kafka producer")
	}
	return &KafkaProducer{sync: sync}, nil
}

// NewKafkaProducerFrom wraps an existing producer, e.g. sarama/mocks.
func NewKafkaProducerFrom(sync sarama.SyncProducer) *KafkaProducer {
	return &KafkaProducer{sync: sync}
}

func (p *KafkaProducer) Publish(ctx context.Context, topic, key string, payload []byte, headers map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	hs := make([]sarama.RecordHeader, 0, len(headers))
	for k, v := range headers {
		hs = append(hs, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}
	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(payload),
		Headers: hs,
	}
	partition, offset, err := p.sync.SendMessage(msg)
	if err != nil {
		return errs.Wrapf(err, "publish to %s", topic)
	}
	slog.Debug("event published",
		slog.String("topic", topic),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset))
	return nil
}

func (p *KafkaProducer) Close() error {
	if p.sync == nil {
		return nil
	}
	return p.sync.Close()
}

// LogPublisher stands in when Kafka is disabled. Jobs are still marked sent
// so the outbox does not grow without bound.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, topic, key string, payload []byte, _ map[string]string) error {
	slog.Debug("event dropped, kafka disabled",
		slog.String("topic", topic),
		slog.String("key", key),
		slog.Int("bytes", len(payload)))
	return nil
}

func (LogPublisher) Close() error { return nil }
