package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

const metricsService = "marketplace-service"

// messageWriter - часть *kafka.Writer, используемая продюсером
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducer struct {
	writer messageWriter
	topic  string
}

func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchSize:              100,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}

	return &KafkaProducer{writer: writer, topic: topic}
}

func (p *KafkaProducer) PublishMessage(ctx context.Context, key string, value []byte) error {
	start := time.Now()

	message := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		metrics.RecordKafkaError(metricsService, p.topic, "produce")
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	metrics.RecordKafkaMessageProduced(metricsService, p.topic, time.Since(start))
	return nil
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// EncodeEvent сериализует событие маркетплейса; ключ сообщения - ID документа
func EncodeEvent(event entity.MarketplaceEvent) (string, []byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return event.DocumentID, data, nil
}

// NoopPublisher используется, когда KAFKA_BROKERS не задан
type NoopPublisher struct{}

func (NoopPublisher) PublishMessage(context.Context, string, []byte) error { return nil }
func (NoopPublisher) Close() error { return nil }
