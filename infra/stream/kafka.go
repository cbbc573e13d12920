// Package stream publishes order events to Kafka.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kouchan/hackaton-iti-zup/pkg/checkout"
	"github.com/kouchan/hackaton-iti-zup/pkg/config"
	"github.com/kouchan/hackaton-iti-zup/pkg/worker"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes order events to the orders topic, keyed by cart
// id so the stream preserves per-cart ordering as far as partitioning
// allows.
type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher creates the publisher. brokers is a comma-separated
// list (e.g. "localhost:9092,localhost:9093").
func NewKafkaPublisher(cfg config.Kafka, logger *slog.Logger) (*KafkaPublisher, error) {
	brokers := parseBrokers(cfg.Brokers)
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher: brokers are required")
	}

	log := logger.With("component", "order-publisher")
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  cfg.OrdersTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				return
			}
			for _, m := range messages {
				log.Info("order event delivered",
					"key", string(m.Key),
					"partition", m.Partition,
					"offset", m.Offset,
				)
			}
		},
	}

	return &KafkaPublisher{
		writer: writer,
		topic:  cfg.OrdersTopic,
		logger: log,
	}, nil
}

// PublishOrder serializes the event and writes it to the orders topic.
// Either the write is acknowledged by the broker or the whole pipeline
// attempt counts as failed, even though the invoice is already posted
// upstream.
func (p *KafkaPublisher) PublishOrder(ctx context.Context, event checkout.OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", checkout.ErrEventPublishFailed, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Payload.CartID),
		Value: value,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", checkout.ErrEventPublishFailed, err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func parseBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Ensure KafkaPublisher implements worker.OrderPublisher
var _ worker.OrderPublisher = (*KafkaPublisher)(nil)
