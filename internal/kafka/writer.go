package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"swaypp-service/internal/config"
	"swaypp-service/internal/message"
)

const (
	DefaultBatchSize    = 100
	DefaultBatchTimeout = 100
)

func NewWriter(kafkaURL, topic string, cfg config.KafkaWriter) *kafka.Writer {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	batchTimeout := cfg.BatchTimeoutMs
	if batchTimeout <= 0 {
		batchTimeout = DefaultBatchTimeout
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(kafkaURL),
		Topic:                  topic,
		Balancer:               &kafka.ReferenceHash{},
		BatchSize:              batchSize,
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           time.Duration(batchTimeout) * time.Millisecond,
		Async:                  false,
		AllowAutoTopicCreation: false,
	}
}

// TransactionEventPublisher publishes transaction events keyed by merchant
// id so per-merchant ordering is preserved.
type TransactionEventPublisher struct {
	writer *kafka.Writer
}

func NewTransactionEventPublisher(writer *kafka.Writer) *TransactionEventPublisher {
	return &TransactionEventPublisher{writer: writer}
}

func (p *TransactionEventPublisher) Publish(ctx context.Context, event message.TransactionEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.MerchantID),
		Value: value,
	})
}
