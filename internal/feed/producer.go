package feed

import (
	"context"
	"fmt"
	"time"

	"showtime/pkg/logger"

	"github.com/IBM/sarama"
)

// Producer publishes food line-item change events.
type Producer interface {
	PublishChange(ctx context.Context, change *LineItemChange) error
	Close() error
}

type ProducerConfig struct {
	Brokers         []string
	Topic           string
	RetryMax        int
	Timeout         time.Duration
	RequiredAcks    sarama.RequiredAcks
	CompressionType sarama.CompressionCodec
}

func DefaultProducerConfig(brokers []string, topic string) *ProducerConfig {
	return &ProducerConfig{
		Brokers:         brokers,
		Topic:           topic,
		RetryMax:        3,
		Timeout:         10 * time.Second,
		RequiredAcks:    sarama.WaitForAll,
		CompressionType: sarama.CompressionSnappy,
	}
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	config   *ProducerConfig
	log      *logger.Logger
}

func NewKafkaProducer(config *ProducerConfig, log *logger.Logger) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("food change feed producer started", "topic", config.Topic)
	return &kafkaProducer{producer: producer, config: config, log: log}, nil
}

func (p *kafkaProducer) PublishChange(ctx context.Context, change *LineItemChange) error {
	if change.OccurredAt.IsZero() {
		change.OccurredAt = time.Now()
	}

	payload, err := change.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.config.Topic,
		Key:       sarama.StringEncoder(change.PartitionKey()),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: change.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}

	p.log.Debug("change event published",
		"topic", p.config.Topic,
		"partition", partition,
		"offset", offset,
		"booking_id", change.BookingID,
		"kind", change.Kind,
	)
	return nil
}

func (p *kafkaProducer) Close() error {
	return p.producer.Close()
}

// NopProducer satisfies Producer when the feed is disabled; kitchen
// refresh then relies on polling alone.
type NopProducer struct{}

func (NopProducer) PublishChange(context.Context, *LineItemChange) error { return nil }
func (NopProducer) Close() error                                         { return nil }
