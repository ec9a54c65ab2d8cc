package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"showtime/pkg/logger"

	"github.com/IBM/sarama"
)

// RefreshFunc is invoked for every consumed change event. The kitchen
// snapshot re-fetch is idempotent, so at-least-once delivery is fine.
type RefreshFunc func(ctx context.Context, change *LineItemChange)

type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

type ConsumerConfig struct {
	Brokers        []string
	GroupID        string
	Topic          string
	SessionTimeout time.Duration
	Heartbeat      time.Duration
	OffsetOldest   bool
}

func DefaultConsumerConfig(brokers []string, topic, groupID string) *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topic:          topic,
		SessionTimeout: 30 * time.Second,
		Heartbeat:      3 * time.Second,
		OffsetOldest:   false,
	}
}

type kafkaConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	refresh       RefreshFunc
	log           *logger.Logger
	cancel        context.CancelFunc
}

func NewKafkaConsumer(config *ConsumerConfig, refresh RefreshFunc, log *logger.Logger) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = config.SessionTimeout
	saramaConfig.Consumer.Group.Heartbeat.Interval = config.Heartbeat
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second
	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &kafkaConsumer{
		consumerGroup: consumerGroup,
		config:        config,
		refresh:       refresh,
		log:           log,
	}, nil
}

func (c *kafkaConsumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.consumerGroup.Errors() {
			c.log.Error("change feed consumer error", "error", err)
		}
	}()

	handler := &changeHandler{refresh: c.refresh, log: c.log}
	go func() {
		for {
			select {
			case <-ctx.Done():
				c.log.Info("change feed consumer shutting down")
				return
			default:
				if err := c.consumerGroup.Consume(ctx, []string{c.config.Topic}, handler); err != nil {
					c.log.Error("change feed consume failed", "error", err)
					time.Sleep(time.Second)
				}
			}
		}
	}()

	c.log.Info("change feed consumer started", "topic", c.config.Topic, "group", c.config.GroupID)
	return nil
}

func (c *kafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	return c.consumerGroup.Close()
}

type changeHandler struct {
	refresh RefreshFunc
	log     *logger.Logger
}

func (h *changeHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *changeHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *changeHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}

			var change LineItemChange
			if err := json.Unmarshal(message.Value, &change); err != nil {
				// Malformed events are dropped; the poller will catch up.
				h.log.Warn("dropping malformed change event", "error", err)
				session.MarkMessage(message, "")
				continue
			}

			h.refresh(session.Context(), &change)
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}
