package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

// IProducer publishes keyed messages to the topic it was built for.
type IProducer interface {
	Publish(key, value []byte) error
	HealthCheck() error
	Close() error
}

// IConsumer is a joined consumer group.
type IConsumer interface {
	// ConsumeWithContext rejoins after every rebalance and returns once ctx is done
	// or the group is closed.
	ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error
	Errors() <-chan error
	Close() error
}

func NewProducer(cfg Config) (IProducer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	producer, err := sarama.NewSyncProducer(cfg.Brokers, cfg.saramaConfig())
	if err != nil {
		return nil, fmt.Errorf("kafka: create producer: %w", err)
	}
	return &producerImpl{producer: producer, topic: cfg.Topic}, nil
}

func NewConsumer(cfg ConsumerConfig) (IConsumer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, cfg.saramaConfig())
	if err != nil {
		return nil, fmt.Errorf("kafka: join group %s: %w", cfg.GroupID, err)
	}
	return &consumerImpl{group: group}, nil
}
