package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
)

func (cfg ConsumerConfig) validate() error {
	if len(cfg.Brokers) == 0 {
		return ErrNoBrokers
	}
	if cfg.GroupID == "" {
		return ErrNoGroup
	}
	return nil
}

func (cfg ConsumerConfig) saramaConfig() *sarama.Config {
	sc := sarama.NewConfig()
	sc.ClientID = clientID(cfg.ClientID)
	sc.Version = protocolVersion
	sc.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	sc.Consumer.Offsets.Initial = sarama.OffsetNewest
	if cfg.FromOldest {
		sc.Consumer.Offsets.Initial = sarama.OffsetOldest
	}
	sc.Consumer.Return.Errors = true
	return sc
}

func (c *consumerImpl) ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	for {
		err := c.group.Consume(ctx, topics, handler)
		switch {
		case errors.Is(err, sarama.ErrClosedConsumerGroup):
			return nil
		case err != nil:
			return fmt.Errorf("kafka: consume %v: %w", topics, err)
		case ctx.Err() != nil:
			return nil
		}
	}
}

func (c *consumerImpl) Errors() <-chan error {
	return c.group.Errors()
}

func (c *consumerImpl) Close() error {
	return c.group.Close()
}
