package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
)

func (cfg Config) validate() error {
	if len(cfg.Brokers) == 0 {
		return ErrNoBrokers
	}
	if cfg.Topic == "" {
		return ErrNoTopic
	}
	return nil
}

// saramaConfig waits for the partition leader and returns successes so SendMessage is synchronous.
func (cfg Config) saramaConfig() *sarama.Config {
	sc := sarama.NewConfig()
	sc.ClientID = clientID(cfg.ClientID)
	sc.Version = protocolVersion
	sc.Producer.RequiredAcks = sarama.WaitForLocal
	sc.Producer.Compression = sarama.CompressionSnappy
	sc.Producer.Return.Successes = true
	sc.Producer.Retry.Max = producerRetryMax
	sc.Producer.Timeout = producerTimeout
	return sc
}

func (p *producerImpl) Publish(key, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("kafka: publish to %s: %w", p.topic, err)
	}
	return nil
}

func (p *producerImpl) HealthCheck() error {
	if p.producer == nil {
		return errProducerClosed
	}
	return nil
}

func (p *producerImpl) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
