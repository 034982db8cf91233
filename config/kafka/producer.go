package kafka

import (
	"fmt"

	"aegis-srv/config"
	"aegis-srv/pkg/kafka"
)

var producer = config.NewSingleton[kafka.IProducer]("Kafka producer")

// ConnectProducer initializes the shared producer for cfg.Topic.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	return producer.Connect(func() (kafka.IProducer, error) {
		p, err := kafka.NewProducer(kafka.Config{
			Brokers:  cfg.Brokers,
			Topic:    cfg.Topic,
			ClientID: cfg.ClientID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
		}
		return p, nil
	})
}

func GetProducer() kafka.IProducer {
	return producer.Get()
}

// ProducerHealthCheck checks if Kafka producer is initialized and healthy.
func ProducerHealthCheck() error {
	return producer.Check(func(p kafka.IProducer) error { return p.HealthCheck() })
}

func DisconnectProducer() error {
	return producer.Reset(func(p kafka.IProducer) error { return p.Close() })
}
