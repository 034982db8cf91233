package kafka

import "github.com/IBM/sarama"

// Config is a producer bound to one topic.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

type ConsumerConfig struct {
	Brokers  []string
	GroupID  string
	ClientID string
	// FromOldest makes a group with no committed offset start at the beginning.
	FromOldest bool
}

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

type consumerImpl struct {
	group sarama.ConsumerGroup
}

func clientID(id string) string {
	if id == "" {
		return DefaultClientID
	}
	return id
}
