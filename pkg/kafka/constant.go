package kafka

import (
	"errors"
	"time"

	"github.com/IBM/sarama"
)

const (
	producerTimeout  = 10 * time.Second
	producerRetryMax = 3

	DefaultClientID = "aegis-srv"
)

var protocolVersion = sarama.V2_6_0_0

var (
	ErrNoBrokers      = errors.New("kafka: at least one broker is required")
	ErrNoTopic        = errors.New("kafka: topic is required")
	ErrNoGroup        = errors.New("kafka: group id is required")
	errProducerClosed = errors.New("kafka: producer is not initialized")
)
