package consumer

import (
	"context"
	"fmt"

	"aegis-srv/config"
	"aegis-srv/internal/metrics"
	"aegis-srv/internal/report"
	"aegis-srv/internal/settings"
	pkgKafka "aegis-srv/pkg/kafka"
	"aegis-srv/pkg/log"
)

// Consumer turns scan-completed events into reports when auto reporting is enabled.
type Consumer interface {
	ConsumeScanCompleted(ctx context.Context) error
	Close() error
}

// SettingsReader is the part of settings.UseCase the worker needs.
type SettingsReader interface {
	Get(ctx context.Context) (settings.Settings, error)
}

// Config holds the dependencies of the auto-report consumer.
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     report.UseCase
	Settings    SettingsReader
	Metrics     *metrics.Collector
}

type consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          report.UseCase
	settings    SettingsReader
	metrics     *metrics.Collector

	scanCompletedGroup pkgKafka.IConsumer
}

func New(cfg Config) (Consumer, error) {
	switch {
	case cfg.Logger == nil:
		return nil, fmt.Errorf("%w: logger", errMissingDependency)
	case cfg.UseCase == nil:
		return nil, fmt.Errorf("%w: report usecase", errMissingDependency)
	case cfg.Settings == nil:
		return nil, fmt.Errorf("%w: settings", errMissingDependency)
	case len(cfg.KafkaConfig.Brokers) == 0:
		return nil, errNoBrokers
	}

	return &consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
		settings:    cfg.Settings,
		metrics:     cfg.Metrics,
	}, nil
}

func (c *consumer) Close() error {
	if c.scanCompletedGroup != nil {
		if err := c.scanCompletedGroup.Close(); err != nil {
			return fmt.Errorf("failed to close scan completed group: %w", err)
		}
	}
	return nil
}

func (c *consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers:  c.kafkaConfig.Brokers,
		GroupID:  groupID,
		ClientID: c.kafkaConfig.ClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", errJoinGroup, groupID, err)
	}
	return group, nil
}
