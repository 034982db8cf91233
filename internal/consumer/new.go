package consumer

import (
	"fmt"

	"aegis-srv/internal/report/composer"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:            cfg.Logger,
		kafkaConfig:  cfg.KafkaConfig,
		reportConfig: cfg.ReportConfig,
		bucket:       cfg.ReportBucket,
		redisClient:  cfg.RedisClient,
		postgresDB:   cfg.PostgresDB,
		minioClient:  cfg.MinIOClient,
		composer:     cfg.Composer,
		llm:          cfg.LLM,
		metrics:      cfg.Metrics,
	}
	if srv.composer == nil {
		srv.composer = composer.New()
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *ConsumerServer) validate() error {
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if len(srv.kafkaConfig.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required")
	}

	if srv.redisClient == nil {
		return fmt.Errorf("redis client is required")
	}
	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.minioClient == nil {
		return fmt.Errorf("minio client is required")
	}

	return nil
}
