package consumer

import (
	"context"
	"database/sql"

	"aegis-srv/config"
	"aegis-srv/internal/metrics"
	"aegis-srv/internal/report/composer"
	"aegis-srv/internal/report/generator"
	"aegis-srv/pkg/log"
	"aegis-srv/pkg/minio"
	"aegis-srv/pkg/redis"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l            log.Logger
	kafkaConfig  config.KafkaConfig
	reportConfig config.ReportConfig
	bucket       string

	// Infrastructure clients
	redisClient redis.IRedis
	postgresDB  *sql.DB
	minioClient minio.MinIO

	// Report generation
	composer *composer.Composer
	llm      generator.TextGenerator
	metrics  *metrics.Collector
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger       log.Logger
	KafkaConfig  config.KafkaConfig
	ReportConfig config.ReportConfig
	ReportBucket string

	// Infrastructure clients
	RedisClient redis.IRedis
	PostgresDB  *sql.DB
	MinIOClient minio.MinIO

	// Report generation. LLM is nil for the deterministic generator.
	Composer *composer.Composer
	LLM      generator.TextGenerator
	Metrics  *metrics.Collector
}

// Run starts the consumer server and blocks until context is cancelled.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
