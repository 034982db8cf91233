package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"aegis-srv/config"
	configLLM "aegis-srv/config/llm"
	"aegis-srv/config/minio"
	"aegis-srv/config/postgre"
	"aegis-srv/config/redis"
	"aegis-srv/internal/consumer"
	"aegis-srv/internal/metrics"
	"aegis-srv/internal/report/composer"
	"aegis-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Aegis Auto-Report Consumer...")

	// Redis
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect()
	logger.Info(ctx, "PostgreSQL client initialized")

	// MinIO
	minioClient, err := minio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer minio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// LLM (remote generator only)
	llmClient, err := configLLM.Connect(cfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM client: %v", err)
		return
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:       logger,
		KafkaConfig:  cfg.Kafka,
		ReportConfig: cfg.Report,
		ReportBucket: cfg.MinIO.Bucket,
		RedisClient:  redisClient,
		PostgresDB:   postgresDB,
		MinIOClient:  minioClient,
		Composer: composer.New(
			composer.WithOrganization(cfg.Report.Organization),
			composer.WithConfidentiality(cfg.Report.Confidentiality),
		),
		LLM:     llmClient,
		Metrics: metrics.NewCollector(),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
