package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"aegis-srv/config"
	configKafka "aegis-srv/config/kafka"
	configLLM "aegis-srv/config/llm"
	configMinio "aegis-srv/config/minio"
	configPostgre "aegis-srv/config/postgre"
	configRedis "aegis-srv/config/redis"
	_ "aegis-srv/docs" // Import swagger docs
	"aegis-srv/internal/httpserver"
	"aegis-srv/internal/metrics"
	"aegis-srv/internal/report/composer"
	"aegis-srv/internal/sampling"
	"aegis-srv/pkg/analyzer"
	"aegis-srv/pkg/discord"
	"aegis-srv/pkg/log"
)

// @title       Aegis Monitoring API
// @description Harassment and piracy monitoring: scans, reports, corpus and settings.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Aegis API Service...")

	// 4. PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect()
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. MinIO
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully (bucket %s)", cfg.MinIO.Bucket)

	// 7. Kafka producer (scan.completed)
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Infof(ctx, "Kafka producer initialized (topic %s)", cfg.Kafka.Topic)

	// 8. Report generator backend
	llmClient, err := configLLM.Connect(cfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM client: %v", err)
		return
	}
	if llmClient != nil {
		logger.Infof(ctx, "Remote report generator enabled (%s)", cfg.Report.LLMProvider)
	}

	// 9. Analyzer (optional)
	var analyzerClient analyzer.IAnalyzer
	if cfg.Analyzer.BaseURL != "" {
		analyzerClient = analyzer.New(analyzer.AnalyzerConfig{
			BaseURL: cfg.Analyzer.BaseURL,
			Timeout: cfg.Analyzer.Timeout,
		})
		logger.Infof(ctx, "Analyzer client initialized (%s)", cfg.Analyzer.BaseURL)
	}

	// 10. Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 11. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		CORSOrigins: cfg.CORS.AllowedOrigins,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Storage & Messaging
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,

		// Domain Configuration
		Sampler:      newSampler(cfg.Sampling),
		Composer:     newComposer(cfg.Report),
		LLM:          llmClient,
		Analyzer:     analyzerClient,
		ScanConfig:   cfg.Scan,
		ReportConfig: cfg.Report,
		ReportBucket: cfg.MinIO.Bucket,

		// Monitoring & Notification Configuration
		Metrics: metrics.NewCollector(),
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}

// newSampler seeds scans from sampling.seed, or from the clock when it is zero.
func newSampler(cfg config.SamplingConfig) *sampling.Sampler {
	if cfg.Seed != 0 {
		return sampling.NewSeeded(cfg.Seed)
	}
	return sampling.NewFromTime()
}

func newComposer(cfg config.ReportConfig) *composer.Composer {
	return composer.New(
		composer.WithOrganization(cfg.Organization),
		composer.WithConfidentiality(cfg.Confidentiality),
	)
}
