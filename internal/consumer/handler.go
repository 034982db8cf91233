package consumer

import (
	"context"
	"fmt"

	reportConsumer "aegis-srv/internal/report/delivery/kafka/consumer"
	"aegis-srv/internal/report/generator"
	reportPostgre "aegis-srv/internal/report/repository/postgre"
	reportUsecase "aegis-srv/internal/report/usecase"
	scanRedis "aegis-srv/internal/scan/repository/redis"
	settingsRedis "aegis-srv/internal/settings/repository/redis"
	settingsUsecase "aegis-srv/internal/settings/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	reportConsumer reportConsumer.Consumer
}

// setupDomains wires the auto-report worker: scans are read straight from Redis,
// settings decide whether to act, and reports go through the same usecase as the API.
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	settingsUC := settingsUsecase.New(settingsRedis.New(srv.redisClient, srv.l), srv.l)
	scanRepo := scanRedis.New(srv.redisClient, srv.l)

	gen := generator.Select(srv.l, srv.composer, srv.reportConfig.LLMProvider, srv.llm, generator.WithMetrics(srv.metrics))
	reportUC := reportUsecase.New(
		reportPostgre.New(srv.postgresDB, srv.l),
		scanRepo,
		gen,
		srv.minioClient,
		srv.metrics,
		srv.l,
		reportUsecase.Config{
			ReportBucket:   srv.bucket,
			ReuseWindow:    srv.reportConfig.ReuseWindow,
			StaleAfter:     srv.reportConfig.StaleAfter,
			DownloadExpiry: srv.reportConfig.DownloadExpiry,
		},
	)

	cons, err := reportConsumer.New(reportConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     reportUC,
		Settings:    settingsUC,
		Metrics:     srv.metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report consumer: %w", err)
	}

	srv.l.Infof(ctx, "Report domain initialized (generator: %s)", gen.Name())

	return &domainConsumers{
		reportConsumer: cons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.reportConsumer.ConsumeScanCompleted(ctx); err != nil {
		return fmt.Errorf("failed to start report consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.reportConsumer != nil {
		if err := consumers.reportConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing report consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
