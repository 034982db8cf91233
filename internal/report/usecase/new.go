package usecase

import (
	"time"

	"aegis-srv/internal/metrics"
	"aegis-srv/internal/report"
	"aegis-srv/internal/report/repository"
	"aegis-srv/pkg/log"
	"aegis-srv/pkg/minio"
)

const (
	defaultReportBucket   = "aegis-reports"
	defaultReuseWindow    = 1 * time.Hour
	defaultStaleAfter     = 15 * time.Minute
	defaultDownloadExpiry = 30 * time.Minute
)

// Config holds configuration for report generation.
type Config struct {
	ReportBucket   string
	ReuseWindow    time.Duration
	// StaleAfter is how long a PROCESSING record may go without an update before
	// Generate treats it as abandoned.
	StaleAfter     time.Duration
	DownloadExpiry time.Duration
}

type implUseCase struct {
	repo      repository.PostgresRepository
	scans     report.ScanReader
	generator report.Generator
	minio     minio.MinIO
	metrics   *metrics.Collector
	l         log.Logger
	config    Config
	now       func() time.Time
}

// New creates a new report UseCase implementation.
func New(
	repo repository.PostgresRepository,
	scans report.ScanReader,
	generator report.Generator,
	minioClient minio.MinIO,
	m *metrics.Collector,
	l log.Logger,
	cfg Config,
) report.UseCase {
	return newUseCase(repo, scans, generator, minioClient, m, l, cfg)
}

func newUseCase(
	repo repository.PostgresRepository,
	scans report.ScanReader,
	generator report.Generator,
	minioClient minio.MinIO,
	m *metrics.Collector,
	l log.Logger,
	cfg Config,
) *implUseCase {
	if cfg.ReportBucket == "" {
		cfg.ReportBucket = defaultReportBucket
	}
	if cfg.ReuseWindow <= 0 {
		cfg.ReuseWindow = defaultReuseWindow
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = defaultStaleAfter
	}
	if cfg.DownloadExpiry <= 0 {
		cfg.DownloadExpiry = defaultDownloadExpiry
	}

	return &implUseCase{
		repo:      repo,
		scans:     scans,
		generator: generator,
		minio:     minioClient,
		metrics:   m,
		l:         l,
		config:    cfg,
		now:       time.Now,
	}
}
