package httpserver

import (
	"database/sql"
	"errors"

	"aegis-srv/config"
	"aegis-srv/internal/corpus"
	"aegis-srv/internal/metrics"
	"aegis-srv/internal/report/composer"
	"aegis-srv/internal/report/generator"
	"aegis-srv/internal/sampling"
	"aegis-srv/internal/scan"
	"aegis-srv/internal/settings"
	"aegis-srv/pkg/analyzer"
	"aegis-srv/pkg/discord"
	pkgKafka "aegis-srv/pkg/kafka"
	"aegis-srv/pkg/log"
	"aegis-srv/pkg/minio"
	pkgRedis "aegis-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	corsOrigins []string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Storage & Messaging
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer

	// Domain Configuration
	sampler        *sampling.Sampler
	composer       *composer.Composer
	llm            generator.TextGenerator
	analyzerClient analyzer.IAnalyzer
	scanConfig     config.ScanConfig
	reportConfig   config.ReportConfig
	reportBucket   string

	// Monitoring & Notification Configuration
	metrics *metrics.Collector
	discord discord.IDiscord

	// Domain usecases shared between domains
	corpusUC   corpus.UseCase
	settingsUC settings.UseCase
	scanUC     scan.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	CORSOrigins []string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Storage & Messaging
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer

	// Domain Configuration. LLM and Analyzer are optional.
	Sampler      *sampling.Sampler
	Composer     *composer.Composer
	LLM          generator.TextGenerator
	Analyzer     analyzer.IAnalyzer
	ScanConfig   config.ScanConfig
	ReportConfig config.ReportConfig
	ReportBucket string

	// Monitoring & Notification Configuration
	Metrics *metrics.Collector
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		corsOrigins: cfg.CORSOrigins,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Storage & Messaging
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,

		// Domain Configuration
		sampler:        cfg.Sampler,
		composer:       cfg.Composer,
		llm:            cfg.LLM,
		analyzerClient: cfg.Analyzer,
		scanConfig:     cfg.ScanConfig,
		reportConfig:   cfg.ReportConfig,
		reportBucket:   cfg.ReportBucket,

		// Monitoring & Notification Configuration
		metrics: cfg.Metrics,
		discord: cfg.Discord,
	}
	if srv.sampler == nil {
		srv.sampler = sampling.NewFromTime()
	}
	if srv.composer == nil {
		srv.composer = composer.New()
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// Storage & Messaging
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.kafkaProducer == nil {
		return errors.New("kafkaProducer is required")
	}

	return nil
}
