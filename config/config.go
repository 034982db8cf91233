package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// PostgreSQL - Report records
	Postgres PostgresConfig

	// Redis - Corpus override, settings, scan results and history
	Redis RedisConfig

	// MinIO - Report artifacts
	MinIO MinIOConfig

	// Kafka - scan.completed events
	Kafka KafkaConfig

	// LLM providers for the remote report generator
	Gemini GeminiConfig
	Groq   GroqConfig

	// Domain
	Report   ReportConfig
	Analyzer AnalyzerConfig
	Sampling SamplingConfig
	Scan     ScanConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// KafkaConfig is the configuration for Kafka. Topic is shared by the producer and the auto-report group.
type KafkaConfig struct {
	Brokers  []string
	Topic    string
	GroupID  string
	ClientID string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// GeminiConfig is the configuration for Google Gemini. Same shape as pkg/gemini.GeminiConfig.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// GroqConfig is the configuration for Groq. Same shape as pkg/groq.GroqConfig.
type GroqConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// ReportConfig selects the report generator and tunes report storage.
type ReportConfig struct {
	// Generator is "deterministic" or "remote". Remote always falls back to the deterministic composer.
	Generator       string
	LLMProvider     string
	Organization    string
	Confidentiality string
	ReuseWindow     time.Duration
	StaleAfter      time.Duration
	DownloadExpiry  time.Duration
}

// AnalyzerConfig points at the external video analyzer. An empty BaseURL disables remote analysis.
type AnalyzerConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SamplingConfig seeds the random source. Zero seeds from the clock.
type SamplingConfig struct {
	Seed int64
}

// ScanConfig is the configuration for scan persistence.
type ScanConfig struct {
	ResultTTL    time.Duration
	HistoryLimit int
	MaxEdges     int
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CORSConfig lists the origins allowed to call the API. "*" allows any.
type CORSConfig struct {
	AllowedOrigins []string
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

const (
	GeneratorDeterministic = "deterministic"
	GeneratorRemote        = "remote"

	LLMProviderGroq   = "groq"
	LLMProviderGemini = "gemini"
)

// Load loads configuration using Viper
func Load() (*Config, error) {
	viper.SetConfigName("aegis-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/aegis/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = viper.GetStringSlice("cors.allowed_origins")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.PoolSize = viper.GetInt("redis.pool_size")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")
	cfg.Kafka.ClientID = viper.GetString("kafka.client_id")

	// LLM providers
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	cfg.Groq.APIKey = viper.GetString("groq.api_key")
	cfg.Groq.Model = viper.GetString("groq.model")
	cfg.Groq.Timeout = viper.GetDuration("groq.timeout")

	// Report
	cfg.Report.Generator = strings.ToLower(viper.GetString("report.generator"))
	cfg.Report.LLMProvider = strings.ToLower(viper.GetString("report.llm_provider"))
	cfg.Report.Organization = viper.GetString("report.organization")
	cfg.Report.Confidentiality = viper.GetString("report.confidentiality")
	cfg.Report.ReuseWindow = viper.GetDuration("report.reuse_window")
	cfg.Report.StaleAfter = viper.GetDuration("report.stale_after")
	cfg.Report.DownloadExpiry = viper.GetDuration("report.download_expiry")

	// Analyzer
	cfg.Analyzer.BaseURL = viper.GetString("analyzer.base_url")
	cfg.Analyzer.Timeout = viper.GetDuration("analyzer.timeout")

	// Sampling & Scan
	cfg.Sampling.Seed = viper.GetInt64("sampling.seed")
	cfg.Scan.ResultTTL = viper.GetDuration("scan.result_ttl")
	cfg.Scan.HistoryLimit = viper.GetInt("scan.history_limit")
	cfg.Scan.MaxEdges = viper.GetInt("scan.max_edges")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// CORS
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})

	// 1. PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "aegis")

	// 2. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 3. MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "aegis-reports")

	// 4. Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "aegis.scan.completed")
	viper.SetDefault("kafka.group_id", "aegis-consumer-auto-report")
	viper.SetDefault("kafka.client_id", "aegis-srv")

	// 5. LLM providers
	viper.SetDefault("gemini.model", "gemini-1.5-pro")
	viper.SetDefault("gemini.timeout", 60*time.Second)
	viper.SetDefault("groq.model", "mixtral-8x7b-32768")
	viper.SetDefault("groq.timeout", 60*time.Second)

	// 6. Report
	viper.SetDefault("report.generator", GeneratorDeterministic)
	viper.SetDefault("report.llm_provider", LLMProviderGroq)
	viper.SetDefault("report.organization", "Aegis AI Monitoring System")
	viper.SetDefault("report.confidentiality", "CONFIDENTIAL")
	viper.SetDefault("report.reuse_window", time.Hour)
	viper.SetDefault("report.stale_after", 15*time.Minute)
	viper.SetDefault("report.download_expiry", 30*time.Minute)

	// 7. Analyzer
	viper.SetDefault("analyzer.base_url", "")
	viper.SetDefault("analyzer.timeout", 120*time.Second)

	// 8. Sampling & Scan
	viper.SetDefault("sampling.seed", 0)
	viper.SetDefault("scan.result_ttl", 24*time.Hour)
	viper.SetDefault("scan.history_limit", 50)
	viper.SetDefault("scan.max_edges", 15)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}

	switch cfg.Report.Generator {
	case GeneratorDeterministic:
	case GeneratorRemote:
		switch cfg.Report.LLMProvider {
		case LLMProviderGroq:
			if cfg.Groq.APIKey == "" {
				return fmt.Errorf("groq.api_key is required when report.llm_provider is groq")
			}
		case LLMProviderGemini:
			if cfg.Gemini.APIKey == "" {
				return fmt.Errorf("gemini.api_key is required when report.llm_provider is gemini")
			}
		default:
			return fmt.Errorf("report.llm_provider must be one of: groq, gemini")
		}
	default:
		return fmt.Errorf("report.generator must be one of: deterministic, remote")
	}

	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required")
	}
	if cfg.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required")
	}
	if cfg.MinIO.Bucket == "" {
		return fmt.Errorf("minio.bucket is required")
	}
	if cfg.Scan.HistoryLimit <= 0 {
		return fmt.Errorf("scan.history_limit must be positive")
	}
	if cfg.Scan.ResultTTL <= 0 {
		return fmt.Errorf("scan.result_ttl must be positive")
	}

	return nil
}
