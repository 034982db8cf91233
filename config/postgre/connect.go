package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"aegis-srv/config"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const (
	defaultConnectTimeout  = 5 * time.Second
	defaultMaxIdleConns    = 10
	defaultMaxOpenConns    = 50
	defaultConnMaxLifetime = 30 * time.Minute
	defaultConnMaxIdleTime = 5 * time.Minute
)

var client = config.NewSingleton[*sql.DB]("PostgreSQL")

// DSN builds the lib/pq connection string. Empty sslmode means disable and empty schema means public.
func DSN(cfg config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	searchPath := cfg.Schema
	if searchPath == "" {
		searchPath = "public"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, sslMode, searchPath)
}

// Connect opens the shared connection pool and pings it within defaultConnectTimeout.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	return client.Connect(func() (*sql.DB, error) {
		connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
		defer cancel()

		db, err := sql.Open("postgres", DSN(cfg))
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
		}

		db.SetMaxIdleConns(defaultMaxIdleConns)
		db.SetMaxOpenConns(defaultMaxOpenConns)
		db.SetConnMaxLifetime(defaultConnMaxLifetime)
		db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

		if err := db.PingContext(connectCtx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
		}
		return db, nil
	})
}

func GetClient() *sql.DB {
	return client.Get()
}

// HealthCheck pings the pool.
func HealthCheck(ctx context.Context) error {
	return client.Check(func(db *sql.DB) error {
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("PostgreSQL health check failed: %w", err)
		}
		return nil
	})
}

// Disconnect closes the pool so a later Connect starts fresh.
func Disconnect() error {
	return client.Reset(func(db *sql.DB) error { return db.Close() })
}
