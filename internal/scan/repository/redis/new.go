package redis

import (
	"time"

	"aegis-srv/internal/scan/repository"
	"aegis-srv/pkg/log"
	pkgRedis "aegis-srv/pkg/redis"
)

const (
	ResultPrefix = "aegis:scan:"
	HistoryKey   = "aegis:scan-history"

	DefaultResultTTL = 24 * time.Hour
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.Repository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
