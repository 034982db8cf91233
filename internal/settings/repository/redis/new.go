package redis

import (
	"aegis-srv/internal/settings/repository"
	"aegis-srv/pkg/log"
	pkgRedis "aegis-srv/pkg/redis"
)

const Key = "aegis:settings"

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
