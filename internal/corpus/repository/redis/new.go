package redis

import (
	"aegis-srv/internal/corpus/repository"
	"aegis-srv/pkg/log"
	pkgRedis "aegis-srv/pkg/redis"
)

const Key = "aegis:corpus"

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
