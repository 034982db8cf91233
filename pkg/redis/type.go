package redis

import (
	"net"
	"strconv"

	goredis "github.com/redis/go-redis/v9"
)

// RedisConfig is the connection target. PoolSize 0 keeps the go-redis default.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

func (c RedisConfig) addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c RedisConfig) options() *goredis.Options {
	return &goredis.Options{
		Addr:     c.addr(),
		Password: c.Password,
		DB:       c.DB,
		PoolSize: c.PoolSize,
	}
}

type redisImpl struct {
	client *goredis.Client
}
