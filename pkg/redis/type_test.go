package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisConfigOptions(t *testing.T) {
	opts := RedisConfig{Host: "::1", Port: 6380, Password: "pw", DB: 2, PoolSize: 8}.options()

	assert.Equal(t, "[::1]:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 8, opts.PoolSize)
}

func TestNewRedisValidates(t *testing.T) {
	_, err := NewRedis(RedisConfig{Port: 6379})
	assert.ErrorIs(t, err, ErrHostRequired)

	_, err = NewRedis(RedisConfig{Host: "localhost", Port: 70000})
	assert.ErrorIs(t, err, ErrInvalidPort)
}
