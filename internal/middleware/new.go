package middleware

import (
	"aegis-srv/internal/metrics"
	"aegis-srv/pkg/discord"
	"aegis-srv/pkg/log"
)

type Middleware struct {
	l       log.Logger
	metrics *metrics.Collector
	discord discord.IDiscord
}

func New(l log.Logger, m *metrics.Collector, d discord.IDiscord) Middleware {
	return Middleware{
		l:       l,
		metrics: m,
		discord: d,
	}
}
