package producer

import (
	"aegis-srv/internal/scan"
	pkgKafka "aegis-srv/pkg/kafka"
	"aegis-srv/pkg/log"
)

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New wraps a producer bound to the scan-completed topic.
func New(l log.Logger, producer pkgKafka.IProducer) scan.Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
