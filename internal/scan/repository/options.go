package repository

import (
	"time"

	"aegis-srv/internal/model"
	"aegis-srv/internal/scan"
)

type SaveResultOptions struct {
	Result model.ScanResult
	TTL    time.Duration
}

type AppendHistoryOptions struct {
	Entry scan.HistoryEntry
	Max   int64
}

type ListHistoryOptions struct {
	Limit int64
}
