package scan

import (
	"time"

	"aegis-srv/internal/model"
	"aegis-srv/pkg/paginator"
)

const (
	StatusCompleted = "COMPLETED"

	DefaultAnalyzeLimit = 200
	MaxAnalyzeLimit     = 1000
)

// RunInput starts a synthetic scan. An empty Mode uses the configured default.
type RunInput struct {
	Query     string
	Watchlist string
	Mode      model.ScanMode
}

// AnalyzeInput runs the external comment analyzer against one video.
type AnalyzeInput struct {
	VideoURL string
	Keywords []string
	Limit    int
	Mode     model.ScanMode
}

// HistoryEntry is the summary recorded for every finished scan.
type HistoryEntry struct {
	ScanID  string           `json:"scan_id"`
	Mode    model.ScanMode   `json:"mode"`
	Source  model.ScanSource `json:"source"`
	Query   string           `json:"query"`
	Date    time.Time        `json:"date"`
	Status  string           `json:"status"`
	Matched int              `json:"matched"`
	Flagged int              `json:"flagged"`
	Piracy  int              `json:"piracy"`
}

type HistoryInput struct {
	Paging paginator.PaginateQuery
}

type HistoryOutput struct {
	Entries   []HistoryEntry
	Paginator paginator.Paginator
}

type TakedownInput struct {
	ScanID string
	ItemID string
}

type TakedownOutput struct {
	ScanID   string
	ItemID   string
	Platform model.Platform
	URL      string
	Message  string
}

// ScanCompletedEvent is published once a scan result is stored.
type ScanCompletedEvent struct {
	ScanID      string
	Mode        model.ScanMode
	Source      model.ScanSource
	Matched     int
	Flagged     int
	Piracy      int
	CompletedAt time.Time
}

// NewHistoryEntry summarises a stored result.
func NewHistoryEntry(r model.ScanResult) HistoryEntry {
	return HistoryEntry{
		ScanID:  r.ScanID,
		Mode:    r.Mode,
		Source:  r.Source,
		Query:   r.Query,
		Date:    r.CreatedAt,
		Status:  StatusCompleted,
		Matched: len(r.MatchedEntities),
		Flagged: len(r.FlaggedAccounts),
		Piracy:  len(r.PiracyItems),
	}
}
