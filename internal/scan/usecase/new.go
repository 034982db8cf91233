package usecase

import (
	"time"

	"aegis-srv/internal/metrics"
	"aegis-srv/internal/scan"
	"aegis-srv/internal/scan/repository"
	"aegis-srv/internal/scan/synthesizer"
	"aegis-srv/pkg/analyzer"
	"aegis-srv/pkg/log"
)

const (
	defaultResultTTL    = 24 * time.Hour
	defaultHistoryLimit = 50
)

// Config holds scan storage settings.
type Config struct {
	ResultTTL    time.Duration
	HistoryLimit int64
}

type implUseCase struct {
	repo     repository.Repository
	synth    *synthesizer.Synthesizer
	corpus   scan.CorpusProvider
	settings scan.SettingsProvider
	analyzer analyzer.IAnalyzer
	producer scan.Producer
	metrics  *metrics.Collector
	l        log.Logger
	config   Config
}

// New creates a scan UseCase. analyzer and producer may be nil: remote analysis then
// reports ErrAnalysisUnavailable and completed scans are not announced.
func New(
	repo repository.Repository,
	synth *synthesizer.Synthesizer,
	corpus scan.CorpusProvider,
	settings scan.SettingsProvider,
	analyzerClient analyzer.IAnalyzer,
	producer scan.Producer,
	m *metrics.Collector,
	l log.Logger,
	cfg Config,
) scan.UseCase {
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = defaultResultTTL
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	return &implUseCase{
		repo:     repo,
		synth:    synth,
		corpus:   corpus,
		settings: settings,
		analyzer: analyzerClient,
		producer: producer,
		metrics:  m,
		l:        l,
		config:   cfg,
	}
}
