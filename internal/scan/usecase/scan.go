package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aegis-srv/internal/model"
	"aegis-srv/internal/scan"
	kafkaDelivery "aegis-srv/internal/scan/delivery/kafka"
	"aegis-srv/internal/scan/repository"
	"aegis-srv/internal/scan/synthesizer"
	"aegis-srv/pkg/analyzer"
)

// Run synthesises a scan over the active corpus and stores it.
func (uc *implUseCase) Run(ctx context.Context, input scan.RunInput) (model.ScanResult, error) {
	prefs := uc.preferences(ctx)
	mode, err := resolveMode(input.Mode, prefs.DefaultMode)
	if err != nil {
		return model.ScanResult{}, err
	}

	entities, err := uc.corpus.Snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "scan.usecase.Run: corpus.Snapshot failed: %v", err)
		return model.ScanResult{}, fmt.Errorf("load corpus: %w", err)
	}

	result := uc.synth.Synthesize(entities, synthesizer.Input{
		Query:     strings.TrimSpace(input.Query),
		Watchlist: strings.TrimSpace(input.Watchlist),
		Mode:      mode,
	})
	result = excludeTrusted(result, prefs)

	if err := uc.store(ctx, result); err != nil {
		return model.ScanResult{}, err
	}

	uc.l.Infof(ctx, "scan.usecase.Run: %s mode=%s matched=%d flagged=%d piracy=%d",
		result.ScanID, result.Mode, len(result.MatchedEntities), len(result.FlaggedAccounts), len(result.PiracyItems))
	return result, nil
}

// Analyze runs the external analyzer on one video and stores the adapted result.
func (uc *implUseCase) Analyze(ctx context.Context, input scan.AnalyzeInput) (model.ScanResult, error) {
	if extractVideoID(input.VideoURL) == "" {
		return model.ScanResult{}, scan.ErrInvalidVideoURL
	}
	limit := input.Limit
	if limit == 0 {
		limit = scan.DefaultAnalyzeLimit
	}
	if limit < 0 || limit > scan.MaxAnalyzeLimit {
		return model.ScanResult{}, scan.ErrInvalidLimit
	}

	prefs := uc.preferences(ctx)
	mode, err := resolveMode(input.Mode, prefs.DefaultMode)
	if err != nil {
		return model.ScanResult{}, err
	}

	if uc.analyzer == nil {
		return model.ScanResult{}, fmt.Errorf("%w: analyzer not configured", scan.ErrAnalysisUnavailable)
	}

	keywords := cleanKeywords(input.Keywords)
	resp, err := uc.analyzer.Analyze(ctx, analyzer.AnalyzeRequest{
		VideoURL: strings.TrimSpace(input.VideoURL),
		Keywords: keywords,
		Limit:    limit,
	})
	if err != nil {
		uc.l.Warnf(ctx, "scan.usecase.Analyze: analyzer failed: %v", err)
		return model.ScanResult{}, fmt.Errorf("%w: %v", scan.ErrAnalysisUnavailable, err)
	}

	// Flags here are comment authors on one video. The trusted list applies to corpus profiles only.
	result := uc.synth.FromAnalysis(*resp, synthesizer.Input{
		Query:     strings.TrimSpace(input.VideoURL),
		Watchlist: strings.Join(keywords, ","),
		Mode:      mode,
	})

	if err := uc.store(ctx, result); err != nil {
		return model.ScanResult{}, err
	}

	uc.l.Infof(ctx, "scan.usecase.Analyze: %s comments=%d flagged=%d piracy=%d",
		result.ScanID, result.CorpusSize, len(result.FlaggedAccounts), len(result.PiracyItems))
	return result, nil
}

func (uc *implUseCase) GetResult(ctx context.Context, scanID string) (model.ScanResult, error) {
	if strings.TrimSpace(scanID) == "" {
		return model.ScanResult{}, scan.ErrScanIDRequired
	}

	result, err := uc.repo.GetResult(ctx, scanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ScanResult{}, scan.ErrScanNotFound
		}
		uc.l.Errorf(ctx, "scan.usecase.GetResult: repo.GetResult failed: %v", err)
		return model.ScanResult{}, fmt.Errorf("load scan %s: %w", scanID, err)
	}
	return result, nil
}

func (uc *implUseCase) History(ctx context.Context, input scan.HistoryInput) (scan.HistoryOutput, error) {
	entries, err := uc.repo.ListHistory(ctx, repository.ListHistoryOptions{Limit: uc.config.HistoryLimit})
	if err != nil {
		uc.l.Errorf(ctx, "scan.usecase.History: repo.ListHistory failed: %v", err)
		return scan.HistoryOutput{}, fmt.Errorf("list history: %w", err)
	}

	input.Paging.Adjust()
	start, end := input.Paging.Window(len(entries))
	page := entries[start:end]

	return scan.HistoryOutput{
		Entries:   page,
		Paginator: input.Paging.For(int64(len(entries)), len(page)),
	}, nil
}

// Takedown prepares a notice for a piracy item or flagged account of a stored scan.
// Nothing is sent to the platform.
func (uc *implUseCase) Takedown(ctx context.Context, input scan.TakedownInput) (scan.TakedownOutput, error) {
	if strings.TrimSpace(input.ItemID) == "" {
		return scan.TakedownOutput{}, scan.ErrItemNotFound
	}

	result, err := uc.GetResult(ctx, input.ScanID)
	if err != nil {
		return scan.TakedownOutput{}, err
	}

	out, ok := findTakedownTarget(result, input.ItemID)
	if !ok {
		return scan.TakedownOutput{}, scan.ErrItemNotFound
	}
	out.Message = fmt.Sprintf("Takedown notice generated for %s", input.ItemID)

	uc.l.Infof(ctx, "scan.usecase.Takedown: %s/%s on %s", input.ScanID, input.ItemID, out.Platform)
	return out, nil
}

// store persists the result, then records history and announces it. Only the result
// write is fatal.
func (uc *implUseCase) store(ctx context.Context, result model.ScanResult) error {
	if err := uc.repo.SaveResult(ctx, repository.SaveResultOptions{Result: result, TTL: uc.config.ResultTTL}); err != nil {
		uc.l.Errorf(ctx, "scan.usecase.store: repo.SaveResult failed: %v", err)
		return fmt.Errorf("save scan: %w", err)
	}

	uc.metrics.ObserveScan(string(result.Mode), string(result.Source), len(result.MatchedEntities), len(result.FlaggedAccounts))

	if err := uc.repo.AppendHistory(ctx, repository.AppendHistoryOptions{
		Entry: scan.NewHistoryEntry(result),
		Max:   uc.config.HistoryLimit,
	}); err != nil {
		uc.l.Warnf(ctx, "scan.usecase.store: repo.AppendHistory failed: %v", err)
	}

	if uc.producer == nil {
		return nil
	}
	if err := uc.producer.PublishScanCompleted(ctx, scan.ScanCompletedEvent{
		ScanID:      result.ScanID,
		Mode:        result.Mode,
		Source:      result.Source,
		Matched:     len(result.MatchedEntities),
		Flagged:     len(result.FlaggedAccounts),
		Piracy:      len(result.PiracyItems),
		CompletedAt: result.CreatedAt,
	}); err != nil {
		uc.l.Warnf(ctx, "scan.usecase.store: PublishScanCompleted failed: %v", err)
		uc.metrics.ObserveEvent(kafkaDelivery.TopicScanCompleted, "error")
		return nil
	}
	uc.metrics.ObserveEvent(kafkaDelivery.TopicScanCompleted, "published")
	return nil
}
