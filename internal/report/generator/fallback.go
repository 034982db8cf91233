package generator

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"aegis-srv/internal/metrics"
	"aegis-srv/internal/model"
	"aegis-srv/internal/report"
	"aegis-srv/pkg/log"
)

// DefaultMinLength is the shortest primary output accepted, in runes.
const DefaultMinLength = 200

const (
	reasonError = "error"
	reasonShort = "short_output"
)

type Option func(*Fallback)

func WithMinLength(n int) Option {
	return func(f *Fallback) {
		if n > 0 {
			f.minLength = n
		}
	}
}

func WithMetrics(m *metrics.Collector) Option {
	return func(f *Fallback) { f.metrics = m }
}

// Fallback tries primary and switches to secondary when primary fails or returns too little text.
type Fallback struct {
	l         log.Logger
	primary   report.Generator
	secondary report.Generator
	minLength int
	metrics   *metrics.Collector
}

func NewFallback(l log.Logger, primary, secondary report.Generator, opts ...Option) *Fallback {
	f := &Fallback{
		l:         l,
		primary:   primary,
		secondary: secondary,
		minLength: DefaultMinLength,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Fallback) Name() string {
	return f.primary.Name() + "|" + f.secondary.Name()
}

func (f *Fallback) Generate(ctx context.Context, kind model.ReportKind, sc model.ScanContext) (string, error) {
	text, err := f.primary.Generate(ctx, kind, sc)
	if err == nil && utf8.RuneCountInString(strings.TrimSpace(text)) >= f.minLength {
		return text, nil
	}

	reason := reasonError
	if err == nil {
		reason = reasonShort
		err = fmt.Errorf("%w: %d runes", report.ErrEmptyOutput, utf8.RuneCountInString(strings.TrimSpace(text)))
	}
	f.l.Warnf(ctx, "report.generator.Fallback: %s failed for scan %s (%s), using %s: %v",
		f.primary.Name(), sc.ScanID, reason, f.secondary.Name(), err)
	f.metrics.ObserveFallback(f.primary.Name(), reason)

	return f.secondary.Generate(ctx, kind, sc)
}
