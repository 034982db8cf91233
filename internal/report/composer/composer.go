// Package composer renders investigation reports from a scan context.
// Output depends only on its input: no clock reads, no randomness, no I/O.
package composer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aegis-srv/internal/model"
)

const (
	Name = "deterministic"

	DefaultOrganization    = "Aegis AI Monitoring System"
	DefaultConfidentiality = "CONFIDENTIAL"

	dateLayout = "2006-01-02 15:04:05 MST"
)

var ErrUnknownKind = errors.New("composer: unknown report kind")

// Option configures a Composer.
type Option func(*Composer)

// WithOrganization sets the "prepared by" line.
func WithOrganization(name string) Option {
	return func(c *Composer) {
		if name != "" {
			c.organization = name
		}
	}
}

// WithConfidentiality sets the classification header.
func WithConfidentiality(label string) Option {
	return func(c *Composer) {
		if label != "" {
			c.confidentiality = label
		}
	}
}

type Composer struct {
	organization    string
	confidentiality string
}

func New(opts ...Option) *Composer {
	c := &Composer{
		organization:    DefaultOrganization,
		confidentiality: DefaultConfidentiality,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Composer) Name() string { return Name }

// Generate implements the report generator contract. It never fails for a known kind.
func (c *Composer) Generate(_ context.Context, kind model.ReportKind, sc model.ScanContext) (string, error) {
	return c.Compose(kind, sc)
}

// Compose renders the report text for kind.
func (c *Composer) Compose(kind model.ReportKind, sc model.ScanContext) (string, error) {
	w := &writer{}
	switch kind {
	case model.ReportKindCybercrime:
		c.cybercrime(w, sc)
	case model.ReportKindCopyright:
		c.copyright(w, sc)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return w.String(), nil
}

func formatDate(sc model.ScanContext) string {
	if sc.ScanDate.IsZero() {
		return "unknown"
	}
	return sc.ScanDate.Format(dateLayout)
}

func keywords(sc model.ScanContext) string {
	if strings.TrimSpace(sc.Keywords) == "" {
		return model.DefaultKeywords
	}
	return sc.Keywords
}

// writer accumulates report lines.
type writer struct {
	b strings.Builder
}

func (w *writer) line(format string, args ...any) {
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

// text writes s verbatim.
func (w *writer) text(s string) {
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *writer) blank() { w.b.WriteByte('\n') }

// section writes a heading followed by an empty line.
func (w *writer) section(title string) {
	w.blank()
	w.text(title)
	w.blank()
}

func (w *writer) String() string {
	return strings.TrimRight(w.b.String(), "\n") + "\n"
}
