package settings

import (
	"strings"

	"aegis-srv/internal/model"
)

const (
	DefaultMaxResults = 50
	MaxMaxResults     = 500
)

// Settings are the operator preferences applied to scans and reports.
type Settings struct {
	DefaultMode     model.ScanMode `json:"default_mode"`
	AutoReport      bool           `json:"auto_report"`
	TrustedAccounts []string       `json:"trusted_accounts"`
	MaxResults      int            `json:"max_results"`
}

// Defaults are served until an operator saves settings.
func Defaults() Settings {
	return Settings{
		DefaultMode:     model.ScanModeBoth,
		AutoReport:      false,
		TrustedAccounts: []string{},
		MaxResults:      DefaultMaxResults,
	}
}

// IsTrusted reports whether handle matches a trusted account, ignoring case and a leading '@'.
func (s Settings) IsTrusted(handle string) bool {
	h := normalizeHandle(handle)
	if h == "" {
		return false
	}
	for _, t := range s.TrustedAccounts {
		if normalizeHandle(t) == h {
			return true
		}
	}
	return false
}

// UpdateInput is a partial update; nil fields keep their stored value.
type UpdateInput struct {
	DefaultMode     *model.ScanMode
	AutoReport      *bool
	TrustedAccounts []string
	MaxResults      *int
}

func normalizeHandle(h string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(h), "@"))
}
