package usecase

import (
	"context"
	"regexp"
	"strings"

	"aegis-srv/internal/model"
	"aegis-srv/internal/scan"
	"aegis-srv/internal/settings"
)

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/v/([a-zA-Z0-9_-]{11})`),
}

var bareVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// extractVideoID accepts watch, short, embed and legacy URLs or a bare 11-character id.
func extractVideoID(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}
	if bareVideoID.MatchString(raw) {
		return raw
	}
	return ""
}

// preferences never fails a scan; unreadable settings fall back to defaults.
func (uc *implUseCase) preferences(ctx context.Context) settings.Settings {
	if uc.settings == nil {
		return settings.Defaults()
	}
	s, err := uc.settings.Get(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "scan.usecase.preferences: settings unavailable, using defaults: %v", err)
		return settings.Defaults()
	}
	return s
}

func resolveMode(requested, fallback model.ScanMode) (model.ScanMode, error) {
	if requested == "" {
		if fallback.IsValid() {
			return fallback, nil
		}
		return model.ScanModeBoth, nil
	}
	if !requested.IsValid() {
		return "", scan.ErrInvalidMode
	}
	return requested, nil
}

// excludeTrusted drops flagged accounts the operator marked as trusted.
func excludeTrusted(result model.ScanResult, prefs settings.Settings) model.ScanResult {
	if len(prefs.TrustedAccounts) == 0 {
		return result
	}
	kept := make([]model.FlaggedAccount, 0, len(result.FlaggedAccounts))
	for _, a := range result.FlaggedAccounts {
		if prefs.IsTrusted(a.Handle) {
			continue
		}
		kept = append(kept, a)
	}
	result.FlaggedAccounts = kept
	return result
}

func cleanKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func findTakedownTarget(result model.ScanResult, itemID string) (scan.TakedownOutput, bool) {
	for _, p := range result.PiracyItems {
		if p.ID == itemID {
			return scan.TakedownOutput{ScanID: result.ScanID, ItemID: itemID, Platform: p.Platform, URL: p.URL}, true
		}
	}
	for _, a := range result.FlaggedAccounts {
		if a.Handle == itemID {
			return scan.TakedownOutput{ScanID: result.ScanID, ItemID: itemID, Platform: a.Platform, URL: a.URL}, true
		}
	}
	return scan.TakedownOutput{}, false
}
