package usecase

import (
	"strings"

	"aegis-srv/internal/settings"
)

func withDefaults(s settings.Settings) settings.Settings {
	d := settings.Defaults()
	if !s.DefaultMode.IsValid() {
		s.DefaultMode = d.DefaultMode
	}
	if s.MaxResults <= 0 {
		s.MaxResults = d.MaxResults
	}
	if s.TrustedAccounts == nil {
		s.TrustedAccounts = d.TrustedAccounts
	}
	return s
}

// cleanHandles trims, drops blanks and removes duplicates while keeping order.
func cleanHandles(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, h := range in {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(h, "@"))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, h)
	}
	return out
}
