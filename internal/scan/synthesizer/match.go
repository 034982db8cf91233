package synthesizer

import (
	"strings"

	"aegis-srv/internal/model"
	"aegis-srv/internal/sampling"
)

// QueryTokens splits a comma separated query into lower-cased tokens
// with the leading '#' removed. Empty tokens are dropped.
func QueryTokens(query string) []string {
	return normalizeTokens(strings.Split(query, ","))
}

// WatchlistHandles splits a newline separated watchlist into lower-cased handles without '@'.
func WatchlistHandles(watchlist string) []string {
	var out []string
	for _, line := range strings.Split(watchlist, "\n") {
		h := strings.ToLower(strings.TrimSpace(line))
		h = strings.TrimPrefix(h, "@")
		if h != "" {
			out = append(out, h)
		}
	}
	return out
}

func normalizeTokens(raw []string) []string {
	var out []string
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		t = strings.TrimPrefix(t, "#")
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func containsAny(text string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// match applies the query and watchlist filters to a shuffled copy of corpus.
// Results are the union of both filters, de-duplicated by entity id.
// A non-empty corpus never produces an empty match set.
func (s *Synthesizer) match(corpus []model.Entity, query, watchlist string) []model.Entity {
	shuffled := sampling.Shuffle(s.sampler, corpus)
	tokens := QueryTokens(query)
	handles := WatchlistHandles(watchlist)

	matched := shuffled
	if len(tokens) > 0 {
		matched = make([]model.Entity, 0, len(shuffled))
		for _, e := range shuffled {
			if containsAny(e.SearchText(), tokens) {
				matched = append(matched, e)
			}
		}
	}

	if len(handles) > 0 {
		seen := make(map[int]struct{}, len(matched))
		union := make([]model.Entity, 0, len(matched))
		for _, e := range matched {
			seen[e.ID] = struct{}{}
			union = append(union, e)
		}
		for _, e := range shuffled {
			if _, ok := seen[e.ID]; ok {
				continue
			}
			if containsAny(strings.ToLower(e.Username), handles) {
				seen[e.ID] = struct{}{}
				union = append(union, e)
			}
		}
		matched = union
	}

	if len(matched) == 0 {
		return sampling.RandomSubset(s.sampler, shuffled, fallbackMin, fallbackMax)
	}
	return sampling.Shuffle(s.sampler, matched)
}
