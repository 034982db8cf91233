package synthesizer

import (
	"time"

	"aegis-srv/internal/model"
	"aegis-srv/internal/sampling"
)

const (
	flagMin         = 3
	flagMax         = 10
	extraMax        = 3
	suspectLookback = 7 * 24 * time.Hour
	extraLookback   = 3 * 24 * time.Hour
)

// ProfileURL is the public profile address of an entity.
func ProfileURL(e model.Entity) string {
	return "https://" + e.Platform.Slug() + ".com/" + e.Username
}

func (s *Synthesizer) suspicious(matched []model.Entity) []model.Entity {
	var out []model.Entity
	for _, e := range matched {
		if containsAny(e.ContentText(), s.lexicon) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Synthesizer) flagged(matched []model.Entity, now time.Time) []model.FlaggedAccount {
	suspects := s.suspicious(matched)
	count := min(len(suspects), s.sampler.IntRange(flagMin, flagMax))
	selected := sampling.RandomSubset(s.sampler, suspects, min(flagMin, count), count)

	out := make([]model.FlaggedAccount, 0, len(selected)+extraMax)
	picked := make(map[int]struct{}, len(selected))
	for _, e := range selected {
		picked[e.ID] = struct{}{}
		out = append(out, s.account(e, sampling.RandomTieredLabel(s.sampler, sampling.RiskTable), now, suspectLookback))
	}

	rest := make([]model.Entity, 0, len(matched))
	for _, e := range matched {
		if _, ok := picked[e.ID]; !ok {
			rest = append(rest, e)
		}
	}
	if len(rest) > 0 && s.sampler.Chance(0.5) {
		for _, e := range sampling.RandomSubset(s.sampler, rest, 1, s.sampler.IntRange(1, extraMax)) {
			out = append(out, s.account(e, model.RiskLow, now, extraLookback))
		}
	}
	return out
}

func (s *Synthesizer) account(e model.Entity, risk model.RiskLevel, now time.Time, lookback time.Duration) model.FlaggedAccount {
	ago := time.Duration(s.sampler.Float64() * float64(lookback))
	return model.FlaggedAccount{
		Handle:   e.Username,
		Platform: e.Platform,
		Risk:     risk,
		LastSeen: now.Add(-ago),
		URL:      ProfileURL(e),
	}
}
