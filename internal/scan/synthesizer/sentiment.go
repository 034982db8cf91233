package synthesizer

import (
	"aegis-srv/internal/model"
	"aegis-srv/internal/sampling"
)

// sentiment draws positive and hate shares and assigns the remainder to neutral.
// hate is clamped so neutral never goes negative and the sum stays exact.
func (s *Synthesizer) sentiment(total int) model.SentimentHistogram {
	if total <= 0 {
		return model.SentimentHistogram{}
	}
	positive := sampling.ClampInt(s.sampler.WeightedBoundedValue(total, 0.1, 0.4), 0, total)
	hate := sampling.ClampInt(s.sampler.WeightedBoundedValue(total, 0.05, 0.3), 0, total-positive)
	return model.SentimentHistogram{
		Positive: positive,
		Neutral:  total - positive - hate,
		Hate:     hate,
	}
}
