package sampling

import "math"

const (
	MinMatch = 50
	MaxMatch = 99
)

// Jitter returns base moved by uniform noise in [-variance, variance).
func (s *Sampler) Jitter(base, variance float64) float64 {
	return base + s.Uniform(variance)
}

// RandomMatch jitters a base match percentage and clamps it to [MinMatch, MaxMatch].
func (s *Sampler) RandomMatch(base, variance int) int {
	m := int(math.Floor(s.Jitter(float64(base), float64(variance))))
	return ClampInt(m, MinMatch, MaxMatch)
}

// ClampInt bounds v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
