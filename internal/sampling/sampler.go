// Package sampling holds the randomized primitives every scan is built from.
// All randomness flows through a Sampler so a fixed seed reproduces a scan.
package sampling

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Sampler is a mutex-guarded random source. Safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New wraps src.
func New(src rand.Source) *Sampler {
	return &Sampler{rnd: rand.New(src)}
}

// NewSeeded returns a Sampler with a deterministic sequence for seed.
func NewSeeded(seed int64) *Sampler {
	return New(rand.NewSource(seed))
}

// NewFromTime seeds from the wall clock.
func NewFromTime() *Sampler {
	return NewSeeded(time.Now().UnixNano())
}

// Float64 returns a uniform value in [0, 1).
func (s *Sampler) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// Intn returns a uniform value in [0, n). n <= 0 yields 0.
func (s *Sampler) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// IntRange returns a uniform value in [lo, hi], both inclusive.
func (s *Sampler) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.Intn(hi-lo+1)
}

// Chance reports true with probability p.
func (s *Sampler) Chance(p float64) bool {
	return s.Float64() < p
}

// Uniform returns a value in [-delta, delta).
func (s *Sampler) Uniform(delta float64) float64 {
	return (s.Float64()*2 - 1) * delta
}

// Base36 returns n random characters from [0-9a-z].
func (s *Sampler) Base36(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	s.mu.Lock()
	for i := range b {
		b[i] = base36Alphabet[s.rnd.Intn(len(base36Alphabet))]
	}
	s.mu.Unlock()
	return string(b)
}

// WeightedBoundedValue draws floor(total*low) + floor(u*total*high).
// The result lies in [floor(total*low), floor(total*low)+floor(total*high)].
func (s *Sampler) WeightedBoundedValue(total int, low, high float64) int {
	if total <= 0 {
		return 0
	}
	base := int(math.Floor(float64(total) * low))
	return base + int(math.Floor(s.Float64()*float64(total)*high))
}

// JitterCoordinate adds independent noise in [-maxDelta, maxDelta] to each axis.
func (s *Sampler) JitterCoordinate(lat, lng, maxDelta float64) (float64, float64) {
	return s.Jitter(lat, maxDelta), s.Jitter(lng, maxDelta)
}

// Shuffle returns a Fisher-Yates permutation of a copy of seq.
func Shuffle[T any](s *Sampler, seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(out) - 1; i > 0; i-- {
		j := s.rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// RandomSubset shuffles seq and returns its first c elements, c drawn
// uniformly from [min, min(max, len(seq))]. When min exceeds that bound
// the bound wins, so the result never exceeds len(seq).
func RandomSubset[T any](s *Sampler, seq []T, min, max int) []T {
	shuffled := Shuffle(s, seq)
	upper := max
	if upper > len(shuffled) {
		upper = len(shuffled)
	}
	lower := min
	if lower > upper {
		lower = upper
	}
	if lower < 0 {
		lower = 0
	}
	return shuffled[:s.IntRange(lower, upper)]
}
