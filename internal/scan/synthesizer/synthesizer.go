// Package synthesizer turns a corpus snapshot and a query into a ScanResult.
// It performs no I/O; every random decision goes through the injected Sampler.
package synthesizer

import (
	"fmt"
	"time"

	"aegis-srv/internal/model"
	"aegis-srv/internal/network"
	"aegis-srv/internal/sampling"
)

const (
	fallbackMin   = 5
	fallbackMax   = 15
	scanIDSuffix  = 9
	networkMin    = 5
	networkMax    = 10
	timelineHours = 12
)

// DefaultLexicon are the keywords that make an entity suspicious.
var DefaultLexicon = []string{
	"leak", "piracy", "free download", "camrip", "troll", "hate", "spam", "fake", "scam", "bot",
}

// Input is one scan request.
type Input struct {
	Query     string
	Watchlist string
	Mode      model.ScanMode
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) { s.now = now }
}

// WithLexicon replaces DefaultLexicon.
func WithLexicon(words []string) Option {
	return func(s *Synthesizer) { s.lexicon = normalizeTokens(words) }
}

type Synthesizer struct {
	sampler *sampling.Sampler
	network *network.Builder
	now     func() time.Time
	lexicon []string
}

func New(s *sampling.Sampler, b *network.Builder, opts ...Option) *Synthesizer {
	syn := &Synthesizer{
		sampler: s,
		network: b,
		now:     time.Now,
		lexicon: DefaultLexicon,
	}
	for _, opt := range opts {
		opt(syn)
	}
	return syn
}

// Synthesize runs one scan over corpus. An empty corpus yields an empty but valid result.
func (s *Synthesizer) Synthesize(corpus []model.Entity, in Input) model.ScanResult {
	now := s.now()
	mode := in.Mode
	if !mode.IsValid() {
		mode = model.ScanModeBoth
	}

	res := model.ScanResult{
		ScanID:          s.scanID(now),
		Mode:            mode,
		Source:          model.ScanSourceSynthetic,
		Query:           in.Query,
		Watchlist:       in.Watchlist,
		CorpusSize:      len(corpus),
		MatchedEntities: []int{},
		Timeline:        []model.TimelinePoint{},
		Network:         model.NetworkGraph{Nodes: []model.NetworkNode{}, Edges: []model.NetworkEdge{}},
		FlaggedAccounts: []model.FlaggedAccount{},
		PiracyItems:     []model.PiracyItem{},
		GeoSpread:       []model.GeoSpreadPoint{},
		CreatedAt:       now,
	}
	if len(corpus) == 0 {
		return res
	}

	matched := s.match(corpus, in.Query, in.Watchlist)
	for _, e := range matched {
		res.MatchedEntities = append(res.MatchedEntities, e.ID)
	}

	res.FlaggedAccounts = s.flagged(matched, now)
	res.Sentiment = s.sentiment(len(matched))
	res.Timeline = s.timeline(now)
	res.Network = s.network.Build(sampling.RandomSubset(s.sampler, matched, networkMin, min(networkMax, len(matched))))
	res.PiracyItems = s.piracy(matched, now)
	res.GeoSpread = s.geo(matched)
	return res
}

func (s *Synthesizer) scanID(now time.Time) string {
	return fmt.Sprintf("scan_%d_%s", now.UnixMilli(), s.sampler.Base36(scanIDSuffix))
}
