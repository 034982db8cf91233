package synthesizer

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"aegis-srv/internal/corpus"
	"aegis-srv/internal/model"
	"aegis-srv/internal/network"
	"aegis-srv/internal/sampling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func newTestSynthesizer(seed int64) *Synthesizer {
	s := sampling.NewSeeded(seed)
	return New(s, network.New(s), WithClock(func() time.Time { return fixedNow }))
}

func seedCorpus(t *testing.T) []model.Entity {
	t.Helper()
	entities, err := corpus.Seed()
	require.NoError(t, err)
	require.Len(t, entities, 25)
	return entities
}

func assertInvariants(t *testing.T, res model.ScanResult) {
	t.Helper()
	total := len(res.MatchedEntities)
	assert.Equal(t, total, res.Sentiment.Total())
	assert.GreaterOrEqual(t, res.Sentiment.Positive, 0)
	assert.GreaterOrEqual(t, res.Sentiment.Neutral, 0)
	assert.GreaterOrEqual(t, res.Sentiment.Hate, 0)
	assert.LessOrEqual(t, len(res.FlaggedAccounts), total)

	pairs := map[[2]int]bool{}
	for _, e := range res.Network.Edges {
		assert.NotEqual(t, e.From, e.To)
		k := [2]int{min(e.From, e.To), max(e.From, e.To)}
		assert.False(t, pairs[k])
		pairs[k] = true
	}
	for _, p := range res.PiracyItems {
		assert.GreaterOrEqual(t, p.Match, 50)
		assert.LessOrEqual(t, p.Match, 99)
	}
	for _, tp := range res.Timeline {
		assert.GreaterOrEqual(t, tp.Value, 5)
	}
}

func TestSynthesize_GamingQuery(t *testing.T) {
	entities := seedCorpus(t)
	for seed := int64(0); seed < 25; seed++ {
		res := newTestSynthesizer(seed).Synthesize(entities, Input{Query: "gaming"})

		assert.Contains(t, res.MatchedEntities, 9, "ashin_gaming must match")
		for _, id := range res.MatchedEntities {
			e := entities[id-1]
			assert.Contains(t, e.SearchText(), "gaming")
		}
		assertInvariants(t, res)
	}
}

func TestSynthesize_HashtagAndCaseNormalised(t *testing.T) {
	res := newTestSynthesizer(3).Synthesize(seedCorpus(t), Input{Query: " #GAMING , #nothing-matches-this "})
	assert.Equal(t, []int{9}, res.MatchedEntities)
}

func TestSynthesize_NoMatchFallsBack(t *testing.T) {
	entities := seedCorpus(t)
	for seed := int64(0); seed < 25; seed++ {
		res := newTestSynthesizer(seed).Synthesize(entities, Input{Query: "zzzz-no-such-token"})
		assert.GreaterOrEqual(t, len(res.MatchedEntities), 5)
		assert.LessOrEqual(t, len(res.MatchedEntities), 15)
		assertInvariants(t, res)
	}
}

func TestSynthesize_EmptyQueryMatchesEverything(t *testing.T) {
	res := newTestSynthesizer(1).Synthesize(seedCorpus(t), Input{})
	assert.Len(t, res.MatchedEntities, 25)
	assert.ElementsMatch(t, idsOf(seedCorpus(t)), res.MatchedEntities)
	assertInvariants(t, res)
}

func TestSynthesize_WatchlistUnion(t *testing.T) {
	res := newTestSynthesizer(2).Synthesize(seedCorpus(t), Input{
		Query:     "gaming",
		Watchlist: "@Mike_Fitness\n\n  @sophia  \n@ashin_gaming",
	})
	assert.ElementsMatch(t, []int{2, 9, 25}, res.MatchedEntities)
}

func TestSynthesize_EmptyCorpus(t *testing.T) {
	res := newTestSynthesizer(1).Synthesize(nil, Input{Query: "gaming"})

	assert.Equal(t, 0, res.CorpusSize)
	assert.Empty(t, res.MatchedEntities)
	assert.Equal(t, model.SentimentHistogram{}, res.Sentiment)
	assert.Empty(t, res.FlaggedAccounts)
	assert.Empty(t, res.PiracyItems)
	assert.Empty(t, res.GeoSpread)
	assert.Empty(t, res.Timeline)
	assert.Empty(t, res.Network.Nodes)
	assert.Empty(t, res.Network.Edges)
	assert.NotEmpty(t, res.ScanID)
}

func TestSynthesize_ScanIDAndDefaults(t *testing.T) {
	res := newTestSynthesizer(1).Synthesize(seedCorpus(t), Input{})
	assert.Regexp(t, regexp.MustCompile(fmt.Sprintf(`^scan_%d_[0-9a-z]{9}$`, fixedNow.UnixMilli())), res.ScanID)
	assert.Equal(t, model.ScanModeBoth, res.Mode)
	assert.Equal(t, model.ScanSourceSynthetic, res.Source)
	assert.Equal(t, fixedNow, res.CreatedAt)

	require.Len(t, res.Timeline, 12)
	assert.Equal(t, "04:09", res.Timeline[0].Label)
	assert.Equal(t, "15:09", res.Timeline[11].Label)
}

func TestSynthesize_Reproducible(t *testing.T) {
	entities := seedCorpus(t)
	a := newTestSynthesizer(77).Synthesize(entities, Input{Query: "travel, music"})
	b := newTestSynthesizer(77).Synthesize(entities, Input{Query: "travel, music"})
	assert.Equal(t, a, b)
}

func TestSynthesize_FlaggedFromLexicon(t *testing.T) {
	entities := []model.Entity{
		{ID: 1, Username: "leaker", Platform: model.PlatformTelegram, Hashtags: "#leak #camrip", Engagement: model.EngagementHigh},
		{ID: 2, Username: "spammer", Platform: model.PlatformX, Comments: "free download here", Engagement: model.EngagementLow},
		{ID: 3, Username: "botnet", Platform: model.PlatformX, Comments: "bot farm", Engagement: model.EngagementLow},
		{ID: 4, Username: "clean", Platform: model.PlatformYouTube, Comments: "hello", Engagement: model.EngagementLow},
	}
	for seed := int64(0); seed < 30; seed++ {
		res := newTestSynthesizer(seed).Synthesize(entities, Input{})

		suspects := 0
		for _, f := range res.FlaggedAccounts {
			assert.Equal(t, "https://"+strings.ToLower(string(f.Platform))+".com/"+f.Handle, f.URL)
			assert.False(t, f.LastSeen.After(fixedNow))
			assert.True(t, f.LastSeen.After(fixedNow.Add(-suspectLookback)))
			if f.Handle != "clean" {
				suspects++
			}
		}
		assert.Equal(t, 3, suspects, "all three suspects flagged when fewer than the minimum exist")
		assertInvariants(t, res)
	}
}

func TestSynthesize_GeoGroupsByPlatform(t *testing.T) {
	res := newTestSynthesizer(8).Synthesize(seedCorpus(t), Input{})

	total := 0
	for _, g := range res.GeoSpread {
		total += g.Count
		assert.Equal(t, sampling.GeoSeverity(g.Count), g.Severity)
		base := platformLocations[g.Platform]
		assert.InDelta(t, base.lat, g.Lat, geoJitter)
		assert.InDelta(t, base.lng, g.Lng, geoJitter)
		assert.Equal(t, base.label, g.Location)
	}
	assert.Equal(t, 25, total)
}

func TestSynthesize_PiracyWithoutVideos(t *testing.T) {
	entities := []model.Entity{
		{ID: 1, Username: "a", Platform: model.PlatformX, Engagement: model.EngagementLow},
		{ID: 2, Username: "b", Platform: model.PlatformX, Engagement: model.EngagementLow},
		{ID: 3, Username: "c", Platform: model.PlatformX, Engagement: model.EngagementLow},
		{ID: 4, Username: "d", Platform: model.PlatformX, Engagement: model.EngagementLow},
	}
	res := newTestSynthesizer(4).Synthesize(entities, Input{})

	require.GreaterOrEqual(t, len(res.PiracyItems), 3)
	for _, p := range res.PiracyItems {
		assert.True(t, strings.HasSuffix(p.Title, " content"))
		assert.Regexp(t, `^db_[1-4]_[0-9a-z]{5}$`, p.ID)
		assert.NotEmpty(t, p.DetectedAt)
	}
}

func TestSentiment_SmallTotals(t *testing.T) {
	syn := newTestSynthesizer(0)
	for total := 0; total <= 5; total++ {
		for i := 0; i < 200; i++ {
			h := syn.sentiment(total)
			assert.Equal(t, total, h.Total())
			assert.GreaterOrEqual(t, h.Neutral, 0)
			assert.GreaterOrEqual(t, h.Positive, 0)
			assert.GreaterOrEqual(t, h.Hate, 0)
		}
	}
}

func TestQueryTokens(t *testing.T) {
	assert.Equal(t, []string{"gaming", "ps5", "free download"}, QueryTokens(" #Gaming,PS5 ,, Free Download"))
	assert.Empty(t, QueryTokens(" , "))
}

func TestWatchlistHandles(t *testing.T) {
	assert.Equal(t, []string{"mike", "anna_foodie"}, WatchlistHandles("@Mike\n\n anna_foodie \n"))
}

func idsOf(entities []model.Entity) []int {
	out := make([]int, len(entities))
	for i, e := range entities {
		out[i] = e.ID
	}
	return out
}
