package synthesizer

import (
	"strings"
	"testing"

	"aegis-srv/internal/model"
	"aegis-srv/pkg/analyzer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analysisFixture() analyzer.AnalyzeResponse {
	return analyzer.AnalyzeResponse{
		Success:  true,
		VideoID:  "dQw4w9WgXcQ",
		VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Statistics: analyzer.Statistics{
			TotalComments:       50,
			HarassmentComments:  3,
			CopyrightViolations: 2,
			ThreatLevel:         "MEDIUM",
		},
		HarassmentComments: []analyzer.Comment{
			{Author: "troll_a", Text: "you are pathetic", Time: "2025-03-14T10:00:00Z", Severity: "high"},
			{Author: "troll_b", Text: "nobody likes you", Time: "2 days ago", Severity: "medium"},
			{Author: "troll_a", Text: "again", Time: "2025-03-14T11:00:00Z", Severity: "low"},
		},
		CopyrightViolations: []analyzer.Comment{
			{Author: "pirate", Text: strings.Repeat("full movie free download link ", 4), Time: "2025-03-13", Severity: "high"},
			{Author: "reup", Text: "reupload", Time: "2025-03-12", Severity: "medium"},
		},
	}
}

func TestFromAnalysis(t *testing.T) {
	res := newTestSynthesizer(1).FromAnalysis(analysisFixture(), Input{Mode: model.ScanModeHarassment})

	assert.Equal(t, "yt_dQw4w9WgXcQ", res.ScanID)
	assert.Equal(t, model.ScanSourceAnalyzer, res.Source)
	assert.Equal(t, model.ScanModeHarassment, res.Mode)

	require.Len(t, res.FlaggedAccounts, 3)
	assert.Equal(t, model.RiskHigh, res.FlaggedAccounts[0].Risk)
	assert.Equal(t, model.RiskMedium, res.FlaggedAccounts[1].Risk)
	assert.Equal(t, model.RiskMedium, res.FlaggedAccounts[2].Risk)
	assert.Equal(t, fixedNow, res.FlaggedAccounts[1].LastSeen, "unparseable time falls back to scan time")
	assert.Equal(t, "you are pathetic", res.FlaggedAccounts[0].Comment)

	assert.Equal(t, model.SentimentHistogram{Positive: 37, Neutral: 10, Hate: 3}, res.Sentiment)

	require.Len(t, res.Network.Nodes, 2)
	assert.Empty(t, res.Network.Edges)
	assert.Equal(t, "troll_b", res.Network.Nodes[1].Label)

	require.Len(t, res.PiracyItems, 2)
	assert.Equal(t, "yt_0", res.PiracyItems[0].ID)
	assert.Len(t, []rune(res.PiracyItems[0].Title), 53)
	assert.Equal(t, "reupload...", res.PiracyItems[1].Title)
	for _, p := range res.PiracyItems {
		assert.GreaterOrEqual(t, p.Match, 85)
		assert.LessOrEqual(t, p.Match, 99)
	}

	require.Len(t, res.GeoSpread, 2)
	assert.Equal(t, "San Francisco", res.GeoSpread[0].Location)

	require.Len(t, res.Timeline, 12)
	for _, tp := range res.Timeline {
		assert.GreaterOrEqual(t, tp.Value, 10)
		assert.LessOrEqual(t, tp.Value, 59)
	}
}

func TestAnalysisSentiment_Clamped(t *testing.T) {
	tests := []struct {
		name string
		st   analyzer.Statistics
		want model.SentimentHistogram
	}{
		{"empty", analyzer.Statistics{}, model.SentimentHistogram{}},
		{"harassment exceeds total", analyzer.Statistics{TotalComments: 4, HarassmentComments: 9}, model.SentimentHistogram{Hate: 4}},
		{"harassment fills remainder", analyzer.Statistics{TotalComments: 10, HarassmentComments: 9}, model.SentimentHistogram{Neutral: 1, Hate: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analysisSentiment(tt.st)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, max(0, tt.st.TotalComments), got.Total())
		})
	}
}
