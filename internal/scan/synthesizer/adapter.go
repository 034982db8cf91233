package synthesizer

import (
	"math"
	"strconv"
	"time"

	"aegis-srv/internal/model"
	"aegis-srv/internal/sampling"
	"aegis-srv/pkg/analyzer"
)

const (
	analysisNeutralShare = 0.2
	analysisMaxAuthors   = 10
	analysisNodeValue    = 10
	analysisBaseMatch    = 85
	analysisTitleRunes   = 50
	analysisMaxLocations = 5
)

var analysisLocations = []model.GeoSpreadPoint{
	{Platform: model.PlatformYouTube, Location: "San Francisco", Lat: 37.7749, Lng: -122.4194, Severity: model.SeverityHigh, Count: 1},
	{Platform: model.PlatformYouTube, Location: "New York", Lat: 40.7128, Lng: -74.0060, Severity: model.SeverityMedium, Count: 1},
	{Platform: model.PlatformYouTube, Location: "London", Lat: 51.5074, Lng: -0.1278, Severity: model.SeverityMedium, Count: 1},
}

// FromAnalysis adapts an analyzer payload into the same shape Synthesize produces.
func (s *Synthesizer) FromAnalysis(resp analyzer.AnalyzeResponse, in Input) model.ScanResult {
	now := s.now()
	mode := in.Mode
	if !mode.IsValid() {
		mode = model.ScanModeBoth
	}

	res := model.ScanResult{
		ScanID:          "yt_" + resp.VideoID,
		Mode:            mode,
		Source:          model.ScanSourceAnalyzer,
		Query:           in.Query,
		CorpusSize:      resp.Statistics.TotalComments,
		MatchedEntities: []int{},
		Sentiment:       analysisSentiment(resp.Statistics),
		Timeline:        s.analysisTimeline(now),
		Network:         analysisNetwork(resp.HarassmentComments),
		FlaggedAccounts: make([]model.FlaggedAccount, 0, len(resp.HarassmentComments)),
		PiracyItems:     make([]model.PiracyItem, 0, len(resp.CopyrightViolations)),
		CreatedAt:       now,
	}

	for _, c := range resp.HarassmentComments {
		risk := model.RiskMedium
		if c.Severity == string(model.SeverityHigh) {
			risk = model.RiskHigh
		}
		res.FlaggedAccounts = append(res.FlaggedAccounts, model.FlaggedAccount{
			Handle:   c.Author,
			Platform: model.PlatformYouTube,
			Risk:     risk,
			LastSeen: parseCommentTime(c.Time, now),
			URL:      resp.VideoURL,
			Comment:  c.Text,
		})
	}

	for i, v := range resp.CopyrightViolations {
		res.PiracyItems = append(res.PiracyItems, model.PiracyItem{
			ID:         "yt_" + strconv.Itoa(i),
			Platform:   model.PlatformYouTube,
			Title:      truncateTitle(v.Text),
			Match:      analysisBaseMatch + s.sampler.IntRange(0, 14),
			Severity:   model.Severity(v.Severity),
			DetectedAt: v.Time,
			URL:        resp.VideoURL,
		})
	}

	n := min(len(res.PiracyItems), analysisMaxLocations, len(analysisLocations))
	res.GeoSpread = append([]model.GeoSpreadPoint{}, analysisLocations[:n]...)
	return res
}

// analysisSentiment treats a fixed share as neutral and every harassment comment as hate.
func analysisSentiment(st analyzer.Statistics) model.SentimentHistogram {
	total := max(0, st.TotalComments)
	hate := sampling.ClampInt(st.HarassmentComments, 0, total)
	neutral := sampling.ClampInt(int(math.Floor(float64(total)*analysisNeutralShare)), 0, total-hate)
	return model.SentimentHistogram{
		Positive: total - hate - neutral,
		Neutral:  neutral,
		Hate:     hate,
	}
}

func (s *Synthesizer) analysisTimeline(now time.Time) []model.TimelinePoint {
	out := make([]model.TimelinePoint, timelineHours)
	for i := range out {
		at := now.Add(-time.Duration(timelineHours-i-1) * time.Hour)
		out[i] = model.TimelinePoint{Label: at.Format(timelineLabel), Value: s.sampler.IntRange(10, 59)}
	}
	return out
}

func analysisNetwork(comments []analyzer.Comment) model.NetworkGraph {
	g := model.NetworkGraph{Nodes: []model.NetworkNode{}, Edges: []model.NetworkEdge{}}
	seen := map[string]struct{}{}
	for _, c := range comments {
		if len(g.Nodes) == analysisMaxAuthors {
			break
		}
		if _, ok := seen[c.Author]; ok {
			continue
		}
		seen[c.Author] = struct{}{}
		g.Nodes = append(g.Nodes, model.NetworkNode{ID: len(g.Nodes) + 1, Label: c.Author, Value: analysisNodeValue})
	}
	return g
}

func truncateTitle(text string) string {
	r := []rune(text)
	if len(r) > analysisTitleRunes {
		r = r[:analysisTitleRunes]
	}
	return string(r) + "..."
}

// parseCommentTime accepts the timestamp layouts the analyzer emits and falls back to now.
func parseCommentTime(v string, now time.Time) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return now
}
