package model

import "time"

// RiskLevel grades a flagged account.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Severity grades a piracy item or geo cluster.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ScanMode selects which findings a scan focuses on.
type ScanMode string

const (
	ScanModeHarassment ScanMode = "harassment"
	ScanModePiracy     ScanMode = "piracy"
	ScanModeBoth       ScanMode = "both"
)

func (m ScanMode) IsValid() bool {
	return m == ScanModeHarassment || m == ScanModePiracy || m == ScanModeBoth
}

// ScanSource tells whether a result was synthesized locally or adapted from the analyzer.
type ScanSource string

const (
	ScanSourceSynthetic ScanSource = "synthetic"
	ScanSourceAnalyzer  ScanSource = "analyzer"
)

// DefaultKeywords is reported when a scan had no query.
const DefaultKeywords = "All content"

type FlaggedAccount struct {
	Handle   string    `json:"handle"`
	Platform Platform  `json:"platform"`
	Risk     RiskLevel `json:"risk"`
	LastSeen time.Time `json:"last_seen"`
	URL      string    `json:"url"`
	Comment  string    `json:"comment,omitempty"`
}

// SentimentHistogram always sums to the matched total.
type SentimentHistogram struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Hate     int `json:"hate"`
}

// Total is Positive + Neutral + Hate.
func (s SentimentHistogram) Total() int {
	return s.Positive + s.Neutral + s.Hate
}

type TimelinePoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type NetworkNode struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

type NetworkEdge struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Value int `json:"value"`
}

type NetworkGraph struct {
	Nodes []NetworkNode `json:"nodes"`
	Edges []NetworkEdge `json:"edges"`
}

type PiracyItem struct {
	ID         string   `json:"id"`
	Platform   Platform `json:"platform"`
	Title      string   `json:"title"`
	Match      int      `json:"match"`
	Severity   Severity `json:"severity"`
	DetectedAt string   `json:"detected_at"`
	URL        string   `json:"url"`
}

type GeoSpreadPoint struct {
	Platform Platform `json:"platform"`
	Location string   `json:"location"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Severity Severity `json:"severity"`
	Count    int      `json:"count"`
}

// ScanResult is the aggregate produced by one scan. It is never mutated after construction.
type ScanResult struct {
	ScanID          string             `json:"scan_id"`
	Mode            ScanMode           `json:"mode"`
	Source          ScanSource         `json:"source"`
	Query           string             `json:"query"`
	Watchlist       string             `json:"watchlist,omitempty"`
	CorpusSize      int                `json:"corpus_size"`
	MatchedEntities []int              `json:"matched_entities"`
	Sentiment       SentimentHistogram `json:"sentiment"`
	Timeline        []TimelinePoint    `json:"timeline"`
	Network         NetworkGraph       `json:"network"`
	FlaggedAccounts []FlaggedAccount   `json:"flagged_accounts"`
	PiracyItems     []PiracyItem       `json:"piracy_items"`
	GeoSpread       []GeoSpreadPoint   `json:"geo_spread"`
	CreatedAt       time.Time          `json:"created_at"`
}

// ScanContext is what report composition needs from a scan.
type ScanContext struct {
	ScanID          string
	Keywords        string
	TotalUsers      int
	MatchedUsers    int
	ScanDate        time.Time
	FlaggedAccounts []FlaggedAccount
	PiracyItems     []PiracyItem
}

// Context derives the report context of the scan.
func (r ScanResult) Context() ScanContext {
	keywords := r.Query
	if keywords == "" {
		keywords = DefaultKeywords
	}
	return ScanContext{
		ScanID:          r.ScanID,
		Keywords:        keywords,
		TotalUsers:      r.CorpusSize,
		MatchedUsers:    r.Sentiment.Total(),
		ScanDate:        r.CreatedAt,
		FlaggedAccounts: r.FlaggedAccounts,
		PiracyItems:     r.PiracyItems,
	}
}
