package analyzer

import (
	"time"

	pkghttp "aegis-srv/pkg/http"
)

// AnalyzerConfig holds configuration for the analyzer client.
type AnalyzerConfig struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient pkghttp.IClient
}

type AnalyzeRequest struct {
	VideoURL string   `json:"video_url"`
	Keywords []string `json:"keywords"`
	Limit    int      `json:"limit"`
}

type Statistics struct {
	TotalComments       int    `json:"total_comments"`
	BotComments         int    `json:"bot_comments"`
	HarassmentComments  int    `json:"harassment_comments"`
	CopyrightViolations int    `json:"copyright_violations"`
	ThreatLevel         string `json:"threat_level"`
}

// Comment is one comment the analyzer classified.
type Comment struct {
	Author    string `json:"author"`
	Text      string `json:"text"`
	Time      string `json:"time"`
	Likes     int    `json:"likes"`
	Severity  string `json:"severity"`
	CommentID string `json:"comment_id"`
	Type      string `json:"type,omitempty"`
}

type AnalyzeResponse struct {
	Success             bool       `json:"success"`
	VideoID             string     `json:"video_id"`
	VideoURL            string     `json:"video_url"`
	Timestamp           string     `json:"timestamp"`
	Statistics          Statistics `json:"statistics"`
	HarassmentComments  []Comment  `json:"harassment_comments"`
	CopyrightViolations []Comment  `json:"copyright_violations"`
	Conclusion          string     `json:"conclusion"`
	Error               string     `json:"error,omitempty"`
}

// analyzerImpl implements IAnalyzer.
type analyzerImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}
