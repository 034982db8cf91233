package http

import (
	"time"

	"aegis-srv/internal/model"
	"aegis-srv/internal/report/composer"
	"aegis-srv/internal/scan"
	"aegis-srv/pkg/paginator"
)

type runScanReq struct {
	Query     string `json:"query"`
	Watchlist string `json:"watchlist"`
	Mode      string `json:"mode"`
}

func (r runScanReq) toInput() scan.RunInput {
	return scan.RunInput{
		Query:     r.Query,
		Watchlist: r.Watchlist,
		Mode:      model.ScanMode(r.Mode),
	}
}

type analyzeReq struct {
	VideoURL string   `json:"video_url" binding:"required"`
	Keywords []string `json:"keywords"`
	Limit    int      `json:"limit"`
	Mode     string   `json:"mode"`
}

func (r analyzeReq) toInput() scan.AnalyzeInput {
	return scan.AnalyzeInput{
		VideoURL: r.VideoURL,
		Keywords: r.Keywords,
		Limit:    r.Limit,
		Mode:     model.ScanMode(r.Mode),
	}
}

type historyReq struct {
	paginator.PaginateQuery
}

func (r historyReq) toInput() scan.HistoryInput {
	return scan.HistoryInput{Paging: r.PaginateQuery}
}

type takedownReq struct {
	ScanID string
	ItemID string
}

func (r takedownReq) toInput() scan.TakedownInput {
	return scan.TakedownInput{ScanID: r.ScanID, ItemID: r.ItemID}
}

type scanSummaryResp struct {
	Matched      int `json:"matched"`
	Flagged      int `json:"flagged"`
	HighRisk     int `json:"high_risk"`
	Piracy       int `json:"piracy"`
	HighSeverity int `json:"high_severity"`
}

type scanResp struct {
	model.ScanResult
	Summary scanSummaryResp `json:"summary"`
}

type historyEntryResp struct {
	ScanID  string `json:"scan_id"`
	Mode    string `json:"mode"`
	Source  string `json:"source"`
	Query   string `json:"query"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Matched int    `json:"matched"`
	Flagged int    `json:"flagged"`
	Piracy  int    `json:"piracy"`
}

type historyResp struct {
	Entries   []historyEntryResp          `json:"entries"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type takedownResp struct {
	ScanID   string `json:"scan_id"`
	ItemID   string `json:"item_id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Message  string `json:"message"`
}

func (h *handler) newScanResp(r model.ScanResult) scanResp {
	return scanResp{
		ScanResult: r,
		Summary: scanSummaryResp{
			Matched:      len(r.MatchedEntities),
			Flagged:      len(r.FlaggedAccounts),
			HighRisk:     composer.CountRisks(r.FlaggedAccounts).High,
			Piracy:       len(r.PiracyItems),
			HighSeverity: composer.CountSeverities(r.PiracyItems).High,
		},
	}
}

func (h *handler) newHistoryResp(o scan.HistoryOutput) historyResp {
	resp := historyResp{
		Entries:   make([]historyEntryResp, 0, len(o.Entries)),
		Paginator: o.Paginator.ToResponse(),
	}
	for _, e := range o.Entries {
		resp.Entries = append(resp.Entries, historyEntryResp{
			ScanID:  e.ScanID,
			Mode:    string(e.Mode),
			Source:  string(e.Source),
			Query:   e.Query,
			Date:    e.Date.Format(time.RFC3339),
			Status:  e.Status,
			Matched: e.Matched,
			Flagged: e.Flagged,
			Piracy:  e.Piracy,
		})
	}
	return resp
}

func (h *handler) newTakedownResp(o scan.TakedownOutput) takedownResp {
	return takedownResp{
		ScanID:   o.ScanID,
		ItemID:   o.ItemID,
		Platform: string(o.Platform),
		URL:      o.URL,
		Message:  o.Message,
	}
}
