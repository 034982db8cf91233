package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aegis-srv/internal/middleware"
	"aegis-srv/internal/model"
	"aegis-srv/internal/scan"
	"aegis-srv/pkg/log"
	"aegis-srv/pkg/paginator"
)

var created = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func result() model.ScanResult {
	return model.ScanResult{
		ScanID:          "scan_1",
		Mode:            model.ScanModeBoth,
		Source:          model.ScanSourceSynthetic,
		MatchedEntities: []int{1, 2, 3},
		FlaggedAccounts: []model.FlaggedAccount{{Handle: "a", Risk: model.RiskHigh}, {Handle: "b", Risk: model.RiskLow}},
		PiracyItems:     []model.PiracyItem{{ID: "p1", Severity: model.SeverityHigh}},
		CreatedAt:       created,
	}
}

type fakeUseCase struct {
	runIn      scan.RunInput
	analyzeIn  scan.AnalyzeInput
	historyIn  scan.HistoryInput
	takedownIn scan.TakedownInput
	err        error
}

func (f *fakeUseCase) Run(_ context.Context, in scan.RunInput) (model.ScanResult, error) {
	f.runIn = in
	return result(), f.err
}

func (f *fakeUseCase) Analyze(_ context.Context, in scan.AnalyzeInput) (model.ScanResult, error) {
	f.analyzeIn = in
	return result(), f.err
}

func (f *fakeUseCase) GetResult(_ context.Context, id string) (model.ScanResult, error) {
	return result(), f.err
}

func (f *fakeUseCase) History(_ context.Context, in scan.HistoryInput) (scan.HistoryOutput, error) {
	f.historyIn = in
	return scan.HistoryOutput{
		Entries:   []scan.HistoryEntry{scan.NewHistoryEntry(result())},
		Paginator: paginator.Paginator{Total: 1, Count: 1, PerPage: 15, CurrentPage: 1},
	}, f.err
}

func (f *fakeUseCase) Takedown(_ context.Context, in scan.TakedownInput) (scan.TakedownOutput, error) {
	f.takedownIn = in
	return scan.TakedownOutput{ScanID: in.ScanID, ItemID: in.ItemID, Message: "Takedown notice generated for " + in.ItemID}, f.err
}

func serve(uc scan.UseCase, method, target, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(log.NewNop(), uc, nil).RegisterRoutes(&r.RouterGroup, middleware.New(log.NewNop(), nil, nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	return rec
}

func data(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["data"].(map[string]any)
}

func TestRunScan(t *testing.T) {
	t.Run("with body", func(t *testing.T) {
		uc := &fakeUseCase{}
		rec := serve(uc, http.MethodPost, "/api/v1/scans", `{"query":"gaming","watchlist":"@x","mode":"harassment"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, scan.RunInput{Query: "gaming", Watchlist: "@x", Mode: model.ScanModeHarassment}, uc.runIn)

		d := data(t, rec)
		assert.Equal(t, "scan_1", d["scan_id"])
		summary := d["summary"].(map[string]any)
		assert.EqualValues(t, 3, summary["matched"])
		assert.EqualValues(t, 2, summary["flagged"])
		assert.EqualValues(t, 1, summary["high_risk"])
		assert.EqualValues(t, 1, summary["high_severity"])
	})

	t.Run("empty body", func(t *testing.T) {
		uc := &fakeUseCase{}
		rec := serve(uc, http.MethodPost, "/api/v1/scans", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, scan.RunInput{}, uc.runIn)
	})

	t.Run("invalid mode", func(t *testing.T) {
		rec := serve(&fakeUseCase{err: scan.ErrInvalidMode}, http.MethodPost, "/api/v1/scans", `{"mode":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAnalyzeVideo(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &fakeUseCase{}
		rec := serve(uc, http.MethodPost, "/api/v1/scans/analyze", `{"video_url":"dQw4w9WgXcQ","keywords":["a"],"limit":20}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, scan.AnalyzeInput{VideoURL: "dQw4w9WgXcQ", Keywords: []string{"a"}, Limit: 20}, uc.analyzeIn)
	})

	t.Run("missing url", func(t *testing.T) {
		rec := serve(&fakeUseCase{}, http.MethodPost, "/api/v1/scans/analyze", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("analyzer down", func(t *testing.T) {
		rec := serve(&fakeUseCase{err: scan.ErrAnalysisUnavailable}, http.MethodPost, "/api/v1/scans/analyze", `{"video_url":"dQw4w9WgXcQ"}`)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestListHistory(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, http.MethodGet, "/api/v1/scans/history?page=2&limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, paginator.PaginateQuery{Page: 2, Limit: 5}, uc.historyIn.Paging)

	entries := data(t, rec)["entries"].([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.Equal(t, "2025-03-14T15:09:26Z", entry["date"])
	assert.Equal(t, scan.StatusCompleted, entry["status"])
}

func TestGetScan(t *testing.T) {
	rec := serve(&fakeUseCase{}, http.MethodGet, "/api/v1/scans/scan_1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(&fakeUseCase{err: scan.ErrScanNotFound}, http.MethodGet, "/api/v1/scans/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTakedown(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, http.MethodPost, "/api/v1/scans/scan_1/takedown/p1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, scan.TakedownInput{ScanID: "scan_1", ItemID: "p1"}, uc.takedownIn)
	assert.Equal(t, "Takedown notice generated for p1", data(t, rec)["message"])

	rec = serve(&fakeUseCase{err: scan.ErrItemNotFound}, http.MethodPost, "/api/v1/scans/scan_1/takedown/zz", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
