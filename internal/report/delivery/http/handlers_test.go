package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aegis-srv/internal/middleware"
	"aegis-srv/internal/model"
	"aegis-srv/internal/report"
	"aegis-srv/pkg/log"
	"aegis-srv/pkg/paginator"
)

type fakeUseCase struct {
	generateIn report.GenerateInput
	listIn     report.ListReportsInput
	downloadIn report.DownloadReportInput
	err        error
}

func (f *fakeUseCase) Generate(_ context.Context, in report.GenerateInput) (report.GenerateOutput, error) {
	f.generateIn = in
	return report.GenerateOutput{ReportID: "r1", Status: report.StatusProcessing, Message: "Report generation started"}, f.err
}

func (f *fakeUseCase) Preview(_ context.Context, in report.PreviewInput) (report.PreviewOutput, error) {
	return report.PreviewOutput{ScanID: in.ScanID, Kind: in.Kind, Generator: "deterministic", FileName: in.Kind.FileName(in.ScanID) + ".md", Content: "TEXT"}, f.err
}

func (f *fakeUseCase) GetReport(_ context.Context, in report.GetReportInput) (report.ReportOutput, error) {
	return report.ReportOutput{ID: in.ReportID, Kind: model.ReportKindCopyright, Status: report.StatusCompleted}, f.err
}

func (f *fakeUseCase) ListReports(_ context.Context, in report.ListReportsInput) (report.ListReportsOutput, error) {
	f.listIn = in
	return report.ListReportsOutput{
		Reports:   []report.ReportOutput{{ID: "r1"}},
		Paginator: paginator.Paginator{Total: 1, Count: 1, PerPage: 15, CurrentPage: 1},
	}, f.err
}

func (f *fakeUseCase) DownloadReport(_ context.Context, in report.DownloadReportInput) (report.DownloadOutput, error) {
	f.downloadIn = in
	return report.DownloadOutput{DownloadURL: "https://minio/x", FileName: "a.xlsx"}, f.err
}

func serve(uc report.UseCase, method, target, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(log.NewNop(), uc, nil).RegisterRoutes(&r.RouterGroup, middleware.New(log.NewNop(), nil, nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGenerateReport(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, http.MethodPost, "/api/v1/reports", `{"scan_id":"scan_1","kind":"copyright"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.GenerateInput{ScanID: "scan_1", Kind: model.ReportKindCopyright}, uc.generateIn)
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "r1", data["report_id"])
}

func TestGenerateReport_Errors(t *testing.T) {
	rec := serve(&fakeUseCase{}, http.MethodPost, "/api/v1/reports", `{"kind":"copyright"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(&fakeUseCase{err: report.ErrScanNotFound}, http.MethodPost, "/api/v1/reports", `{"scan_id":"gone","kind":"copyright"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Scan not found or expired", decode(t, rec)["message"])

	rec = serve(&fakeUseCase{err: report.ErrInvalidKind}, http.MethodPost, "/api/v1/reports/preview", `{"scan_id":"s","kind":"weather"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAndDownload(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, http.MethodGet, "/api/v1/reports?kind=cybercrime&page=2&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ReportKindCybercrime, uc.listIn.Kind)
	assert.Equal(t, 2, uc.listIn.Paging.Page)
	assert.Equal(t, int64(5), uc.listIn.Paging.Limit)

	rec = serve(uc, http.MethodGet, "/api/v1/reports/r9/download?format=xlsx", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.DownloadReportInput{ReportID: "r9", Format: "xlsx"}, uc.downloadIn)

	rec = serve(&fakeUseCase{err: report.ErrReportNotCompleted}, http.MethodGet, "/api/v1/reports/r9/download", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
