package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"aegis-srv/internal/model"
	"aegis-srv/internal/report"
	"aegis-srv/internal/report/composer"
	"aegis-srv/internal/report/repository"
	"aegis-srv/pkg/log"
	"aegis-srv/pkg/minio"
	"aegis-srv/pkg/paginator"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

type fakeRepo struct {
	mu        sync.Mutex
	reports   map[string]*model.Report
	createErr   error
	getErr      error
	completeErr error
	listTotal   int64
	lastList  repository.ListReportsOptions
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reports: map[string]*model.Report{}}
}

func (r *fakeRepo) CreateReport(_ context.Context, opts repository.CreateReportOptions) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	rpt := &model.Report{
		ID: opts.ID, ScanID: opts.ScanID, Kind: opts.Kind, Generator: opts.Generator,
		ParamsHash: opts.ParamsHash, Status: report.StatusProcessing, CreatedAt: fixedNow, UpdatedAt: fixedNow,
	}
	r.reports[rpt.ID] = rpt
	return rpt, nil
}

func (r *fakeRepo) GetReportByID(_ context.Context, id string) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	rpt, ok := r.reports[id]
	if !ok {
		return nil, repository.ErrReportNotFound
	}
	cp := *rpt
	return &cp, nil
}

func (r *fakeRepo) FindByParamsHash(_ context.Context, opts repository.FindByParamsHashOptions) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rpt := range r.reports {
		if rpt.ParamsHash == opts.ParamsHash && (opts.Status == "" || rpt.Status == opts.Status) {
			cp := *rpt
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) UpdateCompleted(_ context.Context, opts repository.UpdateCompletedOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.completeErr != nil {
		return r.completeErr
	}
	rpt, ok := r.reports[opts.ReportID]
	if !ok {
		return repository.ErrReportNotFound
	}
	rpt.Status = report.StatusCompleted
	rpt.TextObject, rpt.TextSizeBytes = opts.TextObject, opts.TextSizeBytes
	rpt.XLSXObject, rpt.XLSXSizeBytes = opts.XLSXObject, opts.XLSXSizeBytes
	rpt.FlaggedCount, rpt.PiracyCount = opts.FlaggedCount, opts.PiracyCount
	completedAt := opts.CompletedAt
	rpt.CompletedAt = &completedAt
	return nil
}

func (r *fakeRepo) UpdateFailed(_ context.Context, opts repository.UpdateFailedOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rpt, ok := r.reports[opts.ReportID]
	if !ok {
		return repository.ErrReportNotFound
	}
	rpt.Status = report.StatusFailed
	rpt.ErrorMessage = opts.ErrorMessage
	return nil
}

func (r *fakeRepo) ListReports(_ context.Context, opts repository.ListReportsOptions) ([]*model.Report, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastList = opts
	out := make([]*model.Report, 0, len(r.reports))
	for _, rpt := range r.reports {
		out = append(out, rpt)
	}
	return out, r.listTotal, nil
}

type fakeScans map[string]model.ScanResult

func (f fakeScans) GetResult(_ context.Context, scanID string) (model.ScanResult, error) {
	res, ok := f[scanID]
	if !ok {
		return model.ScanResult{}, errors.New("missing")
	}
	return res, nil
}

// fakeMinIO implements only the calls the usecase makes.
type fakeMinIO struct {
	minio.MinIO
	mu        sync.Mutex
	objects   map[string][]byte
	uploadErr error
}

func (m *fakeMinIO) UploadFile(_ context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	data, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[req.ObjectName] = data
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: req.Size}, nil
}

func (m *fakeMinIO) GetPresignedDownloadURL(_ context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	return &minio.PresignedURLResponse{
		URL:       "https://minio.local/" + req.BucketName + "/" + req.ObjectName,
		ExpiresAt: fixedNow.Add(req.Expiry),
	}, nil
}

type failingGenerator struct{}

func (failingGenerator) Name() string { return "broken" }
func (failingGenerator) Generate(context.Context, model.ReportKind, model.ScanContext) (string, error) {
	return "", errors.New("model overloaded")
}

func scanResult() model.ScanResult {
	return model.ScanResult{
		ScanID:     "scan_1710428966000_abc123xyz",
		Mode:       model.ScanModeBoth,
		Query:      "gaming",
		CorpusSize: 25,
		Sentiment:  model.SentimentHistogram{Positive: 4, Neutral: 6, Hate: 2},
		FlaggedAccounts: []model.FlaggedAccount{
			{Handle: "troll", Platform: model.PlatformX, Risk: model.RiskHigh, LastSeen: fixedNow.Add(-time.Hour), URL: "https://x.com/troll"},
		},
		PiracyItems: []model.PiracyItem{
			{ID: "db_3_abcde", Platform: model.PlatformYouTube, Title: "movie.mp4", Match: 93, Severity: model.SeverityHigh, DetectedAt: "2024-03-10", URL: "https://youtube.com/p"},
			{ID: "db_4_fghij", Platform: model.PlatformTwitch, Title: "stream", Match: 70, Severity: model.SeverityLow, DetectedAt: "2024-03-11", URL: "https://twitch.com/p"},
		},
		CreatedAt: fixedNow,
	}
}

type fixture struct {
	uc    *implUseCase
	repo  *fakeRepo
	store *fakeMinIO
}

func newFixture(gen report.Generator) fixture {
	repo := newFakeRepo()
	store := &fakeMinIO{objects: map[string][]byte{}}
	res := scanResult()
	uc := newUseCase(repo, fakeScans{res.ScanID: res}, gen, store, nil, log.NewNop(), Config{})
	uc.now = func() time.Time { return fixedNow }
	return fixture{uc: uc, repo: repo, store: store}
}

func TestGenerate_Validation(t *testing.T) {
	f := newFixture(composer.New())
	ctx := context.Background()

	_, err := f.uc.Generate(ctx, report.GenerateInput{ScanID: "scan_1710428966000_abc123xyz", Kind: "weather"})
	assert.ErrorIs(t, err, report.ErrInvalidKind)

	_, err = f.uc.Generate(ctx, report.GenerateInput{Kind: model.ReportKindCopyright})
	assert.ErrorIs(t, err, report.ErrScanRequired)

	_, err = f.uc.Generate(ctx, report.GenerateInput{ScanID: "scan_unknown", Kind: model.ReportKindCopyright})
	assert.ErrorIs(t, err, report.ErrScanNotFound)
}

func TestGenerate_DedupAndReuse(t *testing.T) {
	f := newFixture(composer.New())
	ctx := context.Background()
	hash := generateParamsHash("scan_1710428966000_abc123xyz", model.ReportKindCopyright, composer.Name)

	f.repo.reports["processing"] = &model.Report{ID: "processing", ParamsHash: hash, Status: report.StatusProcessing, CreatedAt: fixedNow}
	out, err := f.uc.Generate(ctx, report.GenerateInput{ScanID: "scan_1710428966000_abc123xyz", Kind: model.ReportKindCopyright})
	require.NoError(t, err)
	assert.Equal(t, "processing", out.ReportID)
	assert.Equal(t, "Report is already being generated", out.Message)

	delete(f.repo.reports, "processing")
	f.repo.reports["done"] = &model.Report{ID: "done", ParamsHash: hash, Status: report.StatusCompleted, CreatedAt: fixedNow.Add(-30 * time.Minute)}
	out, err = f.uc.Generate(ctx, report.GenerateInput{ScanID: "scan_1710428966000_abc123xyz", Kind: model.ReportKindCopyright})
	require.NoError(t, err)
	assert.Equal(t, "done", out.ReportID)
	assert.Equal(t, report.StatusCompleted, out.Status)
}

func TestGenerate_StaleProcessingIsReplaced(t *testing.T) {
	f := newFixture(composer.New())
	ctx := context.Background()
	hash := generateParamsHash("scan_1710428966000_abc123xyz", model.ReportKindCopyright, composer.Name)
	f.repo.reports["stuck"] = &model.Report{
		ID: "stuck", ParamsHash: hash, Status: report.StatusProcessing,
		CreatedAt: fixedNow.Add(-48 * time.Hour), UpdatedAt: fixedNow.Add(-48 * time.Hour),
	}

	out, err := f.uc.Generate(ctx, report.GenerateInput{ScanID: "scan_1710428966000_abc123xyz", Kind: model.ReportKindCopyright})
	require.NoError(t, err)

	assert.NotEqual(t, "stuck", out.ReportID)
	assert.Equal(t, "Report generation started", out.Message)
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	assert.Equal(t, report.StatusFailed, f.repo.reports["stuck"].Status)
	assert.Contains(t, f.repo.reports["stuck"].ErrorMessage, "abandoned")
}

func TestGenerate_RaceOnCreate(t *testing.T) {
	f := newFixture(composer.New())
	f.repo.createErr = repository.ErrDuplicateProcessing

	out, err := f.uc.Generate(context.Background(), report.GenerateInput{ScanID: "scan_1710428966000_abc123xyz", Kind: model.ReportKindCybercrime})
	require.NoError(t, err)
	assert.Equal(t, report.StatusProcessing, out.Status)
}

func TestGenerateInBackground_Completes(t *testing.T) {
	f := newFixture(composer.New())
	res := scanResult()
	rpt, err := f.repo.CreateReport(context.Background(), repository.CreateReportOptions{
		ID: "r1", ScanID: res.ScanID, Kind: model.ReportKindCopyright, Generator: composer.Name, ParamsHash: "h",
	})
	require.NoError(t, err)

	f.uc.generateInBackground(rpt, res.Context())

	stored := f.repo.reports["r1"]
	require.Equal(t, report.StatusCompleted, stored.Status)
	assert.Equal(t, "reports/r1/copyright_report_scan_1710428966000_abc123xyz.md", stored.TextObject)
	assert.Equal(t, "reports/r1/copyright_report_scan_1710428966000_abc123xyz.xlsx", stored.XLSXObject)
	assert.Equal(t, 2, stored.PiracyCount)

	text := f.store.objects[stored.TextObject]
	assert.Contains(t, string(text), "COPYRIGHT INFRINGEMENT INVESTIGATION REPORT")
	assert.Equal(t, int64(len(text)), stored.TextSizeBytes)

	wb, err := excelize.OpenReader(bytes.NewReader(f.store.objects[stored.XLSXObject]))
	require.NoError(t, err)
	defer wb.Close()
	rows, err := wb.GetRows(sheetPiracy)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Match %", rows[0][4])
	assert.Equal(t, "db_3_abcde", rows[1][1])
	assert.Equal(t, "93", rows[1][4])
}

func TestGenerateInBackground_Failures(t *testing.T) {
	t.Run("generator error", func(t *testing.T) {
		f := newFixture(failingGenerator{})
		rpt, _ := f.repo.CreateReport(context.Background(), repository.CreateReportOptions{ID: "r1", ScanID: "s", Kind: model.ReportKindCybercrime})
		f.uc.generateInBackground(rpt, scanResult().Context())
		assert.Equal(t, report.StatusFailed, f.repo.reports["r1"].Status)
		assert.Contains(t, f.repo.reports["r1"].ErrorMessage, "model overloaded")
	})

	t.Run("finalize error", func(t *testing.T) {
		f := newFixture(composer.New())
		f.repo.completeErr = repository.ErrReportUpdateFailed
		rpt, _ := f.repo.CreateReport(context.Background(), repository.CreateReportOptions{ID: "r1", ScanID: "s", Kind: model.ReportKindCopyright})
		f.uc.generateInBackground(rpt, scanResult().Context())
		assert.Equal(t, report.StatusFailed, f.repo.reports["r1"].Status)
		assert.Contains(t, f.repo.reports["r1"].ErrorMessage, "finalize failed")
	})

	t.Run("upload error", func(t *testing.T) {
		f := newFixture(composer.New())
		f.store.uploadErr = errors.New("bucket gone")
		rpt, _ := f.repo.CreateReport(context.Background(), repository.CreateReportOptions{ID: "r1", ScanID: "s", Kind: model.ReportKindCybercrime})
		f.uc.generateInBackground(rpt, scanResult().Context())
		assert.Equal(t, report.StatusFailed, f.repo.reports["r1"].Status)
		assert.Contains(t, f.repo.reports["r1"].ErrorMessage, "upload failed")
	})
}

func TestPreview(t *testing.T) {
	f := newFixture(composer.New())
	out, err := f.uc.Preview(context.Background(), report.PreviewInput{ScanID: "scan_1710428966000_abc123xyz", Kind: model.ReportKindCybercrime})
	require.NoError(t, err)
	assert.Equal(t, "cybercrime_report_scan_1710428966000_abc123xyz.md", out.FileName)
	assert.Equal(t, composer.Name, out.Generator)
	assert.Contains(t, out.Content, "THREAT LEVEL: HIGH")
	assert.Contains(t, out.Content, "Matched Profiles: 12")
	assert.Empty(t, f.store.objects)

	_, err = newFixture(failingGenerator{}).uc.Preview(context.Background(), report.PreviewInput{ScanID: "scan_1710428966000_abc123xyz", Kind: model.ReportKindCybercrime})
	assert.ErrorIs(t, err, report.ErrGenerationFailed)
}

func TestDownloadReport(t *testing.T) {
	f := newFixture(composer.New())
	ctx := context.Background()
	f.repo.reports["done"] = &model.Report{
		ID: "done", ScanID: "scan_9", Kind: model.ReportKindCybercrime, Status: report.StatusCompleted,
		TextObject: "reports/done/a.md", TextSizeBytes: 100, XLSXObject: "reports/done/a.xlsx", XLSXSizeBytes: 2048,
	}
	f.repo.reports["pending"] = &model.Report{ID: "pending", Status: report.StatusProcessing}

	out, err := f.uc.DownloadReport(ctx, report.DownloadReportInput{ReportID: "done"})
	require.NoError(t, err)
	assert.Equal(t, "cybercrime_report_scan_9.md", out.FileName)
	assert.Equal(t, int64(100), out.FileSize)
	assert.Equal(t, "https://minio.local/aegis-reports/reports/done/a.md", out.DownloadURL)
	assert.Equal(t, "2025-03-14T15:39:26Z", out.ExpiresAt)

	out, err = f.uc.DownloadReport(ctx, report.DownloadReportInput{ReportID: "done", Format: report.FormatXLSX})
	require.NoError(t, err)
	assert.Equal(t, "cybercrime_report_scan_9.xlsx", out.FileName)
	assert.Equal(t, int64(2048), out.FileSize)

	_, err = f.uc.DownloadReport(ctx, report.DownloadReportInput{ReportID: "done", Format: "pdf"})
	assert.ErrorIs(t, err, report.ErrInvalidFormat)
	_, err = f.uc.DownloadReport(ctx, report.DownloadReportInput{ReportID: "pending"})
	assert.ErrorIs(t, err, report.ErrReportNotCompleted)
	_, err = f.uc.DownloadReport(ctx, report.DownloadReportInput{ReportID: "missing"})
	assert.ErrorIs(t, err, report.ErrReportNotFound)
}

func TestGetReport_RepositoryErrors(t *testing.T) {
	f := newFixture(composer.New())
	ctx := context.Background()

	_, err := f.uc.GetReport(ctx, report.GetReportInput{ReportID: "missing"})
	assert.ErrorIs(t, err, report.ErrReportNotFound)

	outage := errors.New("connection refused")
	f.repo.getErr = outage
	_, err = f.uc.GetReport(ctx, report.GetReportInput{ReportID: "any"})
	assert.ErrorIs(t, err, outage)
	assert.NotErrorIs(t, err, report.ErrReportNotFound)

	_, err = f.uc.DownloadReport(ctx, report.DownloadReportInput{ReportID: "any"})
	assert.ErrorIs(t, err, outage)
	assert.NotErrorIs(t, err, report.ErrReportNotFound)
}

func TestListReports_Paging(t *testing.T) {
	f := newFixture(composer.New())
	f.repo.reports["a"] = &model.Report{ID: "a", Kind: model.ReportKindCopyright, Status: report.StatusCompleted, CreatedAt: fixedNow}
	f.repo.listTotal = 31

	out, err := f.uc.ListReports(context.Background(), report.ListReportsInput{
		Kind:   model.ReportKindCopyright,
		Paging: paginator.PaginateQuery{Page: 3, Limit: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(paginator.DefaultLimit), f.repo.lastList.Limit)
	assert.Equal(t, int64(2*paginator.DefaultLimit), f.repo.lastList.Offset)
	assert.Equal(t, 3, out.Paginator.ToResponse().TotalPages)
	assert.Len(t, out.Reports, 1)

	_, err = f.uc.ListReports(context.Background(), report.ListReportsInput{Kind: "weather"})
	assert.ErrorIs(t, err, report.ErrInvalidKind)
}

func TestGenerateParamsHash(t *testing.T) {
	a := generateParamsHash("scan_1", model.ReportKindCopyright, "deterministic")
	assert.Len(t, a, 64)
	assert.Equal(t, a, generateParamsHash("scan_1", model.ReportKindCopyright, "deterministic"))
	assert.NotEqual(t, a, generateParamsHash("scan_1", model.ReportKindCybercrime, "deterministic"))
	assert.NotEqual(t, a, generateParamsHash("scan_1", model.ReportKindCopyright, "groq|deterministic"))
}
