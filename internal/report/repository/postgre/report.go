package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"aegis-srv/internal/model"
	"aegis-srv/internal/report/repository"
)

// CreateReport - Insert a new PROCESSING report record.
func (r *implRepository) CreateReport(ctx context.Context, opts repository.CreateReportOptions) (*model.Report, error) {
	row := r.db.QueryRowContext(ctx, insertReportSQL,
		opts.ID, opts.ScanID, string(opts.Kind), opts.Generator, opts.ParamsHash, time.Now())

	rpt, err := scanReport(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, repository.ErrDuplicateProcessing
		}
		r.l.Errorf(ctx, "report.repository.postgre.CreateReport: Failed to insert report: %v", err)
		return nil, repository.ErrReportCreateFailed
	}

	return rpt, nil
}

// GetReportByID - Get report by primary key.
func (r *implRepository) GetReportByID(ctx context.Context, id string) (*model.Report, error) {
	rpt, err := scanReport(r.db.QueryRowContext(ctx, selectReportByIDSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.GetReportByID: Failed to get report: %v", err)
		return nil, err
	}

	return rpt, nil
}

// FindByParamsHash - Find the newest report by params_hash and optional status.
func (r *implRepository) FindByParamsHash(ctx context.Context, opts repository.FindByParamsHashOptions) (*model.Report, error) {
	query, args := r.buildFindByParamsHashQuery(opts)

	rpt, err := scanReport(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.FindByParamsHash: Failed to find report: %v", err)
		return nil, err
	}

	return rpt, nil
}

// UpdateCompleted - Mark report as COMPLETED with artifact metadata.
func (r *implRepository) UpdateCompleted(ctx context.Context, opts repository.UpdateCompletedOptions) error {
	res, err := r.db.ExecContext(ctx, updateCompletedSQL,
		opts.ReportID, opts.TextObject, opts.TextSizeBytes, opts.XLSXObject, opts.XLSXSizeBytes,
		opts.FlaggedCount, opts.PiracyCount, opts.GenerationTimeMs, opts.CompletedAt, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.UpdateCompleted: Failed to update report: %v", err)
		return repository.ErrReportUpdateFailed
	}

	return r.expectOneRow(ctx, res, "UpdateCompleted")
}

// UpdateFailed - Mark report as FAILED with error message.
func (r *implRepository) UpdateFailed(ctx context.Context, opts repository.UpdateFailedOptions) error {
	res, err := r.db.ExecContext(ctx, updateFailedSQL, opts.ReportID, opts.ErrorMessage, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.UpdateFailed: Failed to update report: %v", err)
		return repository.ErrReportUpdateFailed
	}

	return r.expectOneRow(ctx, res, "UpdateFailed")
}

// ListReports - List reports with filters and pagination, plus the unpaged total.
func (r *implRepository) ListReports(ctx context.Context, opts repository.ListReportsOptions) ([]*model.Report, int64, error) {
	query, countQuery, args := r.buildListReportsQuery(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to count reports: %v", err)
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to list reports: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	result := make([]*model.Report, 0)
	for rows.Next() {
		rpt, err := scanReport(rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to scan report: %v", err)
			return nil, 0, err
		}
		result = append(result, rpt)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Rows error: %v", err)
		return nil, 0, err
	}

	return result, total, nil
}

func (r *implRepository) expectOneRow(ctx context.Context, res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.%s: RowsAffected failed: %v", op, err)
		return repository.ErrReportUpdateFailed
	}
	if n == 0 {
		return repository.ErrReportNotFound
	}
	return nil
}
