package postgre

import (
	"database/sql"
	"fmt"
	"strings"

	"aegis-srv/internal/model"
	"aegis-srv/internal/report/repository"
)

const reportColumns = `id, scan_id, kind, generator, params_hash, status, error_message,
	text_object, xlsx_object, text_size_bytes, xlsx_size_bytes,
	flagged_count, piracy_count, generation_time_ms, completed_at, created_at, updated_at`

const (
	insertReportSQL = `INSERT INTO reports (id, scan_id, kind, generator, params_hash, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, 'PROCESSING', $6, $6)
	RETURNING ` + reportColumns

	selectReportByIDSQL = `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`

	updateCompletedSQL = `UPDATE reports SET status = 'COMPLETED',
	text_object = $2, text_size_bytes = $3, xlsx_object = $4, xlsx_size_bytes = $5,
	flagged_count = $6, piracy_count = $7, generation_time_ms = $8, completed_at = $9, updated_at = $10
	WHERE id = $1`

	updateFailedSQL = `UPDATE reports SET status = 'FAILED', error_message = $2, updated_at = $3 WHERE id = $1`
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// whereClause accumulates AND-ed conditions with positional placeholders.
type whereClause struct {
	conds []string
	args  []any
}

func (w *whereClause) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// buildFindByParamsHashQuery - Build query for FindByParamsHash.
func (r *implRepository) buildFindByParamsHashQuery(opts repository.FindByParamsHashOptions) (string, []any) {
	w := &whereClause{}
	w.add("params_hash = $%d", opts.ParamsHash)
	if opts.Status != "" {
		w.add("status = $%d", opts.Status)
	}
	return `SELECT ` + reportColumns + ` FROM reports` + w.String() + ` ORDER BY created_at DESC LIMIT 1`, w.args
}

// buildListReportsQuery - Build the page query and its count query for ListReports.
func (r *implRepository) buildListReportsQuery(opts repository.ListReportsOptions) (string, string, []any) {
	w := &whereClause{}
	if opts.ScanID != "" {
		w.add("scan_id = $%d", opts.ScanID)
	}
	if opts.Kind != "" {
		w.add("kind = $%d", string(opts.Kind))
	}
	if opts.Status != "" {
		w.add("status = $%d", opts.Status)
	}

	count := `SELECT COUNT(*) FROM reports` + w.String()
	page := `SELECT ` + reportColumns + ` FROM reports` + w.String() + ` ORDER BY created_at DESC`
	if opts.Limit > 0 {
		page += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}
	if opts.Offset > 0 {
		page += fmt.Sprintf(" OFFSET %d", opts.Offset)
	}
	return page, count, w.args
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanReport reads one row selected with reportColumns.
func scanReport(row rowScanner) (*model.Report, error) {
	var (
		rpt          model.Report
		kind         string
		errorMessage sql.NullString
		textObject   sql.NullString
		xlsxObject   sql.NullString
		completedAt  sql.NullTime
	)
	err := row.Scan(
		&rpt.ID, &rpt.ScanID, &kind, &rpt.Generator, &rpt.ParamsHash, &rpt.Status, &errorMessage,
		&textObject, &xlsxObject, &rpt.TextSizeBytes, &rpt.XLSXSizeBytes,
		&rpt.FlaggedCount, &rpt.PiracyCount, &rpt.GenerationTimeMs, &completedAt, &rpt.CreatedAt, &rpt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rpt.Kind = model.ReportKind(kind)
	rpt.ErrorMessage = errorMessage.String
	rpt.TextObject = textObject.String
	rpt.XLSXObject = xlsxObject.String
	if completedAt.Valid {
		t := completedAt.Time
		rpt.CompletedAt = &t
	}
	return &rpt, nil
}
