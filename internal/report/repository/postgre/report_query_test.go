package postgre

import (
	"testing"

	"aegis-srv/internal/model"
	"aegis-srv/internal/report/repository"

	"github.com/stretchr/testify/assert"
)

func TestBuildFindByParamsHashQuery(t *testing.T) {
	r := &implRepository{}

	q, args := r.buildFindByParamsHashQuery(repository.FindByParamsHashOptions{ParamsHash: "abc", Status: "PROCESSING"})
	assert.Contains(t, q, "WHERE params_hash = $1 AND status = $2 ORDER BY created_at DESC LIMIT 1")
	assert.Equal(t, []any{"abc", "PROCESSING"}, args)

	q, args = r.buildFindByParamsHashQuery(repository.FindByParamsHashOptions{ParamsHash: "abc"})
	assert.Contains(t, q, "WHERE params_hash = $1 ORDER BY")
	assert.Equal(t, []any{"abc"}, args)
}

func TestBuildListReportsQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		name      string
		opts      repository.ListReportsOptions
		wantWhere string
		wantTail  string
		wantArgs  []any
	}{
		{
			name:      "no filters",
			opts:      repository.ListReportsOptions{},
			wantWhere: "FROM reports ORDER BY created_at DESC",
			wantArgs:  nil,
		},
		{
			name:      "all filters paged",
			opts:      repository.ListReportsOptions{ScanID: "scan_1", Kind: model.ReportKindCopyright, Status: "COMPLETED", Limit: 15, Offset: 30},
			wantWhere: "WHERE scan_id = $1 AND kind = $2 AND status = $3 ORDER BY created_at DESC",
			wantTail:  " LIMIT 15 OFFSET 30",
			wantArgs:  []any{"scan_1", "copyright", "COMPLETED"},
		},
		{
			name:      "kind only",
			opts:      repository.ListReportsOptions{Kind: model.ReportKindCybercrime, Limit: 10},
			wantWhere: "WHERE kind = $1 ORDER BY",
			wantTail:  " LIMIT 10",
			wantArgs:  []any{"cybercrime"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, count, args := r.buildListReportsQuery(tt.opts)
			assert.Contains(t, page, tt.wantWhere)
			assert.True(t, len(tt.wantTail) == 0 || page[len(page)-len(tt.wantTail):] == tt.wantTail, page)
			assert.NotContains(t, count, "LIMIT")
			assert.Contains(t, count, "SELECT COUNT(*) FROM reports")
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
