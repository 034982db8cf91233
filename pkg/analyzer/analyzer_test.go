package analyzer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		reply   string
		wantErr error
	}{
		{
			name:   "success",
			status: http.StatusOK,
			reply: `{"success":true,"video_id":"abc123","video_url":"https://youtube.com/watch?v=abc123",
				"statistics":{"total_comments":40,"harassment_comments":2,"copyright_violations":1,"threat_level":"MEDIUM"},
				"harassment_comments":[{"author":"troll1","text":"you are bad","severity":"high"}],
				"copyright_violations":[{"author":"pirate","text":"full movie link","severity":"medium"}]}`,
		},
		{
			name:    "analyzer failure",
			status:  http.StatusOK,
			reply:   `{"success":false,"error":"comments disabled"}`,
			wantErr: ErrAnalysisFailed,
		},
		{
			name:    "missing video id",
			status:  http.StatusOK,
			reply:   `{"success":true}`,
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "bad request",
			status:  http.StatusBadRequest,
			reply:   `{"success":false,"error":"Invalid YouTube URL"}`,
			wantErr: ErrAnalysisFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, PathAnalyze, r.URL.Path)
				var req AnalyzeRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, DefaultLimit, req.Limit)
				assert.NotNil(t, req.Keywords)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.reply))
			}))
			defer srv.Close()

			c := New(AnalyzerConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
			resp, err := c.Analyze(context.Background(), AnalyzeRequest{VideoURL: "https://youtube.com/watch?v=abc123"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "abc123", resp.VideoID)
			assert.Equal(t, 40, resp.Statistics.TotalComments)
			require.Len(t, resp.HarassmentComments, 1)
			assert.Equal(t, "troll1", resp.HarassmentComments[0].Author)
		})
	}
}

func TestAnalyze_RequiresVideoURL(t *testing.T) {
	c := New(AnalyzerConfig{BaseURL: "http://127.0.0.1:1"})
	_, err := c.Analyze(context.Background(), AnalyzeRequest{VideoURL: "  "})
	assert.ErrorIs(t, err, ErrVideoURLRequired)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathHealth, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.NoError(t, New(AnalyzerConfig{BaseURL: srv.URL}).Health(context.Background()))
}
