package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		status  int
		want    string
		wantErr bool
	}{
		{
			name:   "returns first choice",
			reply:  `{"choices":[{"message":{"role":"assistant","content":"  REPORT  "}}]}`,
			status: http.StatusOK,
			want:   "REPORT",
		},
		{
			name:    "empty choices",
			reply:   `{"choices":[]}`,
			status:  http.StatusOK,
			wantErr: true,
		},
		{
			name:    "client error",
			reply:   `{"error":{"message":"invalid key"}}`,
			status:  http.StatusUnauthorized,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				var req ChatRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, DefaultModel, req.Model)
				assert.Len(t, req.Messages, 2)
				assert.Equal(t, "system", req.Messages[0].Role)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.reply))
			}))
			defer srv.Close()

			c, err := NewGroq(GroqConfig{APIKey: "secret", BaseURL: srv.URL, SystemPrompt: "analyst"})
			require.NoError(t, err)

			got, err := c.Generate(context.Background(), "prompt")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewGroq_RequiresKey(t *testing.T) {
	_, err := NewGroq(GroqConfig{})
	assert.Error(t, err)
}
