package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	c := NewCollector()

	c.ObserveScan("both", "synthetic", 12, 4)
	c.ObserveScan("both", "synthetic", 3, 0)
	c.ObserveReport("copyright", "COMPLETED", "deterministic", 20*time.Millisecond)
	c.ObserveFallback("groq", "error")
	c.ObserveHTTP(http.MethodGet, "/api/v1/scans/history", http.StatusOK, time.Millisecond)

	body := scrape(t, c)
	assert.Contains(t, body, `aegis_scans_total{mode="both",source="synthetic"} 2`)
	assert.Contains(t, body, `aegis_scan_matched_entities_count 2`)
	assert.Contains(t, body, `aegis_reports_total{kind="copyright",status="COMPLETED"} 1`)
	assert.Contains(t, body, `aegis_report_generator_fallbacks_total{primary="groq",reason="error"} 1`)
	assert.Contains(t, body, `aegis_http_requests_total{method="GET",route="/api/v1/scans/history",status="200"} 1`)
}

func TestCollector_Nil(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveScan("harassment", "analyzer", 1, 1)
		c.ObserveReport("cybercrime", "FAILED", "", 0)
		c.ObserveFallback("gemini", "short_output")
		c.ObserveEvent("scan.completed", "published")
		c.ObserveHTTP("POST", "/x", 500, 0)
	})
	assert.Nil(t, c.Registry())
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.ObserveEvent("scan.completed", "published")

	assert.Contains(t, scrape(t, c), `aegis_events_total{outcome="published",topic="scan.completed"} 1`)
}

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}
