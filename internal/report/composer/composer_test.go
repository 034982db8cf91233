package composer

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"aegis-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scanDate = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func accounts(high, medium, low int) []model.FlaggedAccount {
	var out []model.FlaggedAccount
	add := func(n int, risk model.RiskLevel, p model.Platform) {
		for i := 0; i < n; i++ {
			out = append(out, model.FlaggedAccount{
				Handle:   fmt.Sprintf("%s_%d", strings.ToLower(string(risk)), i),
				Platform: p,
				Risk:     risk,
				LastSeen: scanDate.Add(-time.Duration(i+1) * time.Hour),
				URL:      "https://x.com/acct",
			})
		}
	}
	add(high, model.RiskHigh, model.PlatformX)
	add(medium, model.RiskMedium, model.PlatformTelegram)
	add(low, model.RiskLow, model.PlatformYouTube)
	return out
}

func items(high, medium, low int) []model.PiracyItem {
	var out []model.PiracyItem
	add := func(n int, sev model.Severity, match int) {
		for i := 0; i < n; i++ {
			out = append(out, model.PiracyItem{
				ID:         fmt.Sprintf("db_%s_%d", sev, i),
				Platform:   model.PlatformYouTube,
				Title:      fmt.Sprintf("%s upload %d", sev, i),
				Match:      match,
				Severity:   sev,
				DetectedAt: "2024-03-10",
				URL:        "https://youtube.com/pirate",
			})
		}
	}
	add(high, model.SeverityHigh, 95)
	add(medium, model.SeverityMedium, 80)
	add(low, model.SeverityLow, 60)
	return out
}

func scanContext(flagged []model.FlaggedAccount, piracy []model.PiracyItem) model.ScanContext {
	return model.ScanContext{
		ScanID:          "scan_1710428966000_abc123xyz",
		Keywords:        "gaming",
		TotalUsers:      25,
		MatchedUsers:    12,
		ScanDate:        scanDate,
		FlaggedAccounts: flagged,
		PiracyItems:     piracy,
	}
}

func TestCompose_Deterministic(t *testing.T) {
	c := New()
	sc := scanContext(accounts(2, 3, 1), items(2, 1, 1))
	for _, kind := range []model.ReportKind{model.ReportKindCybercrime, model.ReportKindCopyright} {
		a, err := c.Compose(kind, sc)
		require.NoError(t, err)
		b, err := c.Compose(kind, sc)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestCompose_CopyrightCriticalWithSixHigh(t *testing.T) {
	out, err := New().Compose(model.ReportKindCopyright, scanContext(nil, items(6, 0, 0)))
	require.NoError(t, err)

	assert.Contains(t, out, "INFRINGEMENT LEVEL: CRITICAL")
	assert.Contains(t, out, "IMMEDIATE LEGAL ACTION REQUIRED")
	assert.Contains(t, out, "Statutory Damages Range: $4,500 - $180,000")
	assert.Contains(t, out, "Up to $900,000")
	assert.Contains(t, out, "17 U.S.C. § 505")
	assert.Contains(t, out, "Next Review: 12 hours")
	assert.NotContains(t, out, "URGENT (Within 48 Hours)")
}

func TestCompose_CybercrimeSections(t *testing.T) {
	tests := []struct {
		name       string
		flagged    []model.FlaggedAccount
		tier       Tier
		urgency    string
		immediate  bool
		urgent     bool
		nextReview string
	}{
		{"critical", accounts(4, 0, 0), TierCritical, "IMMEDIATE ACTION REQUIRED", true, false, "24 hours"},
		{"high", accounts(1, 2, 0), TierHigh, "Urgent attention needed", true, true, "24 hours"},
		{"moderate", accounts(0, 3, 1), TierModerate, "Standard monitoring recommended", false, true, "48 hours"},
		{"low", accounts(0, 0, 2), TierLow, "Standard monitoring recommended", false, false, "7 days"},
		{"empty", nil, TierLow, "Standard monitoring recommended", false, false, "7 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := New().Compose(model.ReportKindCybercrime, scanContext(tt.flagged, nil))
			require.NoError(t, err)

			assert.Contains(t, out, "THREAT LEVEL: "+string(tt.tier))
			assert.Contains(t, out, "URGENCY: "+tt.urgency)
			assert.Equal(t, tt.immediate, strings.Contains(out, "IMMEDIATE (Within 24 Hours):"))
			assert.Equal(t, tt.urgent, strings.Contains(out, "URGENT (Within 48 Hours):"))
			assert.Contains(t, out, "ONGOING MONITORING:")
			assert.Contains(t, out, "Next Review: "+tt.nextReview)
			assert.Contains(t, out, "Investigation ID: scan_1710428966000_abc123xyz")
			assert.Contains(t, out, `Monitoring Keywords: "gaming"`)
			assert.Contains(t, out, "Report Date: 2025-03-14 15:09:26 UTC")
			for i := range tt.flagged {
				assert.Contains(t, out, fmt.Sprintf("Investigation ID: scan_1710428966000_abc123xyz-%d", i+1))
			}
		})
	}
}

func TestCompose_PlatformRisk(t *testing.T) {
	out, err := New().Compose(model.ReportKindCybercrime, scanContext(accounts(4, 2, 1), nil))
	require.NoError(t, err)

	assert.Contains(t, out, "X:\n- Total Violations: 4\n- Risk Level: HIGH\n- Action Required: IMMEDIATE platform reporting")
	assert.Contains(t, out, "Telegram:\n- Total Violations: 2\n- Risk Level: MEDIUM")
	assert.Contains(t, out, "YouTube:\n- Total Violations: 1\n- Risk Level: LOW")
	assert.Contains(t, out, "Coordination Indicators: HIGH (Multi-platform activity)")
	assert.Contains(t, out, "Escalation Risk: HIGH (Multiple high-risk actors)")
}

func TestCompose_DefaultKeywordsAndOrganization(t *testing.T) {
	sc := scanContext(nil, nil)
	sc.Keywords = ""
	out, err := New(WithOrganization("Trust & Safety"), WithConfidentiality("RESTRICTED")).Compose(model.ReportKindCybercrime, sc)
	require.NoError(t, err)

	assert.Contains(t, out, `Monitoring Keywords: "All content"`)
	assert.Contains(t, out, "Report prepared by: Trust & Safety")
	assert.Contains(t, out, "Classification: RESTRICTED")
}

func TestCompose_UnknownKind(t *testing.T) {
	_, err := New().Compose("weather", scanContext(nil, nil))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestGenerate_Name(t *testing.T) {
	c := New()
	assert.Equal(t, "deterministic", c.Name())
	out, err := c.Generate(context.Background(), model.ReportKindCopyright, scanContext(nil, items(0, 1, 0)))
	require.NoError(t, err)
	assert.Contains(t, out, "URGENT (Within 48 Hours):")
	assert.Contains(t, out, "Legal Action Timeline: Within 48 hours")
}

func TestTiers_Monotonic(t *testing.T) {
	prev := -1
	for high := 0; high <= 10; high++ {
		r := CopyrightTier(high).Rank()
		assert.GreaterOrEqual(t, r, prev, "copyright high=%d", high)
		prev = r
	}

	for medium := 0; medium <= 6; medium++ {
		prev = -1
		for high := 0; high <= 10; high++ {
			r := CybercrimeTier(high, medium).Rank()
			assert.GreaterOrEqual(t, r, prev, "cybercrime high=%d medium=%d", high, medium)
			prev = r
		}
	}
	for high := 0; high <= 6; high++ {
		prev = -1
		for medium := 0; medium <= 6; medium++ {
			r := CybercrimeTier(high, medium).Rank()
			assert.GreaterOrEqual(t, r, prev, "cybercrime high=%d medium=%d", high, medium)
			prev = r
		}
	}

	assert.Equal(t, TierLow, CybercrimeTier(0, 0))
	assert.Equal(t, TierHigh, CybercrimeTier(1, 0))
	assert.Equal(t, TierCritical, CybercrimeTier(4, 0))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0", FormatUSD(0))
	assert.Equal(t, "$750", FormatUSD(750))
	assert.Equal(t, "$4,500", FormatUSD(4500))
	assert.Equal(t, "$1,500,000", FormatUSD(1500000))
}

func TestPiracyRiskFactors(t *testing.T) {
	assert.Equal(t, "High confidence match, Clear infringement, Commercial scale, Wide distribution, Monetized content",
		PiracyRiskFactors(model.PiracyItem{Match: 95, Severity: model.SeverityHigh, Platform: model.PlatformYouTube}))
	assert.Equal(t, "None recorded", PiracyRiskFactors(model.PiracyItem{Match: 60, Severity: model.SeverityLow, Platform: model.PlatformX}))
}
