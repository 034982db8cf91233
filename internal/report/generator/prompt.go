package generator

import (
	"fmt"
	"strings"

	"aegis-srv/internal/model"
	"aegis-srv/internal/report"
	"aegis-srv/internal/report/composer"
)

// SystemPrompt frames the model as the analyst writing the report.
const SystemPrompt = "You are a senior cybersecurity analyst and legal report writer with expertise in social media " +
	"monitoring, threat intelligence and digital forensics. Write professional reports suitable for law enforcement, " +
	"legal proceedings and corporate security teams, with detailed analysis, risk assessments and actionable recommendations."

const promptDateLayout = "2006-01-02 15:04:05 MST"

// BuildPrompt renders the user prompt for kind from the scan context.
func BuildPrompt(kind model.ReportKind, sc model.ScanContext) (string, error) {
	var b strings.Builder
	switch kind {
	case model.ReportKindCybercrime:
		cybercrimePrompt(&b, sc)
	case model.ReportKindCopyright:
		copyrightPrompt(&b, sc)
	default:
		return "", fmt.Errorf("%w: %q", report.ErrInvalidKind, kind)
	}
	return b.String(), nil
}

func metadata(b *strings.Builder, sc model.ScanContext, matchedLabel, countLabel string, count int) {
	keywords := sc.Keywords
	if strings.TrimSpace(keywords) == "" {
		keywords = model.DefaultKeywords
	}
	b.WriteString("INVESTIGATION METADATA:\n")
	fmt.Fprintf(b, "- Investigation ID: %s\n", sc.ScanID)
	fmt.Fprintf(b, "- Scan Date: %s\n", sc.ScanDate.Format(promptDateLayout))
	fmt.Fprintf(b, "- Total Profiles Analyzed: %d\n", sc.TotalUsers)
	fmt.Fprintf(b, "- Monitoring Keywords: %s\n", keywords)
	fmt.Fprintf(b, "- %s: %d\n", matchedLabel, sc.MatchedUsers)
	fmt.Fprintf(b, "- %s: %d\n\n", countLabel, count)
}

func cybercrimePrompt(b *strings.Builder, sc model.ScanContext) {
	accounts := sc.FlaggedAccounts
	rc := composer.CountRisks(accounts)

	b.WriteString("Generate a comprehensive cybercrime investigation report based on the following intelligence data:\n\n")
	metadata(b, sc, "Matched Profiles", "Flagged Accounts", len(accounts))

	b.WriteString("THREAT PATTERN ANALYSIS:\n")
	fmt.Fprintf(b, "- Overall Threat Level: %s\n", composer.CybercrimeTier(rc.High, rc.Medium))
	fmt.Fprintf(b, "- High-Risk Accounts: %d\n", rc.High)
	fmt.Fprintf(b, "- Medium-Risk Accounts: %d\n", rc.Medium)
	fmt.Fprintf(b, "- Low-Risk Accounts: %d\n", rc.Low)
	fmt.Fprintf(b, "- Coordination Indicators: %s\n", composer.Coordination(accounts))
	fmt.Fprintf(b, "- Escalation Risk: %s\n\n", composer.EscalationRisk(accounts))

	b.WriteString("PLATFORM RISK DISTRIBUTION:\n")
	for _, p := range composer.AccountPlatforms(accounts) {
		fmt.Fprintf(b, "%s: %d accounts (%s risk)\n", p.Platform, p.Count, composer.PlatformRisk(p.Count))
	}
	b.WriteString("\nFLAGGED ACCOUNTS DETAILS:\n")
	for _, a := range accounts {
		fmt.Fprintf(b, "- @%s (%s)\n", a.Handle, a.Platform)
		fmt.Fprintf(b, "    Risk Level: %s\n", a.Risk)
		fmt.Fprintf(b, "    Last Activity: %s\n", a.LastSeen.Format(promptDateLayout))
		fmt.Fprintf(b, "    Profile URL: %s\n", a.URL)
		fmt.Fprintf(b, "    Threat Indicators: %s\n", composer.ThreatIndicators(a.Risk))
	}

	b.WriteString(`
Write a professional report with these sections:
1. EXECUTIVE SUMMARY: overview, threat level (CRITICAL/HIGH/MODERATE/LOW), immediate action requirements
2. INTELLIGENCE ANALYSIS: threat actor behavior, platform-specific risk
3. DETAILED FINDINGS: account-by-account analysis with evidence
4. RISK ASSESSMENT: severity, impact, escalation potential
5. RECOMMENDED ACTIONS: within 24 hours, within 48-72 hours, long-term monitoring
6. LEGAL CONSIDERATIONS: evidence preservation, platform reporting, law enforcement notification

Use plain text headings. The report must be suitable for law enforcement submission.
`)
}

func copyrightPrompt(b *strings.Builder, sc model.ScanContext) {
	items := sc.PiracyItems
	sv := composer.CountSeverities(items)
	damages := composer.EstimateDamages(sv.High)

	b.WriteString("Generate a comprehensive copyright infringement investigation report based on the following intelligence data:\n\n")
	metadata(b, sc, "Matched Content", "Detected Violations", len(items))

	b.WriteString("COPYRIGHT VIOLATION METRICS:\n")
	fmt.Fprintf(b, "- Infringement Level: %s\n", composer.CopyrightTier(sv.High))
	fmt.Fprintf(b, "- High-Severity Violations: %d\n", sv.High)
	fmt.Fprintf(b, "- Average Match Confidence: %.1f%%\n", composer.AverageMatch(items))
	fmt.Fprintf(b, "- Commercial Indicators: %s\n", composer.CommercialPiracy(items))
	fmt.Fprintf(b, "- Statutory Damages Range: %s - %s\n\n", composer.FormatUSD(damages.StatutoryMin), composer.FormatUSD(damages.StatutoryMax))

	b.WriteString("PLATFORM DISTRIBUTION:\n")
	for _, p := range composer.ItemPlatforms(items) {
		fmt.Fprintf(b, "%s: %d violations (%d high severity)\n", p.Platform, p.Count, p.High)
	}
	b.WriteString("\nDETECTED INFRINGEMENTS DETAILS:\n")
	for _, it := range items {
		fmt.Fprintf(b, "- Platform: %s\n", it.Platform)
		fmt.Fprintf(b, "    Content: %s\n", it.Title)
		fmt.Fprintf(b, "    Match Confidence: %d%%\n", it.Match)
		fmt.Fprintf(b, "    Severity: %s\n", it.Severity)
		fmt.Fprintf(b, "    Detection Date: %s\n", it.DetectedAt)
		fmt.Fprintf(b, "    URL: %s\n", it.URL)
		fmt.Fprintf(b, "    Risk Factors: %s\n", composer.PiracyRiskFactors(it))
	}

	b.WriteString(`
Write a professional report with these sections:
1. EXECUTIVE SUMMARY: overview, infringement level (CRITICAL/HIGH/MODERATE/LOW), financial impact
2. COPYRIGHT VIOLATION ANALYSIS: platform patterns, commercial piracy indicators
3. DETAILED FINDINGS: violation-by-violation analysis with match confidence
4. DAMAGE ASSESSMENT: statutory damages, revenue loss
5. DMCA ENFORCEMENT STRATEGY: takedowns within 24 hours, platform procedures, repeat infringers
6. LEGAL ACTION RECOMMENDATIONS: civil litigation, statutory damages, injunctive relief

Cite 17 U.S.C. § 512 and § 505 where relevant. Use plain text headings.
`)
}
