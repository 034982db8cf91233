package composer

import (
	"fmt"
	"strings"

	"aegis-srv/internal/model"
)

func (c *Composer) copyright(w *writer, sc model.ScanContext) {
	items := sc.PiracyItems
	n := len(items)
	sv := CountSeverities(items)
	tier := CopyrightTier(sv.High)

	w.line("COPYRIGHT INFRINGEMENT INVESTIGATION REPORT")
	w.line("Classification: %s", c.confidentiality)
	w.line("Investigation ID: %s", sc.ScanID)
	w.line("Report Date: %s", formatDate(sc))
	w.line("Report Type: Digital Piracy and Copyright Violation Analysis")
	w.line("Classification Level: %s", tier)

	w.section("EXECUTIVE SUMMARY")
	w.line("The scan documented %d %s of copyright infringement across monitored platforms. "+
		"Enforcement priority for this batch is %s.", n, plural(n, "instance", "instances"), strings.ToLower(string(tier)))
	w.blank()
	w.line("INFRINGEMENT LEVEL: %s", tier)
	w.line("ACTION REQUIRED: %s", copyrightAction(sv.High))

	w.section("INVESTIGATION METADATA")
	w.line("- Investigation ID: %s", sc.ScanID)
	w.line("- Scan Date: %s", formatDate(sc))
	w.line("- Total Profiles Analyzed: %d", sc.TotalUsers)
	w.line("- Monitoring Keywords: %q", keywords(sc))
	w.line("- Matched Content: %d", sc.MatchedUsers)
	w.line("- Detected Violations: %d", n)

	w.section("COPYRIGHT VIOLATION ANALYSIS - " + string(tier) + " PRIORITY")
	w.line("Total Violations Detected: %d", n)
	w.line("├─ High-Severity (Immediate Takedown): %d", sv.High)
	w.line("├─ Medium-Severity (48-Hour Action): %d", sv.Medium)
	w.line("└─ Low-Severity (Standard Monitoring): %d", sv.Low)
	w.blank()
	w.text(copyrightNarrative(tier, sv, n))
	w.blank()
	w.line("- Average Match Confidence: %.1f%%", AverageMatch(items))
	w.line("- Commercial Indicators: %s", CommercialPiracy(items))

	w.section("DETAILED INFRINGEMENT ANALYSIS")
	if n == 0 {
		w.line("No infringing content was detected in this scan.")
	}
	for i, it := range items {
		if i > 0 {
			w.blank()
		}
		w.line("%d. %s - %q", i+1, it.Platform, it.Title)
		w.line("   Investigation ID: %s-%d", sc.ScanID, i+1)
		w.line("   Match Confidence: %d%%", it.Match)
		w.line("   Severity: %s", strings.ToUpper(string(it.Severity)))
		w.line("   Detection Date: %s", it.DetectedAt)
		w.line("   Platform URL: %s", it.URL)
		w.line("   Risk Factors: %s", PiracyRiskFactors(it))
		itemFindings(w, it)
	}

	w.section("PLATFORM DISTRIBUTION ANALYSIS")
	for i, p := range ItemPlatforms(items) {
		if i > 0 {
			w.blank()
		}
		action := "Standard takedown procedures"
		if p.High > 0 {
			action = "IMMEDIATE DMCA filing required"
		}
		w.line("%s:", p.Platform)
		w.line("- Total Violations: %d", p.Count)
		w.line("- High-Severity: %d", p.High)
		w.line("- Action: %s", action)
		w.line("- Contact: %s Copyright Team / DMCA Agent", p.Platform)
	}

	w.section("DMCA ENFORCEMENT STRATEGY - PRIORITY ORDER")
	if sv.High > 0 {
		w.line("IMMEDIATE (Within 24 Hours):")
		w.line("1. File DMCA takedown notices for all %d high-severity %s", sv.High, plural(sv.High, "violation", "violations"))
		w.line("2. Preserve screenshots, URLs, timestamps and match data")
		w.line("3. Record infringer details for repeat offender tracking")
		w.line("4. Brief legal counsel on statutory damages claims")
		w.line("5. Consider emergency injunctive relief if damages are substantial")
		w.blank()
	}
	if sv.Medium > 0 {
		w.line("URGENT (Within 48 Hours):")
		w.line("1. File DMCA takedown notices for %d medium-severity %s", sv.Medium, plural(sv.Medium, "violation", "violations"))
		w.line("2. Watch for compliance and re-uploads")
		w.line("3. Log every enforcement action taken")
		w.line("4. Prepare escalation steps for non-compliance")
		w.blank()
	}
	w.line("ONGOING ENFORCEMENT:")
	w.line("1. Monitor all platforms for re-uploads and derivative works")
	w.line("2. Track repeat infringers for potential legal action")
	w.line("3. Issue new takedown notices as violations appear")
	w.line("4. Use automated content ID systems where available")
	w.line("5. Review enforcement effectiveness monthly")

	w.section("FINANCIAL IMPACT ASSESSMENT")
	d := EstimateDamages(sv.High)
	switch {
	case sv.High > 5:
		w.line("Estimated Potential Damages:")
		w.line("- Statutory Damages Range: %s - %s", FormatUSD(d.StatutoryMin), FormatUSD(d.StatutoryMax))
		w.line("- Enhanced Damages (if willful): Up to %s", FormatUSD(d.Willful))
		w.line("- Actual Damages: Requires detailed analysis of distribution and views")
		w.line("- Attorney Fees: Recoverable under 17 U.S.C. § 505")
		w.blank()
		w.line("The scale of infringement points to commercial piracy and supports seeking maximum statutory damages.")
	case sv.High > 0:
		w.line("Estimated Potential Damages:")
		w.line("- Statutory Damages Range: %s - %s", FormatUSD(d.StatutoryMin), FormatUSD(d.StatutoryMax))
		w.line("- Actual Damages: Document views/downloads for calculation")
		w.line("- Attorney Fees: Potentially recoverable")
		w.blank()
		w.line("Statutory damages are worth pursuing for the high-severity violations.")
	default:
		w.line("Standard copyright enforcement recommended. Document actual damages for potential future claims.")
	}

	w.section("LEGAL CONSIDERATIONS")
	prefix := ""
	if sv.High > 5 {
		prefix = "⚠️ CRITICAL LEGAL ALERT: "
	}
	w.line("%sThis report documents copyright infringement evidence for:", prefix)
	w.line("- DMCA takedown notices (17 U.S.C. § 512)")
	w.line("- Statutory damages claims (up to $150,000 per work)")
	w.line("- Injunctive relief proceedings")
	w.line("- Criminal copyright infringement referrals (if willful, commercial scale)")
	if sv.High > 5 {
		w.blank()
		w.line("Given the scale of infringement, consult intellectual property counsel immediately.")
	}

	w.section("CONCLUSION")
	w.text(copyrightConclusion(tier, sv, n))
	w.blank()
	w.line("Report Classification: %s PRIORITY", tier)
	w.line("Next Review: %s", copyrightNextReview(sv.High, sv.Medium))
	w.line("Legal Action Timeline: %s", legalTimeline(sv.High, sv.Medium))
	w.line("Report prepared by: %s", c.organization)
	w.line("Legal Notice: This report is prepared for copyright enforcement purposes and may be used in legal proceedings.")
}

func copyrightNarrative(tier Tier, sv SeverityCounts, n int) string {
	switch tier {
	case TierCritical:
		return fmt.Sprintf("⚠️ CRITICAL ALERT: %d high-severity violations indicate a large, organized piracy operation "+
			"with potential for significant financial damages.", sv.High)
	case TierHigh:
		return fmt.Sprintf("⚠️ URGENT: %d high-severity violations detected with high match confidence. "+
			"Active content theft of this kind calls for immediate DMCA takedowns.", sv.High)
	case TierModerate:
		return fmt.Sprintf("%d high-severity %s detected. Not critical, but prompt DMCA action is required.",
			sv.High, plural(sv.High, "violation has been", "violations have been"))
	default:
		return fmt.Sprintf("The scan detected %d potential %s of varying severity. Follow standard copyright enforcement procedures.",
			n, plural(n, "violation", "violations"))
	}
}

func copyrightConclusion(tier Tier, sv SeverityCounts, n int) string {
	switch tier {
	case TierCritical:
		return fmt.Sprintf("⚠️ CRITICAL COPYRIGHT EMERGENCY: %d high-severity violations show systematic, commercial piracy. "+
			"IMMEDIATE LEGAL ACTION is required: emergency takedowns, counsel consultation and possible law enforcement notification.", sv.High)
	case TierHigh:
		return fmt.Sprintf("⚠️ URGENT COPYRIGHT VIOLATION: %d high-severity infringements require DMCA takedowns within 24 hours "+
			"to stop further distribution.", sv.High)
	case TierModerate:
		return fmt.Sprintf("%d high-severity copyright %s found. Timely takedown notices will protect the affected rights.",
			sv.High, plural(sv.High, "violation was", "violations were"))
	default:
		return fmt.Sprintf("Standard copyright monitoring scan completed. %d potential %s documented. Follow standard DMCA procedures.",
			n, plural(n, "violation has been", "violations have been"))
	}
}

func itemFindings(w *writer, it model.PiracyItem) {
	switch it.Severity {
	case model.SeverityHigh:
		w.line("   ⚠️ CRITICAL VIOLATION:")
		w.line("   - Evidence: %d%% content match detected", it.Match)
		w.line("   - Action Required: File DMCA takedown notice within 24 hours")
		w.line("   - Legal Impact: Potential statutory damages and injunctive relief available")
	case model.SeverityMedium:
		w.line("   ⚡ URGENT VIOLATION:")
		w.line("   - Evidence: %d%% content match detected", it.Match)
		w.line("   - Action Required: File DMCA takedown notice within 48 hours")
		w.line("   - Legal Impact: Document for potential escalation")
	default:
		w.line("   ℹ️ MONITORING VIOLATION:")
		w.line("   - Evidence: %d%% content match detected", it.Match)
		w.line("   - Action Required: Review and document, file DMCA if confirmed")
		w.line("   - Legal Impact: Standard enforcement procedures")
	}
}
