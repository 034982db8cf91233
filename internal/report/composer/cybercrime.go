package composer

import (
	"fmt"
	"strings"

	"aegis-srv/internal/model"
)

func (c *Composer) cybercrime(w *writer, sc model.ScanContext) {
	accounts := sc.FlaggedAccounts
	n := len(accounts)
	rc := CountRisks(accounts)
	tier := CybercrimeTier(rc.High, rc.Medium)

	w.line("CYBERCRIME INVESTIGATION REPORT")
	w.line("Classification: %s", c.confidentiality)
	w.line("Investigation ID: %s", sc.ScanID)
	w.line("Report Date: %s", formatDate(sc))
	w.line("Report Type: Social Media Threat Analysis")
	w.line("Classification Level: %s", tier)

	w.section("EXECUTIVE SUMMARY")
	w.line("The scan surfaced %d %s whose activity matches patterns of harassment, coordinated abuse or other online crime. "+
		"Findings below are graded by risk so platform and law enforcement teams can act in order.", n, plural(n, "account", "accounts"))
	w.blank()
	w.line("THREAT LEVEL: %s", tier)
	w.line("URGENCY: %s", cybercrimeUrgency(rc.High))

	w.section("INVESTIGATION METADATA")
	w.line("- Investigation ID: %s", sc.ScanID)
	w.line("- Scan Date: %s", formatDate(sc))
	w.line("- Total Profiles Analyzed: %d", sc.TotalUsers)
	w.line("- Monitoring Keywords: %q", keywords(sc))
	w.line("- Matched Profiles: %d", sc.MatchedUsers)
	w.line("- Flagged Accounts: %d", n)

	w.section("THREAT ASSESSMENT - " + string(tier) + " SEVERITY")
	w.line("Total Flagged Accounts: %d", n)
	w.line("├─ High-Risk (Immediate Action): %d", rc.High)
	w.line("├─ Medium-Risk (Urgent Monitoring): %d", rc.Medium)
	w.line("└─ Low-Risk (Standard Review): %d", rc.Low)
	w.blank()
	w.text(cybercrimeNarrative(tier, rc, n))
	w.blank()
	w.line("- Coordination Indicators: %s", Coordination(accounts))
	w.line("- Escalation Risk: %s", EscalationRisk(accounts))

	w.section("DETAILED ACCOUNT ANALYSIS")
	if n == 0 {
		w.line("No accounts were flagged in this scan.")
	}
	for i, a := range accounts {
		if i > 0 {
			w.blank()
		}
		w.line("%d. @%s (%s)", i+1, a.Handle, a.Platform)
		w.line("   Investigation ID: %s-%d", sc.ScanID, i+1)
		w.line("   Risk Level: %s", strings.ToUpper(string(a.Risk)))
		w.line("   Last Activity: %s", a.LastSeen.Format(dateLayout))
		w.line("   Profile URL: %s", a.URL)
		if a.Comment != "" {
			w.line("   Source Comment: %q", a.Comment)
		}
		w.line("   Threat Indicators: %s", ThreatIndicators(a.Risk))
		accountFindings(w, a.Risk)
	}

	w.section("PLATFORM RISK ANALYSIS")
	for i, p := range AccountPlatforms(accounts) {
		if i > 0 {
			w.blank()
		}
		risk := PlatformRisk(p.Count)
		w.line("%s:", p.Platform)
		w.line("- Total Violations: %d", p.Count)
		w.line("- Risk Level: %s", risk)
		w.line("- Action Required: %s", platformAction(risk))
	}

	w.section("RECOMMENDED ACTIONS - PRIORITY ORDER")
	if rc.High > 0 {
		w.line("IMMEDIATE (Within 24 Hours):")
		w.line("1. Report all %d high-risk %s to platform trust & safety teams", rc.High, plural(rc.High, "account", "accounts"))
		w.line("2. File formal complaints with law enforcement cybercrime units")
		w.line("3. Preserve screenshots and all other evidence")
		w.line("4. Consider emergency protective measures for affected parties")
		w.line("5. Brief legal counsel on possible civil or criminal proceedings")
		w.blank()
	}
	if rc.Medium > 0 {
		w.line("URGENT (Within 48 Hours):")
		w.line("1. Report %d medium-risk %s to platform abuse departments", rc.Medium, plural(rc.Medium, "account", "accounts"))
		w.line("2. Set up continuous monitoring")
		w.line("3. Record activity patterns and evidence")
		w.line("4. Prepare formal complaints in case escalation is needed")
		w.blank()
	}
	w.line("ONGOING MONITORING:")
	w.line("1. Keep every flagged account under active monitoring")
	w.line("2. Add new evidence to the case file as it appears")
	w.line("3. Reassess threat levels weekly")
	w.line("4. Apply preventive security measures")

	w.section("LEGAL CONSIDERATIONS")
	prefix := ""
	if rc.High > 0 {
		prefix = "CRITICAL: "
	}
	w.line("%sThis report contains evidence that may be used in:", prefix)
	w.line("- Criminal cybercrime investigations")
	w.line("- Civil harassment restraining orders")
	w.line("- Platform Terms of Service enforcement actions")
	w.line("- Federal/state law enforcement proceedings")
	if rc.High > 0 {
		w.blank()
		w.line("Given the severity of the findings, legal consultation should happen without delay.")
	}

	w.section("EVIDENCE PRESERVATION PROTOCOL")
	w.line("Evidence for this investigation is kept to legal standards:")
	w.line("- Screenshots and documentation timestamped")
	w.line("- Platform URLs and account identifiers recorded")
	w.line("- Activity patterns and timelines documented")
	w.line("- Evidence chain of custody maintained")

	w.section("CONCLUSION")
	w.text(cybercrimeConclusion(tier, rc, n))
	w.blank()
	w.line("Report Classification: %s", tier)
	w.line("Next Review: %s", cybercrimeNextReview(rc.High, rc.Medium))
	w.line("Report prepared by: %s", c.organization)
	w.line("Confidentiality: This report contains sensitive information and should be handled accordingly.")
}

func cybercrimeNarrative(tier Tier, rc RiskCounts, n int) string {
	switch tier {
	case TierCritical:
		return fmt.Sprintf("⚠️ CRITICAL ALERT: %d high-risk accounts point to a coordinated campaign that needs immediate intervention. "+
			"Activity at this level suggests organized harassment or cybercrime.", rc.High)
	case TierHigh:
		return fmt.Sprintf("⚠️ URGENT: %d high-risk %s identified with clear indicators of malicious intent.",
			rc.High, plural(rc.High, "account", "accounts"))
	case TierModerate:
		return fmt.Sprintf("%d accounts show concerning behavior that warrants monitoring and possible intervention.", rc.Medium)
	default:
		return fmt.Sprintf("Routine security scan completed. %d %s flagged for review.", n, plural(n, "account has been", "accounts have been"))
	}
}

func cybercrimeConclusion(tier Tier, rc RiskCounts, n int) string {
	switch tier {
	case TierCritical:
		return fmt.Sprintf("⚠️ CRITICAL ALERT: the %d high-risk accounts identified pose a clear and present danger. "+
			"Notify law enforcement and put protective measures in place without delay.", rc.High)
	case TierHigh:
		return fmt.Sprintf("⚠️ URGENT: %d high-risk %s need immediate attention to prevent escalation and protect affected parties.",
			rc.High, plural(rc.High, "account", "accounts"))
	case TierModerate:
		return fmt.Sprintf("Concerning patterns were found across %d accounts. They are not critical yet but call for prompt attention and continued monitoring.", rc.Medium)
	default:
		return fmt.Sprintf("Standard security scan completed. %d %s flagged for review. Continue routine monitoring.", n, plural(n, "account has been", "accounts have been"))
	}
}

func accountFindings(w *writer, risk model.RiskLevel) {
	switch risk {
	case model.RiskHigh:
		w.line("   ⚠️ CRITICAL FINDINGS:")
		w.line("   - Behavioral Patterns: Systematic abuse, potential threats to safety")
		w.line("   - Recommended Action: IMMEDIATE reporting to platform authorities and law enforcement")
		w.line("   - Timeline: Report within 24 hours")
	case model.RiskMedium:
		w.line("   ⚡ URGENT FINDINGS:")
		w.line("   - Behavioral Patterns: Concerning engagement, potential escalation")
		w.line("   - Recommended Action: Document activity and file platform reports within 48 hours")
		w.line("   - Timeline: Monitor closely for escalation")
	default:
		w.line("   ℹ️ MONITORING FINDINGS:")
		w.line("   - Behavioral Patterns: Minor policy violations, suspicious but not critical")
		w.line("   - Recommended Action: Continue monitoring and document any changes")
		w.line("   - Timeline: Standard review procedures")
	}
}

func platformAction(risk string) string {
	switch risk {
	case "HIGH":
		return "IMMEDIATE platform reporting"
	case "MEDIUM":
		return "Urgent monitoring"
	default:
		return "Standard procedures"
	}
}
