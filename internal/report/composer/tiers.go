package composer

import "aegis-srv/internal/model"

// Tier is the overall severity classification of a report.
type Tier string

const (
	TierLow      Tier = "LOW"
	TierModerate Tier = "MODERATE"
	TierHigh     Tier = "HIGH"
	TierCritical Tier = "CRITICAL"
)

// Rank orders tiers from LOW (0) to CRITICAL (3).
func (t Tier) Rank() int {
	switch t {
	case TierCritical:
		return 3
	case TierHigh:
		return 2
	case TierModerate:
		return 1
	default:
		return 0
	}
}

// CybercrimeTier grades flagged accounts by their high and medium risk counts.
func CybercrimeTier(high, medium int) Tier {
	switch {
	case high > 3:
		return TierCritical
	case high > 0:
		return TierHigh
	case medium > 2:
		return TierModerate
	default:
		return TierLow
	}
}

// CopyrightTier grades piracy items by their high severity count.
func CopyrightTier(high int) Tier {
	switch {
	case high > 5:
		return TierCritical
	case high > 2:
		return TierHigh
	case high > 0:
		return TierModerate
	default:
		return TierLow
	}
}

func cybercrimeUrgency(high int) string {
	switch {
	case high > 3:
		return "IMMEDIATE ACTION REQUIRED"
	case high > 0:
		return "Urgent attention needed"
	default:
		return "Standard monitoring recommended"
	}
}

func copyrightAction(high int) string {
	switch {
	case high > 5:
		return "IMMEDIATE LEGAL ACTION REQUIRED"
	case high > 0:
		return "Urgent DMCA takedowns needed"
	default:
		return "Standard enforcement recommended"
	}
}

func cybercrimeNextReview(high, medium int) string {
	switch {
	case high > 0:
		return "24 hours"
	case medium > 0:
		return "48 hours"
	default:
		return "7 days"
	}
}

func copyrightNextReview(high, medium int) string {
	switch {
	case high > 5:
		return "12 hours"
	case high > 0:
		return "24 hours"
	case medium > 0:
		return "48 hours"
	default:
		return "7 days"
	}
}

func legalTimeline(high, medium int) string {
	switch {
	case high > 0:
		return "IMMEDIATE"
	case medium > 0:
		return "Within 48 hours"
	default:
		return "Standard procedures"
	}
}

// RiskCounts tallies flagged accounts per risk level.
type RiskCounts struct {
	High, Medium, Low int
}

func CountRisks(accounts []model.FlaggedAccount) RiskCounts {
	var c RiskCounts
	for _, a := range accounts {
		switch a.Risk {
		case model.RiskHigh:
			c.High++
		case model.RiskMedium:
			c.Medium++
		default:
			c.Low++
		}
	}
	return c
}

// SeverityCounts tallies piracy items per severity.
type SeverityCounts struct {
	High, Medium, Low int
}

func CountSeverities(items []model.PiracyItem) SeverityCounts {
	var c SeverityCounts
	for _, it := range items {
		switch it.Severity {
		case model.SeverityHigh:
			c.High++
		case model.SeverityMedium:
			c.Medium++
		default:
			c.Low++
		}
	}
	return c
}
