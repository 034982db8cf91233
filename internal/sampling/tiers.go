package sampling

import "aegis-srv/internal/model"

// Tier is one row of a TierTable: Label is chosen when the draw falls below Threshold.
type Tier[T any] struct {
	Threshold float64
	Label     T
}

// TierTable maps one uniform draw onto a label via ascending cumulative thresholds.
type TierTable[T any] struct {
	Tiers    []Tier[T]
	Fallback T
}

// Pick resolves an already drawn u in [0, 1).
func (t TierTable[T]) Pick(u float64) T {
	for _, tier := range t.Tiers {
		if u < tier.Threshold {
			return tier.Label
		}
	}
	return t.Fallback
}

// RandomTieredLabel draws one label from table.
func RandomTieredLabel[T any](s *Sampler, table TierTable[T]) T {
	return table.Pick(s.Float64())
}

// RiskTable: 20% High, 40% Medium, 40% Low.
var RiskTable = TierTable[model.RiskLevel]{
	Tiers: []Tier[model.RiskLevel]{
		{Threshold: 0.2, Label: model.RiskHigh},
		{Threshold: 0.6, Label: model.RiskMedium},
	},
	Fallback: model.RiskLow,
}

var (
	strongMatchTable = TierTable[model.Severity]{
		Tiers:    []Tier[model.Severity]{{Threshold: 0.8, Label: model.SeverityHigh}},
		Fallback: model.SeverityMedium,
	}
	goodMatchTable = TierTable[model.Severity]{
		Tiers: []Tier[model.Severity]{
			{Threshold: 0.6, Label: model.SeverityMedium},
			{Threshold: 0.8, Label: model.SeverityHigh},
		},
		Fallback: model.SeverityLow,
	}
	weakMatchTable = TierTable[model.Severity]{
		Tiers:    []Tier[model.Severity]{{Threshold: 0.7, Label: model.SeverityLow}},
		Fallback: model.SeverityMedium,
	}
)

// SeverityTable returns the severity distribution for a match percentage.
// Higher matches are more likely to be graded high.
func SeverityTable(match int) TierTable[model.Severity] {
	switch {
	case match > 90:
		return strongMatchTable
	case match > 75:
		return goodMatchTable
	default:
		return weakMatchTable
	}
}

var (
	fromHighEngagement = TierTable[model.EngagementTier]{
		Tiers: []Tier[model.EngagementTier]{
			{Threshold: 0.6, Label: model.EngagementHigh},
			{Threshold: 0.9, Label: model.EngagementMedium},
		},
		Fallback: model.EngagementLow,
	}
	fromMediumEngagement = TierTable[model.EngagementTier]{
		Tiers: []Tier[model.EngagementTier]{
			{Threshold: 0.2, Label: model.EngagementHigh},
			{Threshold: 0.8, Label: model.EngagementMedium},
		},
		Fallback: model.EngagementLow,
	}
	fromLowEngagement = TierTable[model.EngagementTier]{
		Tiers: []Tier[model.EngagementTier]{
			{Threshold: 0.1, Label: model.EngagementHigh},
			{Threshold: 0.4, Label: model.EngagementMedium},
		},
		Fallback: model.EngagementLow,
	}
	unknownEngagement = TierTable[model.EngagementTier]{
		Tiers: []Tier[model.EngagementTier]{
			{Threshold: 0.33, Label: model.EngagementHigh},
			{Threshold: 0.67, Label: model.EngagementMedium},
		},
		Fallback: model.EngagementLow,
	}
)

// EngagementTable returns the distribution of a re-drawn engagement tier.
// The draw leans toward base; an unknown base is close to uniform.
func EngagementTable(base model.EngagementTier) TierTable[model.EngagementTier] {
	switch base {
	case model.EngagementHigh:
		return fromHighEngagement
	case model.EngagementMedium:
		return fromMediumEngagement
	case model.EngagementLow:
		return fromLowEngagement
	default:
		return unknownEngagement
	}
}

// GeoSeverity grades a platform cluster by its size.
func GeoSeverity(count int) model.Severity {
	switch {
	case count > 5:
		return model.SeverityHigh
	case count > 2:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}
