package composer

import (
	"strings"

	"aegis-srv/internal/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.English)

// FormatUSD renders a whole dollar amount with thousands separators, e.g. $4,500.
func FormatUSD(amount int) string {
	return usd.Sprintf("$%d", amount)
}

// Statutory damage multipliers per high severity work.
const (
	statutoryMinPerWork = 750
	statutoryMaxPerWork = 30000
	willfulMaxPerWork   = 150000
)

// DamagesEstimate is a linear function of the high severity count.
type DamagesEstimate struct {
	StatutoryMin int
	StatutoryMax int
	Willful      int
}

func EstimateDamages(high int) DamagesEstimate {
	return DamagesEstimate{
		StatutoryMin: high * statutoryMinPerWork,
		StatutoryMax: high * statutoryMaxPerWork,
		Willful:      high * willfulMaxPerWork,
	}
}

// ThreatIndicators lists the indicators associated with a risk level.
func ThreatIndicators(risk model.RiskLevel) string {
	switch risk {
	case model.RiskHigh:
		return "Coordinated attacks, Policy violations, Threats"
	case model.RiskMedium:
		return "Suspicious activity, Potential coordination"
	default:
		return "Minor concerns, Monitoring recommended"
	}
}

// PiracyRiskFactors lists what makes a piracy item serious.
func PiracyRiskFactors(item model.PiracyItem) string {
	var factors []string
	if item.Match > 90 {
		factors = append(factors, "High confidence match", "Clear infringement")
	}
	if item.Severity == model.SeverityHigh {
		factors = append(factors, "Commercial scale", "Wide distribution")
	}
	if item.Platform == model.PlatformYouTube {
		factors = append(factors, "Monetized content")
	}
	if len(factors) == 0 {
		return "None recorded"
	}
	return strings.Join(factors, ", ")
}

// Coordination is HIGH once flagged accounts span more than two platforms.
func Coordination(accounts []model.FlaggedAccount) string {
	platforms := map[model.Platform]struct{}{}
	for _, a := range accounts {
		platforms[a.Platform] = struct{}{}
	}
	if len(platforms) > 2 {
		return "HIGH (Multi-platform activity)"
	}
	return "MODERATE (Limited platforms)"
}

func EscalationRisk(accounts []model.FlaggedAccount) string {
	if CountRisks(accounts).High > 2 {
		return "HIGH (Multiple high-risk actors)"
	}
	return "MODERATE (Contained threat)"
}

func CommercialPiracy(items []model.PiracyItem) string {
	strong := 0
	for _, it := range items {
		if it.Match > 90 {
			strong++
		}
	}
	if strong > 2 {
		return "HIGH (Commercial piracy suspected)"
	}
	return "MODERATE (Individual violations)"
}

// AverageMatch is the mean match percentage, 0 for no items.
func AverageMatch(items []model.PiracyItem) float64 {
	if len(items) == 0 {
		return 0
	}
	sum := 0
	for _, it := range items {
		sum += it.Match
	}
	return float64(sum) / float64(len(items))
}

// PlatformCount is the number of findings on one platform and how many of them are high.
type PlatformCount struct {
	Platform model.Platform
	Count    int
	High     int
}

// countByPlatform keeps first-appearance order so output is stable.
func countByPlatform[T any](items []T, platformOf func(T) model.Platform, isHigh func(T) bool) []PlatformCount {
	var out []PlatformCount
	index := map[model.Platform]int{}
	for _, it := range items {
		p := platformOf(it)
		i, ok := index[p]
		if !ok {
			i = len(out)
			index[p] = i
			out = append(out, PlatformCount{Platform: p})
		}
		out[i].Count++
		if isHigh(it) {
			out[i].High++
		}
	}
	return out
}

func AccountPlatforms(accounts []model.FlaggedAccount) []PlatformCount {
	return countByPlatform(accounts,
		func(a model.FlaggedAccount) model.Platform { return a.Platform },
		func(a model.FlaggedAccount) bool { return a.Risk == model.RiskHigh })
}

func ItemPlatforms(items []model.PiracyItem) []PlatformCount {
	return countByPlatform(items,
		func(it model.PiracyItem) model.Platform { return it.Platform },
		func(it model.PiracyItem) bool { return it.Severity == model.SeverityHigh })
}

// PlatformRisk grades a platform by how many flagged accounts it hosts.
func PlatformRisk(count int) string {
	switch {
	case count > 3:
		return "HIGH"
	case count > 1:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
