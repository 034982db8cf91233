package consumer

import (
	"aegis-srv/internal/model"
	"aegis-srv/internal/report"
	scanKafka "aegis-srv/internal/scan/delivery/kafka"
)

// reportKinds maps a scan mode to the reports it warrants.
func reportKinds(mode model.ScanMode) []model.ReportKind {
	switch mode {
	case model.ScanModeHarassment:
		return []model.ReportKind{model.ReportKindCybercrime}
	case model.ScanModePiracy:
		return []model.ReportKind{model.ReportKindCopyright}
	default:
		return []model.ReportKind{model.ReportKindCybercrime, model.ReportKindCopyright}
	}
}

func toGenerateInput(m scanKafka.ScanCompletedMessage, kind model.ReportKind) report.GenerateInput {
	return report.GenerateInput{
		ScanID: m.ScanID,
		Kind:   kind,
	}
}
