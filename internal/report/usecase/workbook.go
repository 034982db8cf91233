package usecase

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"aegis-srv/internal/model"
	"aegis-srv/internal/report/composer"
)

const (
	sheetSummary = "Summary"
	sheetFlagged = "Flagged Accounts"
	sheetPiracy  = "Piracy Items"

	workbookTimeLayout = "2006-01-02 15:04:05"
)

var (
	flaggedHeader = []any{"#", "Handle", "Platform", "Risk", "Last Seen", "Profile URL", "Threat Indicators", "Comment"}
	piracyHeader  = []any{"#", "ID", "Platform", "Title", "Match %", "Severity", "Detected", "URL", "Risk Factors"}
)

// buildWorkbook renders the evidence table of a report as XLSX.
func buildWorkbook(kind model.ReportKind, sc model.ScanContext) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := writeSummary(f, kind, sc, header); err != nil {
		return nil, err
	}

	switch kind {
	case model.ReportKindCybercrime:
		err = writeFlagged(f, sc.FlaggedAccounts, header)
	case model.ReportKindCopyright:
		err = writePiracy(f, sc.PiracyItems, header)
	default:
		err = fmt.Errorf("%w: %q", composer.ErrUnknownKind, kind)
	}
	if err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, kind model.ReportKind, sc model.ScanContext, header int) error {
	keywords := sc.Keywords
	if keywords == "" {
		keywords = model.DefaultKeywords
	}

	var tier composer.Tier
	if kind == model.ReportKindCopyright {
		tier = composer.CopyrightTier(composer.CountSeverities(sc.PiracyItems).High)
	} else {
		rc := composer.CountRisks(sc.FlaggedAccounts)
		tier = composer.CybercrimeTier(rc.High, rc.Medium)
	}

	rows := [][]any{
		{"Field", "Value"},
		{"Investigation ID", sc.ScanID},
		{"Report Kind", string(kind)},
		{"Classification Level", string(tier)},
		{"Scan Date", sc.ScanDate.UTC().Format(workbookTimeLayout)},
		{"Monitoring Keywords", keywords},
		{"Total Profiles Analyzed", sc.TotalUsers},
		{"Matched Profiles", sc.MatchedUsers},
		{"Flagged Accounts", len(sc.FlaggedAccounts)},
		{"Piracy Items", len(sc.PiracyItems)},
	}
	if err := writeRows(f, sheetSummary, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetSummary, "A1", "B1", header); err != nil {
		return err
	}
	return f.SetColWidth(sheetSummary, "A", "B", 28)
}

func writeFlagged(f *excelize.File, accounts []model.FlaggedAccount, header int) error {
	rows := make([][]any, 0, len(accounts)+1)
	rows = append(rows, flaggedHeader)
	for i, a := range accounts {
		rows = append(rows, []any{
			i + 1, "@" + a.Handle, string(a.Platform), string(a.Risk),
			a.LastSeen.UTC().Format(workbookTimeLayout), a.URL, composer.ThreatIndicators(a.Risk), a.Comment,
		})
	}
	return writeTable(f, sheetFlagged, rows, header)
}

func writePiracy(f *excelize.File, items []model.PiracyItem, header int) error {
	rows := make([][]any, 0, len(items)+1)
	rows = append(rows, piracyHeader)
	for i, it := range items {
		rows = append(rows, []any{
			i + 1, it.ID, string(it.Platform), it.Title, it.Match,
			string(it.Severity), it.DetectedAt, it.URL, composer.PiracyRiskFactors(it),
		})
	}
	return writeTable(f, sheetPiracy, rows, header)
}

func writeTable(f *excelize.File, sheet string, rows [][]any, header int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), len(rows))
	if err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, header); err != nil {
		return err
	}
	if len(rows) > 1 {
		if err := f.AutoFilter(sheet, "A1:"+last, nil); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "B", "I", 22)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
