package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/filingwatch/regdocs-monitor/internal/entity"
	"github.com/filingwatch/regdocs-monitor/internal/repository"
)

// Service produces an XLSX digest of analyzed filings for reviewers who
// live in spreadsheets rather than databases.
type Service struct {
	filingsRepo repository.FilingRepository
	logger      *slog.Logger
}

func NewService(filingsRepo repository.FilingRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{filingsRepo: filingsRepo, logger: logger}
}

// analysisDigest is the subset of the stored analysis JSON that lands in
// the spreadsheet.
type analysisDigest struct {
	Summary        string `json:"summary"`
	Classification struct {
		PrimaryType string   `json:"primary_type"`
		Tags        []string `json:"tags"`
		Confidence  int      `json:"confidence"`
	} `json:"classification"`
	KeyFacts []string `json:"key_facts"`
}

// ExportAnalyzedXLSX returns an XLSX workbook (as bytes) with one row per
// analyzed filing.
func (s *Service) ExportAnalyzedXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	filings, err := s.filingsRepo.AnalyzedFilings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query analyzed filings: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Filings"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// Drop the default sheet excelize creates.
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Filing ID",
		"Date",
		"Applicant",
		"Filing Type",
		"Proceeding",
		"Documents",
		"Classification",
		"Confidence",
		"Tags",
		"Summary",
		"Key Facts",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, fl := range filings {
		digest := parseDigest(fl)

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, fl.ExternalID)
		if fl.Date != nil {
			write(2, fl.Date.Format("2006-01-02"))
		} else {
			write(2, "")
		}
		write(3, fl.Applicant)
		write(4, fl.FilingType)
		write(5, fl.ProceedingNumber)
		write(6, len(fl.Documents))
		write(7, digest.Classification.PrimaryType)
		write(8, digest.Classification.Confidence)
		write(9, strings.Join(digest.Classification.Tags, ", "))
		write(10, truncate(digest.Summary, 300))
		write(11, truncate(strings.Join(digest.KeyFacts, " • "), 500))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 12)
	_ = f.SetColWidth(sheet, "C", "D", 26)
	_ = f.SetColWidth(sheet, "E", "F", 12)
	_ = f.SetColWidth(sheet, "G", "G", 22)
	_ = f.SetColWidth(sheet, "I", "I", 28)
	_ = f.SetColWidth(sheet, "J", "K", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(filings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func parseDigest(fl *entity.Filing) analysisDigest {
	var d analysisDigest
	if len(fl.AnalysisJSON) > 0 {
		_ = json.Unmarshal(fl.AnalysisJSON, &d)
	}
	return d
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
