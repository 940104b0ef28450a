package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/internal/analyzer"
	"github.com/filingwatch/regdocs-monitor/internal/entity"
)

// Analyzer is the single-filing analysis primitive.
type Analyzer interface {
	Analyze(ctx context.Context, req analyzer.Request) (analyzer.Result, error)
}

// AnalyzeStage assembles each filing's extracted text and runs it through
// the model. The structured result lands in the database; a sidecar copy
// next to the documents is best effort.
type AnalyzeStage struct {
	Service    Analyzer
	FilingsDir string
	Logger     *slog.Logger
}

func NewAnalyzeStage(service Analyzer, filingsDir string, logger *slog.Logger) *AnalyzeStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeStage{Service: service, FilingsDir: filingsDir, Logger: logger}
}

// AssembleText concatenates the extracted text of every successfully
// extracted document, each under a readable section marker. The second
// return is the count of documents that could not contribute.
func AssembleText(f *entity.Filing) (string, int) {
	var b strings.Builder
	missing := 0
	for i, doc := range f.Documents {
		if doc.ExtractionStatus != constants.StatusSuccess || strings.TrimSpace(doc.ExtractedText) == "" {
			missing++
			continue
		}
		name := doc.Filename
		if name == "" {
			name = fmt.Sprintf("document %d", i+1)
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "=== Document %d of %d: %s (%d pages) ===\n\n", i+1, len(f.Documents), name, doc.PageCount)
		b.WriteString(doc.ExtractedText)
	}
	return b.String(), missing
}

// Run is the per-filing analysis operation.
func (s *AnalyzeStage) Run(ctx context.Context, f *entity.Filing) Outcome {
	text, missing := AssembleText(f)
	counters := map[string]int64{"docs_missing_text": int64(missing)}

	if strings.TrimSpace(text) == "" {
		s.Logger.Info("no extracted text to analyze", "external_id", f.ExternalID)
		return Outcome{Status: constants.StatusSuccess, Skipped: true, Counters: counters}
	}

	date := ""
	if f.Date != nil {
		date = f.Date.Format("2006-01-02")
	}
	res, err := s.Service.Analyze(ctx, analyzer.Request{
		FilingID:     f.ExternalID,
		FilingDate:   date,
		Applicant:    f.Applicant,
		FilingType:   f.FilingType,
		DocumentText: text,
		NumDocuments: len(f.Documents),
		NumMissing:   missing,
	})
	if err != nil {
		return Outcome{Status: constants.StatusFailed, ErrMsg: err.Error(), Counters: counters}
	}

	if !res.Success {
		if res.ErrorKind == analyzer.ErrInsufficientText {
			s.Logger.Info("filing text below analysis minimum, skipping",
				"external_id", f.ExternalID, "detail", res.ErrorDetail)
			return Outcome{Status: constants.StatusSuccess, Skipped: true, Counters: counters}
		}
		msg := string(res.ErrorKind)
		if res.ErrorDetail != "" {
			msg = fmt.Sprintf("%s: %s", res.ErrorKind, res.ErrorDetail)
		}
		return Outcome{Status: constants.StatusFailed, ErrMsg: msg, Counters: counters}
	}

	// The database column is the record of truth; the sidecar is a
	// convenience copy and never fails the stage.
	f.AnalysisJSON = res.AnalysisJSON
	s.writeSidecar(f, res)

	counters["filings_analyzed"]++
	counters["analysis_input_tokens"] += int64(res.InputTokens)
	counters["analysis_output_tokens"] += int64(res.OutputTokens)
	return Outcome{Status: constants.StatusSuccess, Counters: counters}
}

func (s *AnalyzeStage) writeSidecar(f *entity.Filing, res analyzer.Result) {
	path := filepath.Join(FilingDir(s.FilingsDir, f), "analysis.json")
	if err := os.WriteFile(path, res.AnalysisJSON, 0o644); err != nil {
		s.Logger.Warn("failed to write analysis sidecar",
			"external_id", f.ExternalID, "path", path, "error", err)
	}
}
