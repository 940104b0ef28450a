package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/internal/entity"
	"github.com/filingwatch/regdocs-monitor/internal/extractor"
)

// TextExtractor is the single-document extraction primitive.
type TextExtractor interface {
	Extract(ctx context.Context, path string) extractor.Result
}

// ExtractStage pulls text out of a filing's downloaded PDFs. One bad
// document does not fail the filing: the stage succeeds when at least one
// document yields gated text.
type ExtractStage struct {
	Engine TextExtractor
	Logger *slog.Logger
}

func NewExtractStage(engine TextExtractor, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{Engine: engine, Logger: logger}
}

// Run is the per-filing extraction operation.
func (s *ExtractStage) Run(ctx context.Context, f *entity.Filing) Outcome {
	var eligible []*entity.Document
	for _, doc := range f.Documents {
		if doc.DownloadStatus == constants.StatusSuccess && doc.LocalPath != "" {
			eligible = append(eligible, doc)
		}
	}
	if len(eligible) == 0 {
		s.Logger.Info("no downloaded documents to extract", "external_id", f.ExternalID)
		return Outcome{Status: constants.StatusSuccess, Skipped: true}
	}

	counters := map[string]int64{}
	succeeded := 0

	for _, doc := range eligible {
		// A sidecar from an earlier run means this document is done.
		if !extractor.ShouldExtract(doc.LocalPath) {
			meta, body, err := extractor.ReadSidecar(doc.LocalPath)
			if err != nil {
				s.Logger.Warn("unreadable sidecar, re-extracting",
					"external_id", f.ExternalID, "path", doc.LocalPath, "error", err)
			} else {
				doc.ExtractionStatus = constants.StatusSuccess
				doc.ExtractionMethod = meta.Method
				doc.ExtractedText = body
				doc.PageCount = meta.Pages
				doc.CharCount = meta.Chars
				if doc.CharCount == 0 {
					doc.CharCount = extractor.MeaningfulCharCount(body)
				}
				counters["docs_cached"]++
				succeeded++
				continue
			}
		}

		res := s.Engine.Extract(ctx, doc.LocalPath)
		if !res.OK {
			s.Logger.Warn("document extraction failed",
				"external_id", f.ExternalID, "seq", doc.Seq, "reason", res.Err)
			doc.ExtractionStatus = constants.StatusFailed
			doc.ExtractionMethod = constants.MethodNone
			doc.ExtractionError = res.Err
			doc.PageCount = res.PageCount
			counters["docs_failed"]++
			continue
		}

		doc.ExtractionStatus = constants.StatusSuccess
		doc.ExtractionMethod = res.Method
		doc.ExtractedText = res.Text
		doc.CharCount = res.CharCount
		doc.PageCount = res.PageCount
		doc.ExtractionError = ""
		counters["docs_extracted"]++
		counters["chars_extracted"] += int64(res.CharCount)
		succeeded++

		if err := extractor.WriteSidecar(doc.LocalPath, res); err != nil {
			s.Logger.Warn("failed to write sidecar",
				"external_id", f.ExternalID, "path", doc.LocalPath, "error", err)
		}
	}

	if succeeded == 0 {
		return Outcome{
			Status:   constants.StatusFailed,
			ErrMsg:   fmt.Sprintf("all %d documents failed extraction", len(eligible)),
			Counters: counters,
		}
	}
	return Outcome{Status: constants.StatusSuccess, Counters: counters}
}
