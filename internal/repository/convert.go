package repository

import (
	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/gen/ent"
	"github.com/filingwatch/regdocs-monitor/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToFiling converts an ent row (with documents loaded, if any) into the
// transfer struct the orchestrators mutate.
func ToFiling(f *ent.Filing) *entity.Filing {
	out := &entity.Filing{
		ID:               f.ID,
		ExternalID:       f.ExternalID,
		Date:             f.Date,
		Applicant:        strOrEmpty(f.Applicant),
		FilingType:       strOrEmpty(f.FilingType),
		ProceedingNumber: strOrEmpty(f.ProceedingNumber),
		Title:            strOrEmpty(f.Title),
		URL:              strOrEmpty(f.URL),
		StatusScraped:    constants.StepStatus(f.StatusScraped),
		StatusDownloaded: constants.StepStatus(f.StatusDownloaded),
		StatusExtracted:  constants.StepStatus(f.StatusExtracted),
		StatusAnalyzed:   constants.StepStatus(f.StatusAnalyzed),
		StatusNotified:   constants.StepStatus(f.StatusNotified),
		ErrorMessage:     strOrEmpty(f.ErrorMessage),
		RetryCount:       f.RetryCount,
		AnalysisJSON:     f.AnalysisJSON,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
	for _, d := range f.Edges.Documents {
		out.Documents = append(out.Documents, ToDocument(d))
	}
	return out
}

// ToRunHistory converts a run audit row into its transfer struct.
func ToRunHistory(r *ent.RunHistory) *entity.RunHistory {
	return &entity.RunHistory{
		ID:                r.ID,
		StartedAt:         r.StartedAt,
		CompletedAt:       r.CompletedAt,
		TotalFilingsFound: r.TotalFilingsFound,
		NewFilings:        r.NewFilings,
		ProcessedOK:       r.ProcessedOk,
		ProcessedFailed:   r.ProcessedFailed,
		DurationSeconds:   r.DurationSeconds,
	}
}

// ToDocument converts an ent document row into its transfer struct.
func ToDocument(d *ent.Document) *entity.Document {
	return &entity.Document{
		ID:               d.ID,
		FilingID:         d.FilingID,
		Seq:              d.Seq,
		DocumentURL:      d.DocumentURL,
		Filename:         strOrEmpty(d.Filename),
		LocalPath:        strOrEmpty(d.LocalPath),
		DownloadStatus:   constants.StepStatus(d.DownloadStatus),
		FileSizeBytes:    d.FileSizeBytes,
		ContentType:      strOrEmpty(d.ContentType),
		ExtractionStatus: constants.StepStatus(d.ExtractionStatus),
		ExtractionMethod: constants.ExtractionMethod(strOrEmpty(d.ExtractionMethod)),
		ExtractedText:    strOrEmpty(d.ExtractedText),
		CharCount:        d.CharCount,
		PageCount:        d.PageCount,
		ExtractionError:  strOrEmpty(d.ExtractionError),
		CreatedAt:        d.CreatedAt,
	}
}
