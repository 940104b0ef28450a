package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/filingwatch/regdocs-monitor/constants"
)

// Filing represents one regulatory submission for data transfer between
// layers. Documents are loaded in stored order when the filing comes from an
// eligibility query.
type Filing struct {
	ID               uuid.UUID            `json:"id"`
	ExternalID       string               `json:"external_id"`
	Date             *time.Time           `json:"date,omitempty"`
	Applicant        string               `json:"applicant,omitempty"`
	FilingType       string               `json:"filing_type,omitempty"`
	ProceedingNumber string               `json:"proceeding_number,omitempty"`
	Title            string               `json:"title,omitempty"`
	URL              string               `json:"url,omitempty"`
	StatusScraped    constants.StepStatus `json:"status_scraped"`
	StatusDownloaded constants.StepStatus `json:"status_downloaded"`
	StatusExtracted  constants.StepStatus `json:"status_extracted"`
	StatusAnalyzed   constants.StepStatus `json:"status_analyzed"`
	StatusNotified   constants.StepStatus `json:"status_notified"`
	ErrorMessage     string               `json:"error_message,omitempty"`
	RetryCount       int                  `json:"retry_count"`
	AnalysisJSON     json.RawMessage      `json:"analysis_json,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`

	Documents []*Document `json:"documents,omitempty"`
}

// StageStatus returns the status of the given stage, or false for an
// unrecognized stage name.
func (f *Filing) StageStatus(stage constants.Stage) (constants.StepStatus, bool) {
	switch stage {
	case constants.StageScraped:
		return f.StatusScraped, true
	case constants.StageDownloaded:
		return f.StatusDownloaded, true
	case constants.StageExtracted:
		return f.StatusExtracted, true
	case constants.StageAnalyzed:
		return f.StatusAnalyzed, true
	case constants.StageNotified:
		return f.StatusNotified, true
	}
	return "", false
}

// SetStageStatus sets the status of the given stage in memory. It returns
// false for an unrecognized stage name.
func (f *Filing) SetStageStatus(stage constants.Stage, status constants.StepStatus) bool {
	switch stage {
	case constants.StageScraped:
		f.StatusScraped = status
	case constants.StageDownloaded:
		f.StatusDownloaded = status
	case constants.StageExtracted:
		f.StatusExtracted = status
	case constants.StageAnalyzed:
		f.StatusAnalyzed = status
	case constants.StageNotified:
		f.StatusNotified = status
	default:
		return false
	}
	return true
}
