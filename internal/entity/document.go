package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/filingwatch/regdocs-monitor/constants"
)

// Document represents one downloadable artifact owned by exactly one filing.
type Document struct {
	ID               uuid.UUID                  `json:"id"`
	FilingID         uuid.UUID                  `json:"filing_id"`
	Seq              int                        `json:"seq"`
	DocumentURL      string                     `json:"document_url"`
	Filename         string                     `json:"filename,omitempty"`
	LocalPath        string                     `json:"local_path,omitempty"`
	DownloadStatus   constants.StepStatus       `json:"download_status"`
	FileSizeBytes    int64                      `json:"file_size_bytes,omitempty"`
	ContentType      string                     `json:"content_type,omitempty"`
	ExtractionStatus constants.StepStatus       `json:"extraction_status"`
	ExtractionMethod constants.ExtractionMethod `json:"extraction_method,omitempty"`
	ExtractedText    string                     `json:"extracted_text,omitempty"`
	CharCount        int                        `json:"char_count,omitempty"`
	PageCount        int                        `json:"page_count,omitempty"`
	ExtractionError  string                     `json:"extraction_error,omitempty"`
	CreatedAt        time.Time                  `json:"created_at"`
}
