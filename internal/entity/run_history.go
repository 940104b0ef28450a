package entity

import (
	"time"

	"github.com/google/uuid"
)

// RunHistory is the audit record of one pipeline invocation.
type RunHistory struct {
	ID                uuid.UUID  `json:"id"`
	StartedAt         time.Time  `json:"started_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	TotalFilingsFound int        `json:"total_filings_found"`
	NewFilings        int        `json:"new_filings"`
	ProcessedOK       int        `json:"processed_ok"`
	ProcessedFailed   int        `json:"processed_failed"`
	DurationSeconds   float64    `json:"duration_seconds,omitempty"`
}
