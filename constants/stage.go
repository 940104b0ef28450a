package constants

// Stage is one named step in the filing lifecycle. Each stage carries its own
// status column on the filings table so the pipeline can resume mid-way.
type Stage string

// Stable values (stored as column suffixes and in logs).
const (
	StageScraped    Stage = "scraped"
	StageDownloaded Stage = "downloaded"
	StageExtracted  Stage = "extracted"
	StageAnalyzed   Stage = "analyzed"
	StageNotified   Stage = "notified"
)

// Stages lists every pipeline stage in execution order.
var Stages = []Stage{
	StageScraped,
	StageDownloaded,
	StageExtracted,
	StageAnalyzed,
	StageNotified,
}

// Valid reports whether s is one of the five recognized stage names.
func (s Stage) Valid() bool {
	switch s {
	case StageScraped, StageDownloaded, StageExtracted, StageAnalyzed, StageNotified:
		return true
	}
	return false
}

// Predecessor returns the stage that must be "success" before s may run.
// ok is false for StageScraped, which has no prerequisite.
func (s Stage) Predecessor() (Stage, bool) {
	switch s {
	case StageDownloaded:
		return StageScraped, true
	case StageExtracted:
		return StageDownloaded, true
	case StageAnalyzed:
		return StageExtracted, true
	case StageNotified:
		return StageAnalyzed, true
	}
	return "", false
}

// StepStatus is the canonical per-stage status for rows in filings.
type StepStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending StepStatus = "pending"
	StatusSuccess StepStatus = "success"
	StatusFailed  StepStatus = "failed"
)

// StepStatuses holds the allowed status strings for schema validation.
var StepStatuses = []string{
	string(StatusPending),
	string(StatusSuccess),
	string(StatusFailed),
}
