package analyzer

import (
	"encoding/json"
	"time"
)

// Request carries one filing's assembled text into analysis.
type Request struct {
	FilingID     string
	FilingDate   string
	Applicant    string
	FilingType   string
	DocumentText string
	NumDocuments int
	NumMissing   int
}

// ErrorKind classifies analysis failures so callers can tell a retryable
// transport problem from a permanently short filing.
type ErrorKind string

const (
	ErrInsufficientText ErrorKind = "insufficient_text"
	ErrTimeout          ErrorKind = "timeout"
	ErrCLI              ErrorKind = "cli_error"
	ErrInvalidCLIJSON   ErrorKind = "invalid_cli_json"
	ErrValidation       ErrorKind = "validation_error"
)

// Result is the outcome of analyzing one filing. Success carries the
// validated analysis JSON; failure carries the kind and detail.
type Result struct {
	Success        bool
	AnalysisJSON   json.RawMessage
	RawResponse    string
	Model          string
	PromptVersion  string
	ProcessingTime time.Duration
	CostUSD        float64
	InputTokens    int
	OutputTokens   int
	ErrorKind      ErrorKind
	ErrorDetail    string
	Timestamp      time.Time
}

// Failure builds a failed Result with the given classification.
func Failure(kind ErrorKind, detail string) Result {
	return Result{Success: false, ErrorKind: kind, ErrorDetail: detail}
}

// cliEnvelope is the outer JSON the CLI prints in single-turn JSON mode.
type cliEnvelope struct {
	IsError      bool    `json:"is_error"`
	Result       string  `json:"result"`
	TotalCostUSD float64 `json:"total_cost_usd"`
	Usage        struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}
