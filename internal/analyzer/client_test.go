package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingwatch/regdocs-monitor/internal/common"
)

const validAnalysis = `{
  "summary": "Application to operate a compressor station through 2027.",
  "entities": [
    {"name": "TransNorth Energy Ltd.", "type": "company", "role": "applicant"},
    {"name": "Station 4B", "type": "facility", "role": null}
  ],
  "relationships": [
    {"subject": "TransNorth Energy Ltd.", "predicate": "operates", "object": "Station 4B", "context": null}
  ],
  "classification": {
    "primary_type": "Application",
    "tags": ["compressor", "operations"],
    "confidence": 88,
    "justification": "The filing requests authorization to operate."
  },
  "key_facts": ["Operating term ends 2027-12-31"]
}`

// stubCommandRunner returns a scripted CLI interaction.
type stubCommandRunner struct {
	stdout string
	stderr string
	err    error

	calls     int
	lastStdin string
	lastArgs  []string
}

func (r *stubCommandRunner) RunWithInput(ctx context.Context, stdin, name string, args ...string) ([]byte, []byte, error) {
	r.calls++
	r.lastStdin = stdin
	r.lastArgs = append([]string{name}, args...)
	return []byte(r.stdout), []byte(r.stderr), r.err
}

func envelope(t *testing.T, isError bool, result string) string {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"is_error":       isError,
		"result":         result,
		"total_cost_usd": 0.0412,
		"usage":          map[string]any{"input_tokens": 1500, "output_tokens": 420},
	})
	require.NoError(t, err)
	return string(b)
}

func writeTemplate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompt.md")
	tmpl := "Filing {filing_id} by {applicant} on {filing_date}.\n\n{document_text}\n\n{json_schema_description}\n"
	require.NoError(t, os.WriteFile(path, []byte(tmpl), 0o644))
	return path
}

func testService(t *testing.T, runner CommandRunner) *Service {
	t.Helper()
	svc := NewService(common.AnalysisConfig{
		Command:       "claude",
		Model:         "sonnet",
		Timeout:       30 * time.Second,
		MinTextLength: 20,
		TemplatePath:  writeTemplate(t),
	}, testLogger())
	svc.runner = runner
	return svc
}

func analysisRequest() Request {
	return Request{
		FilingID:     "C4312",
		FilingDate:   "2026-02-09",
		Applicant:    "TransNorth Energy Ltd.",
		FilingType:   "Application",
		DocumentText: "A long enough body of extracted filing text for analysis.",
		NumDocuments: 2,
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	runner := &stubCommandRunner{stdout: envelope(t, false, validAnalysis)}
	svc := testService(t, runner)

	res, err := svc.Analyze(context.Background(), analysisRequest())

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.JSONEq(t, validAnalysis, string(res.AnalysisJSON))
	assert.InDelta(t, 0.0412, res.CostUSD, 1e-9)
	assert.Equal(t, 1500, res.InputTokens)
	assert.Equal(t, 420, res.OutputTokens)
	assert.Len(t, res.PromptVersion, 12)

	assert.Equal(t, []string{"claude", "-p", "--output-format", "json", "--model", "sonnet", "--max-turns", "1"}, runner.lastArgs)
	assert.Contains(t, runner.lastStdin, "Filing C4312 by TransNorth Energy Ltd.")
	assert.Contains(t, runner.lastStdin, "extracted filing text")
}

func TestAnalyzeStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validAnalysis + "\n```"
	runner := &stubCommandRunner{stdout: envelope(t, false, fenced)}
	svc := testService(t, runner)

	res, err := svc.Analyze(context.Background(), analysisRequest())

	require.NoError(t, err)
	require.True(t, res.Success)
	assert.JSONEq(t, validAnalysis, string(res.AnalysisJSON))
}

func TestAnalyzeShortTextSkipsCLI(t *testing.T) {
	runner := &stubCommandRunner{}
	svc := testService(t, runner)
	req := analysisRequest()
	req.DocumentText = "too short"

	res, err := svc.Analyze(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, ErrInsufficientText, res.ErrorKind)
	assert.Zero(t, runner.calls, "the CLI is never launched for short text")
}

func TestAnalyzeCLIError(t *testing.T) {
	runner := &stubCommandRunner{err: errors.New("exit status 2"), stderr: "model unavailable"}
	svc := testService(t, runner)

	res, err := svc.Analyze(context.Background(), analysisRequest())

	require.NoError(t, err)
	assert.Equal(t, ErrCLI, res.ErrorKind)
	assert.Contains(t, res.ErrorDetail, "model unavailable")
}

func TestAnalyzeEnvelopeError(t *testing.T) {
	runner := &stubCommandRunner{stdout: envelope(t, true, "credit balance too low")}
	svc := testService(t, runner)

	res, err := svc.Analyze(context.Background(), analysisRequest())

	require.NoError(t, err)
	assert.Equal(t, ErrCLI, res.ErrorKind)
	assert.Equal(t, "credit balance too low", res.ErrorDetail)
}

func TestAnalyzeInvalidEnvelopeJSON(t *testing.T) {
	runner := &stubCommandRunner{stdout: "not json at all"}
	svc := testService(t, runner)

	res, err := svc.Analyze(context.Background(), analysisRequest())

	require.NoError(t, err)
	assert.Equal(t, ErrInvalidCLIJSON, res.ErrorKind)
}

func TestAnalyzeSchemaValidationFailure(t *testing.T) {
	runner := &stubCommandRunner{stdout: envelope(t, false, `{"summary": "missing the rest"}`)}
	svc := testService(t, runner)

	res, err := svc.Analyze(context.Background(), analysisRequest())

	require.NoError(t, err)
	assert.Equal(t, ErrValidation, res.ErrorKind)
	assert.Equal(t, `{"summary": "missing the rest"}`, res.RawResponse)
	assert.Empty(t, res.AnalysisJSON, "invalid output is never persisted")
}

func TestAnalyzeMissingTemplateIsError(t *testing.T) {
	svc := NewService(common.AnalysisConfig{
		MinTextLength: 20,
		TemplatePath:  "/nonexistent/prompt.md",
	}, testLogger())
	svc.runner = &stubCommandRunner{}

	_, err := svc.Analyze(context.Background(), analysisRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt template")
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("  {\"a\":1}  "))
}
