package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/internal/analyzer"
	"github.com/filingwatch/regdocs-monitor/internal/entity"
)

// fakeAnalyzer records the last request and returns a scripted result.
type fakeAnalyzer struct {
	res     analyzer.Result
	err     error
	lastReq *analyzer.Request
}

func (a *fakeAnalyzer) Analyze(ctx context.Context, req analyzer.Request) (analyzer.Result, error) {
	a.lastReq = &req
	return a.res, a.err
}

func analyzeFiling(texts ...string) *entity.Filing {
	f := filingWithID("C300")
	f.Applicant = "Northern Gateway Pipelines"
	f.FilingType = "Application"
	f.StatusDownloaded = constants.StatusSuccess
	f.StatusExtracted = constants.StatusSuccess
	for i, txt := range texts {
		status := constants.StatusSuccess
		if txt == "" {
			status = constants.StatusFailed
		}
		f.Documents = append(f.Documents, &entity.Document{
			ID:               uuid.New(),
			FilingID:         f.ID,
			Seq:              i,
			ExtractionStatus: status,
			ExtractedText:    txt,
			PageCount:        i + 1,
		})
	}
	return f
}

func testAnalyzeStage(t *testing.T, svc Analyzer) *AnalyzeStage {
	t.Helper()
	return &AnalyzeStage{
		Service:    svc,
		FilingsDir: t.TempDir(),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestAssembleTextSectionsAndMissingCount(t *testing.T) {
	f := analyzeFiling("first body", "", "third body")

	text, missing := AssembleText(f)

	assert.Equal(t, 1, missing)
	assert.Contains(t, text, "=== Document 1 of 3: document 1 (1 pages) ===\n\nfirst body")
	assert.Contains(t, text, "=== Document 3 of 3: document 3 (3 pages) ===\n\nthird body")
	assert.NotContains(t, text, "Document 2 of 3")
}

func TestAssembleTextUsesFilename(t *testing.T) {
	f := analyzeFiling("body")
	f.Documents[0].Filename = "application.pdf"

	text, _ := AssembleText(f)

	assert.Contains(t, text, ": application.pdf (1 pages) ===")
}

func TestAnalyzeSuccessPersistsJSON(t *testing.T) {
	raw := json.RawMessage(`{"summary":"A pipeline maintenance application."}`)
	svc := &fakeAnalyzer{res: analyzer.Result{
		Success:      true,
		AnalysisJSON: raw,
		InputTokens:  1200,
		OutputTokens: 340,
	}}
	stage := testAnalyzeStage(t, svc)
	f := analyzeFiling("enough body text to analyze")

	// The sidecar write needs the filing directory to exist.
	require.NoError(t, os.MkdirAll(FilingDir(stage.FilingsDir, f), 0o755))

	out := stage.Run(context.Background(), f)

	assert.Equal(t, constants.StatusSuccess, out.Status)
	assert.False(t, out.Skipped)
	assert.Equal(t, raw, f.AnalysisJSON)
	assert.Equal(t, int64(1), out.Counters["filings_analyzed"])
	assert.Equal(t, int64(1200), out.Counters["analysis_input_tokens"])
	assert.Equal(t, int64(340), out.Counters["analysis_output_tokens"])

	require.NotNil(t, svc.lastReq)
	assert.Equal(t, "C300", svc.lastReq.FilingID)
	assert.Equal(t, "Northern Gateway Pipelines", svc.lastReq.Applicant)
	assert.Equal(t, 1, svc.lastReq.NumDocuments)
	assert.Equal(t, 0, svc.lastReq.NumMissing)

	side, err := os.ReadFile(filepath.Join(FilingDir(stage.FilingsDir, f), "analysis.json"))
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(side))
}

func TestAnalyzeNoTextIsVacuousSuccess(t *testing.T) {
	svc := &fakeAnalyzer{}
	stage := testAnalyzeStage(t, svc)
	f := analyzeFiling("", "")

	out := stage.Run(context.Background(), f)

	assert.Equal(t, constants.StatusSuccess, out.Status)
	assert.True(t, out.Skipped)
	assert.Nil(t, svc.lastReq, "the model is never invoked without text")
	assert.Equal(t, int64(2), out.Counters["docs_missing_text"])
}

func TestAnalyzeInsufficientTextIsSkip(t *testing.T) {
	svc := &fakeAnalyzer{res: analyzer.Failure(analyzer.ErrInsufficientText, "194 chars < 200 minimum")}
	stage := testAnalyzeStage(t, svc)

	out := stage.Run(context.Background(), analyzeFiling("short"))

	assert.Equal(t, constants.StatusSuccess, out.Status)
	assert.True(t, out.Skipped)
	assert.Empty(t, out.ErrMsg)
}

func TestAnalyzeFailureKindsBecomeErrMsg(t *testing.T) {
	cases := []struct {
		kind   analyzer.ErrorKind
		detail string
		want   string
	}{
		{analyzer.ErrTimeout, "", "timeout"},
		{analyzer.ErrCLI, "exit status 2", "cli_error: exit status 2"},
		{analyzer.ErrInvalidCLIJSON, "unexpected end of input", "invalid_cli_json: unexpected end of input"},
		{analyzer.ErrValidation, "missing property 'summary'", "validation_error: missing property 'summary'"},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			svc := &fakeAnalyzer{res: analyzer.Failure(tc.kind, tc.detail)}
			stage := testAnalyzeStage(t, svc)

			out := stage.Run(context.Background(), analyzeFiling("plenty of body text"))

			assert.Equal(t, constants.StatusFailed, out.Status)
			assert.Equal(t, tc.want, out.ErrMsg)
		})
	}
}

func TestAnalyzeTransportErrorFails(t *testing.T) {
	svc := &fakeAnalyzer{err: errors.New("prompt template: no such file")}
	stage := testAnalyzeStage(t, svc)

	out := stage.Run(context.Background(), analyzeFiling("plenty of body text"))

	assert.Equal(t, constants.StatusFailed, out.Status)
	assert.Contains(t, out.ErrMsg, "prompt template")
}
