package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/internal/entity"
	"github.com/filingwatch/regdocs-monitor/internal/extractor"
)

// fakeExtractor returns a scripted result per path.
type fakeExtractor struct {
	results map[string]extractor.Result
	calls   []string
}

func (e *fakeExtractor) Extract(ctx context.Context, path string) extractor.Result {
	e.calls = append(e.calls, path)
	if res, ok := e.results[path]; ok {
		return res
	}
	return extractor.Result{OK: false, Method: constants.MethodNone, Err: "unscripted path"}
}

func extractFiling(t *testing.T, localPaths ...string) *entity.Filing {
	t.Helper()
	f := filingWithID("C200")
	f.StatusDownloaded = constants.StatusSuccess
	for i, p := range localPaths {
		f.Documents = append(f.Documents, &entity.Document{
			ID:             uuid.New(),
			FilingID:       f.ID,
			Seq:            i,
			DownloadStatus: constants.StatusSuccess,
			LocalPath:      p,
		})
	}
	return f
}

func testExtractStage(engine TextExtractor) *ExtractStage {
	return &ExtractStage{
		Engine: engine,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func writePDFStub(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7"), 0o644))
	return path
}

func TestExtractToleratesPartialFailure(t *testing.T) {
	dir := t.TempDir()
	good := writePDFStub(t, dir, "doc_001.pdf")
	bad := writePDFStub(t, dir, "doc_002.pdf")

	engine := &fakeExtractor{results: map[string]extractor.Result{
		good: {OK: true, Text: "recovered body text", Method: constants.MethodLayout, PageCount: 3, CharCount: 17},
		bad:  {OK: false, Method: constants.MethodNone, PageCount: 2, Err: "all extraction tiers failed"},
	}}
	stage := testExtractStage(engine)
	f := extractFiling(t, good, bad)

	out := stage.Run(context.Background(), f)

	assert.Equal(t, constants.StatusSuccess, out.Status, "one good document carries the filing")
	assert.Equal(t, int64(1), out.Counters["docs_extracted"])
	assert.Equal(t, int64(1), out.Counters["docs_failed"])
	assert.Equal(t, int64(17), out.Counters["chars_extracted"])

	assert.Equal(t, constants.StatusSuccess, f.Documents[0].ExtractionStatus)
	assert.Equal(t, constants.MethodLayout, f.Documents[0].ExtractionMethod)
	assert.Equal(t, constants.StatusFailed, f.Documents[1].ExtractionStatus)
	assert.Equal(t, constants.MethodNone, f.Documents[1].ExtractionMethod)
	assert.Contains(t, f.Documents[1].ExtractionError, "failed")
}

func TestExtractAllDocumentsFail(t *testing.T) {
	dir := t.TempDir()
	a := writePDFStub(t, dir, "doc_001.pdf")
	b := writePDFStub(t, dir, "doc_002.pdf")

	engine := &fakeExtractor{results: map[string]extractor.Result{
		a: {OK: false, Method: constants.MethodNone, Err: "encrypted"},
		b: {OK: false, Method: constants.MethodNone, Err: "garbled"},
	}}
	stage := testExtractStage(engine)

	out := stage.Run(context.Background(), extractFiling(t, a, b))

	assert.Equal(t, constants.StatusFailed, out.Status)
	assert.Contains(t, out.ErrMsg, "all 2 documents failed extraction")
}

func TestExtractSkipsUndownloadedDocuments(t *testing.T) {
	dir := t.TempDir()
	good := writePDFStub(t, dir, "doc_002.pdf")

	engine := &fakeExtractor{results: map[string]extractor.Result{
		good: {OK: true, Text: "text", Method: constants.MethodTable, PageCount: 1, CharCount: 4},
	}}
	stage := testExtractStage(engine)

	f := extractFiling(t, good)
	f.Documents = append([]*entity.Document{{
		ID:             uuid.New(),
		Seq:            0,
		DownloadStatus: constants.StatusFailed,
	}}, f.Documents...)

	out := stage.Run(context.Background(), f)

	require.Equal(t, constants.StatusSuccess, out.Status)
	assert.Equal(t, []string{good}, engine.calls)
	assert.Equal(t, constants.StepStatus(""), f.Documents[0].ExtractionStatus, "undownloaded doc untouched")
}

func TestExtractZeroEligibleIsVacuousSuccess(t *testing.T) {
	engine := &fakeExtractor{}
	stage := testExtractStage(engine)
	f := extractFiling(t) // no documents at all

	out := stage.Run(context.Background(), f)

	assert.Equal(t, constants.StatusSuccess, out.Status)
	assert.True(t, out.Skipped)
	assert.Empty(t, engine.calls)
}

func TestExtractSidecarShortCircuits(t *testing.T) {
	dir := t.TempDir()
	pdf := writePDFStub(t, dir, "doc_001.pdf")
	require.NoError(t, extractor.WriteSidecar(pdf, extractor.Result{
		OK:        true,
		Text:      "text recovered on a previous run",
		Method:    constants.MethodOCR,
		PageCount: 5,
		CharCount: 27,
	}))

	engine := &fakeExtractor{}
	stage := testExtractStage(engine)
	f := extractFiling(t, pdf)

	out := stage.Run(context.Background(), f)

	assert.Equal(t, constants.StatusSuccess, out.Status)
	assert.Empty(t, engine.calls, "cached sidecar must bypass the engine")
	assert.Equal(t, int64(1), out.Counters["docs_cached"])
	assert.Equal(t, constants.MethodOCR, f.Documents[0].ExtractionMethod)
	assert.Equal(t, 5, f.Documents[0].PageCount)
	assert.Equal(t, 27, f.Documents[0].CharCount)
	assert.Equal(t, "text recovered on a previous run", f.Documents[0].ExtractedText)
}

func TestExtractSidecarMissingCharsFallsBackToMeaningfulCount(t *testing.T) {
	dir := t.TempDir()
	pdf := writePDFStub(t, dir, "doc_001.pdf")
	// Older sidecars predate the chars field. The fallback must count
	// content characters the same way a fresh extraction would, so the
	// markup-heavy body below counts 8, not its rune length.
	body := "### a-b|c #d ___ efgh"
	require.NoError(t, extractor.WriteSidecar(pdf, extractor.Result{
		OK:        true,
		Text:      body,
		Method:    constants.MethodLayout,
		PageCount: 1,
	}))

	engine := &fakeExtractor{}
	stage := testExtractStage(engine)
	f := extractFiling(t, pdf)

	out := stage.Run(context.Background(), f)

	assert.Equal(t, constants.StatusSuccess, out.Status)
	assert.Empty(t, engine.calls)
	assert.Equal(t, extractor.MeaningfulCharCount(body), f.Documents[0].CharCount)
}

func TestExtractWritesSidecarOnSuccess(t *testing.T) {
	dir := t.TempDir()
	pdf := writePDFStub(t, dir, "doc_001.pdf")

	engine := &fakeExtractor{results: map[string]extractor.Result{
		pdf: {OK: true, Text: "fresh text", Method: constants.MethodLayout, PageCount: 2, CharCount: 9},
	}}
	stage := testExtractStage(engine)

	out := stage.Run(context.Background(), extractFiling(t, pdf))

	require.Equal(t, constants.StatusSuccess, out.Status)
	meta, body, err := extractor.ReadSidecar(pdf)
	require.NoError(t, err)
	assert.Equal(t, constants.MethodLayout, meta.Method)
	assert.Equal(t, "fresh text", body)
}
