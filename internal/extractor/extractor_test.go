package extractor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/internal/common"
)

type stubInspector struct {
	info PDFInfo
	err  error
}

func (s stubInspector) Inspect(string) (PDFInfo, error) { return s.info, s.err }

// stubRunner scripts responses per command name.
type stubRunner struct {
	calls     []string
	pdftotext map[string]string // mode flag -> stdout; missing mode means error
	ocrText   string
	ocrErr    error
}

func (s *stubRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name+" "+strings.Join(args, " "))
	switch {
	case strings.Contains(name, "pdftotext"):
		mode := args[0]
		out, ok := s.pdftotext[mode]
		if !ok {
			return nil, []byte("syntax error"), errors.New("exit status 1")
		}
		return []byte(out), nil, nil
	case strings.Contains(name, "pdftoppm"):
		// Rendering happens into a temp dir the test cannot predict, so the
		// OCR path is scripted at the tesseract step via globbing failure.
		return nil, nil, errors.New("exit status 1")
	}
	return nil, nil, errors.New("unexpected command: " + name)
}

func testEngine(runner Runner, insp Inspector) *Engine {
	e := NewEngine(common.ExtractionConfig{
		MaxPagesForExtraction: 500,
		MaxPagesForOCR:        50,
		MinCharsPerPage:       50,
		MinCharsPerPageOCR:    25,
		GarbleRatioThreshold:  0.05,
		OCRGarbleRatioThreshold: 0.10,
	}, nil)
	e.runner = runner
	e.inspector = insp
	return e
}

func goodText(t *testing.T, pages int) string {
	t.Helper()
	return buildMeaningfulText(t, pages*50+100)
}

func TestExtractFirstTierWins(t *testing.T) {
	runner := &stubRunner{pdftotext: map[string]string{
		"-layout": goodText(t, 3),
		"-table":  goodText(t, 3),
	}}
	e := testEngine(runner, stubInspector{info: PDFInfo{PageCount: 3}})

	res := e.Extract(context.Background(), "/tmp/doc.pdf")
	require.True(t, res.OK, res.Err)
	assert.Equal(t, constants.MethodLayout, res.Method)
	assert.Equal(t, 3, res.PageCount)
	assert.Positive(t, res.CharCount)
	// Only the first tier ran.
	require.Len(t, runner.calls, 1)
	assert.Contains(t, runner.calls[0], "-layout")
}

func TestExtractFallsBackToSecondTier(t *testing.T) {
	runner := &stubRunner{pdftotext: map[string]string{
		"-layout": "too short",
		"-table":  goodText(t, 2),
	}}
	e := testEngine(runner, stubInspector{info: PDFInfo{PageCount: 2}})

	res := e.Extract(context.Background(), "/tmp/doc.pdf")
	require.True(t, res.OK, res.Err)
	assert.Equal(t, constants.MethodTable, res.Method)
	require.Len(t, runner.calls, 2)
}

func TestExtractEncrypted(t *testing.T) {
	runner := &stubRunner{}
	e := testEngine(runner, stubInspector{info: PDFInfo{Encrypted: true}})

	res := e.Extract(context.Background(), "/tmp/doc.pdf")
	assert.False(t, res.OK)
	assert.Equal(t, constants.MethodNone, res.Method)
	assert.Contains(t, res.Err, "encrypted")
	assert.Empty(t, runner.calls, "no tier should run for an encrypted PDF")
}

func TestExtractCannotOpen(t *testing.T) {
	e := testEngine(&stubRunner{}, stubInspector{err: errors.New("not a pdf")})

	res := e.Extract(context.Background(), "/tmp/doc.pdf")
	assert.False(t, res.OK)
	assert.Contains(t, res.Err, "cannot open PDF")
}

func TestExtractTooManyPages(t *testing.T) {
	runner := &stubRunner{}
	e := testEngine(runner, stubInspector{info: PDFInfo{PageCount: 501}})

	res := e.Extract(context.Background(), "/tmp/doc.pdf")
	assert.False(t, res.OK)
	assert.Contains(t, res.Err, "too many pages")
	assert.Equal(t, 501, res.PageCount)
	assert.Empty(t, runner.calls)
}

func TestExtractOCRSkippedOverPageLimit(t *testing.T) {
	// Both text tiers fail; OCR is out of reach at 51 pages.
	runner := &stubRunner{pdftotext: map[string]string{}}
	e := testEngine(runner, stubInspector{info: PDFInfo{PageCount: 51}})

	res := e.Extract(context.Background(), "/tmp/doc.pdf")
	assert.False(t, res.OK)
	assert.Equal(t, constants.MethodNone, res.Method)
	assert.Contains(t, res.Err, "all extraction tiers failed")
	assert.Contains(t, res.Err, "exceeds ocr limit")
	// pdftoppm never launched
	for _, c := range runner.calls {
		assert.NotContains(t, c, "pdftoppm")
	}
}

func TestExtractAllTiersFail(t *testing.T) {
	runner := &stubRunner{pdftotext: map[string]string{}}
	e := testEngine(runner, stubInspector{info: PDFInfo{PageCount: 2}})

	res := e.Extract(context.Background(), "/tmp/doc.pdf")
	assert.False(t, res.OK)
	assert.Equal(t, constants.MethodNone, res.Method)
	assert.Contains(t, res.Err, string(constants.MethodLayout))
	assert.Contains(t, res.Err, string(constants.MethodTable))
	assert.Contains(t, res.Err, string(constants.MethodOCR))
}
