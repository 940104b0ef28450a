package extractor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingwatch/regdocs-monitor/constants"
)

func TestSidecarPath(t *testing.T) {
	assert.Equal(t, "/data/f1/documents/doc_001.md", SidecarPath("/data/f1/documents/doc_001.pdf"))
}

func TestSidecarRoundTrip(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "doc_001.pdf")

	res := Result{
		OK:        true,
		Text:      "Section 52 application for the北 pipeline.\n\nSecond paragraph.",
		Method:    constants.MethodLayout,
		PageCount: 12,
		CharCount: 48,
	}
	require.NoError(t, WriteSidecar(pdf, res))

	meta, body, err := ReadSidecar(pdf)
	require.NoError(t, err)
	assert.Equal(t, "doc_001.pdf", meta.Source)
	assert.Equal(t, constants.MethodLayout, meta.Method)
	assert.Equal(t, 12, meta.Pages)
	assert.Equal(t, 48, meta.Chars)
	assert.False(t, meta.ExtractedAt.IsZero())
	assert.Equal(t, res.Text, strings.TrimSuffix(body, "\n"))
	assert.Contains(t, body, "Second paragraph.")
}

func TestShouldExtract(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "doc_001.pdf")

	assert.True(t, ShouldExtract(pdf), "no sidecar yet")

	require.NoError(t, WriteSidecar(pdf, Result{Text: "text", Method: constants.MethodTable, PageCount: 1, CharCount: 4}))
	assert.False(t, ShouldExtract(pdf), "non-empty sidecar marks the document done")

	// An empty sidecar does not count as done.
	require.NoError(t, os.WriteFile(SidecarPath(pdf), nil, 0o644))
	assert.True(t, ShouldExtract(pdf))
}
