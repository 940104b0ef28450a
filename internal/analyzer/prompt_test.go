package analyzer

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadTemplateHashTracksContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.md")
	require.NoError(t, os.WriteFile(path, []byte("Analyze {filing_id}."), 0o644))

	tmpl, hash, err := LoadTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, "Analyze {filing_id}.", tmpl)
	assert.Len(t, hash, 12)

	// Same content, same hash.
	_, hash2, err := LoadTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, hash, hash2)

	// Edited content changes the hash.
	require.NoError(t, os.WriteFile(path, []byte("Analyze {filing_id}!"), 0o644))
	_, hash3, err := LoadTemplate(path)
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash3)
}

func TestLoadTemplateMissingFile(t *testing.T) {
	_, _, err := LoadTemplate("/nonexistent/prompt.md")
	assert.Error(t, err)
}

func TestBuildPromptFillsPlaceholders(t *testing.T) {
	tmpl := "ID={filing_id} Date={filing_date} By={applicant} Type={filing_type} " +
		"Docs={num_documents} Missing={num_missing}\n{document_text}\n{json_schema_description}"
	req := Request{
		FilingID:     "C4312",
		FilingDate:   "2026-02-09",
		Applicant:    "TransNorth Energy Ltd.",
		FilingType:   "Application",
		DocumentText: "body text",
		NumDocuments: 3,
		NumMissing:   1,
	}

	prompt := BuildPrompt(tmpl, req)

	assert.Contains(t, prompt, "ID=C4312 Date=2026-02-09 By=TransNorth Energy Ltd. Type=Application Docs=3 Missing=1")
	assert.Contains(t, prompt, "body text")
	assert.Contains(t, prompt, `"primary_type"`, "the schema description is inlined")
	assert.NotContains(t, prompt, "{filing_id}")
}

func TestBuildPromptUnknownMetadata(t *testing.T) {
	prompt := BuildPrompt("Date={filing_date} By={applicant} Type={filing_type}", Request{
		FilingID:     "C1",
		DocumentText: "text",
	})

	assert.Equal(t, "Date=Unknown By=Unknown Type=Unknown", prompt)
}
