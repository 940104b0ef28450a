package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/internal/downloader"
	"github.com/filingwatch/regdocs-monitor/internal/entity"
)

// fakeFetcher writes a small file per successful URL and fails on demand.
type fakeFetcher struct {
	failOn map[string]bool
	calls  []string
}

func (f *fakeFetcher) Download(ctx context.Context, url, destPath string) (*downloader.FileInfo, error) {
	f.calls = append(f.calls, url)
	if f.failOn[url] {
		return nil, errors.New("503 from upstream")
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(destPath, []byte("%PDF-1.7 test"), 0o644); err != nil {
		return nil, err
	}
	return &downloader.FileInfo{SizeBytes: 13, ContentType: "application/pdf"}, nil
}

func downloadFiling(docURLs ...string) *entity.Filing {
	f := filingWithID("C100")
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	f.Date = &date
	for i, u := range docURLs {
		f.Documents = append(f.Documents, &entity.Document{
			ID:             uuid.New(),
			FilingID:       f.ID,
			Seq:            i,
			DocumentURL:    u,
			DownloadStatus: constants.StatusPending,
		})
	}
	return f
}

func testDownloadStage(t *testing.T, fetcher Fetcher) (*DownloadStage, string) {
	t.Helper()
	root := t.TempDir()
	stage := &DownloadStage{
		Fetcher:    fetcher,
		FilingsDir: root,
		Delay:      func(ctx context.Context, min, max time.Duration) error { return nil },
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return stage, root
}

func TestDownloadAllDocuments(t *testing.T) {
	fetcher := &fakeFetcher{}
	stage, root := testDownloadStage(t, fetcher)
	f := downloadFiling("https://example.org/a.pdf", "https://example.org/b.pdf")

	out := stage.Run(context.Background(), f)

	assert.Equal(t, constants.StatusSuccess, out.Status)
	assert.False(t, out.Skipped)
	assert.Equal(t, int64(2), out.Counters["pdfs_downloaded"])
	assert.Equal(t, int64(26), out.Counters["bytes_downloaded"])

	dir := FilingDir(root, f)
	assert.Equal(t, filepath.Join(root, "2026-03-14_Filing-C100"), dir)
	for i, doc := range f.Documents {
		assert.Equal(t, constants.StatusSuccess, doc.DownloadStatus)
		assert.Equal(t, DocumentPath(dir, i), doc.LocalPath)
		_, err := os.Stat(doc.LocalPath)
		assert.NoError(t, err)
	}
}

func TestDownloadAllOrNothing(t *testing.T) {
	fetcher := &fakeFetcher{failOn: map[string]bool{"https://example.org/b.pdf": true}}
	stage, root := testDownloadStage(t, fetcher)
	f := downloadFiling(
		"https://example.org/a.pdf",
		"https://example.org/b.pdf",
		"https://example.org/c.pdf",
	)

	out := stage.Run(context.Background(), f)

	assert.Equal(t, constants.StatusFailed, out.Status)
	assert.Contains(t, out.ErrMsg, "document 2 of 3")

	// The third document was never attempted.
	assert.Equal(t, []string{"https://example.org/a.pdf", "https://example.org/b.pdf"}, fetcher.calls)

	// The first document's partial success was discarded on disk and in memory.
	_, err := os.Stat(FilingDir(root, f))
	assert.True(t, os.IsNotExist(err), "filing directory must be removed")
	for _, doc := range f.Documents {
		assert.Equal(t, constants.StatusFailed, doc.DownloadStatus)
		assert.Empty(t, doc.LocalPath)
		assert.Zero(t, doc.FileSizeBytes)
	}
}

func TestDownloadPolitenessDelayBetweenDocuments(t *testing.T) {
	fetcher := &fakeFetcher{}
	stage, _ := testDownloadStage(t, fetcher)
	delays := 0
	stage.Delay = func(ctx context.Context, min, max time.Duration) error {
		delays++
		return nil
	}
	f := downloadFiling("https://example.org/a.pdf", "https://example.org/b.pdf", "https://example.org/c.pdf")

	out := stage.Run(context.Background(), f)

	require.Equal(t, constants.StatusSuccess, out.Status)
	assert.Equal(t, 2, delays, "delay between documents, never after the last")
}

func TestDownloadZeroDocumentsIsVacuousSuccess(t *testing.T) {
	fetcher := &fakeFetcher{}
	stage, _ := testDownloadStage(t, fetcher)
	f := downloadFiling()

	out := stage.Run(context.Background(), f)

	assert.Equal(t, constants.StatusSuccess, out.Status)
	assert.True(t, out.Skipped)
	assert.Empty(t, fetcher.calls)
}

func TestFilingDirUnknownDate(t *testing.T) {
	f := filingWithID("C7")
	assert.Equal(t, filepath.Join("/data", "unknown-date_Filing-C7"), FilingDir("/data", f))
}
