package downloader

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingwatch/regdocs-monitor/internal/common"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testService(maxAttempts int, maxBytes int64) *Service {
	return NewService(common.DownloadConfig{
		Timeout:         5 * time.Second,
		MaxPDFSizeBytes: maxBytes,
		MaxAttempts:     maxAttempts,
		BaseDelay:       time.Millisecond,
		MaxDelay:        5 * time.Millisecond,
	}, testLogger())
}

func destFor(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "documents", "doc_001.pdf")
}

func TestDownloadSuccess(t *testing.T) {
	body := "%PDF-1.7\nsome pdf bytes"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "regdocs-monitor/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/pdf")
		io.WriteString(w, body)
	}))
	defer srv.Close()

	dest := destFor(t)
	info, err := testService(3, 1<<20).Download(context.Background(), srv.URL, dest)

	require.NoError(t, err)
	assert.Equal(t, int64(len(body)), info.SizeBytes)
	assert.Equal(t, "application/pdf", info.ContentType)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
	_, err = os.Stat(dest + ".tmp")
	assert.True(t, os.IsNotExist(err), "no temp file left behind")
}

func TestDownloadRetriesTransientServerError(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			http.Error(w, "try later", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		io.WriteString(w, "%PDF-1.7")
	}))
	defer srv.Close()

	info, err := testService(3, 1<<20).Download(context.Background(), srv.URL, destFor(t))

	require.NoError(t, err)
	assert.Equal(t, int32(3), hits.Load())
	assert.Equal(t, int64(8), info.SizeBytes)
}

func TestDownloadExhaustsRetries(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "overloaded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testService(3, 1<<20).Download(context.Background(), srv.URL, destFor(t))

	require.Error(t, err)
	assert.Equal(t, int32(3), hits.Load())
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DOWNLOAD_EXHAUSTED", appErr.Code)
}

func TestDownloadNotFoundIsPermanent(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := testService(3, 1<<20).Download(context.Background(), srv.URL, destFor(t))

	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load(), "a 404 must not be retried")
	assert.Contains(t, err.Error(), "404")
}

func TestDownloadRejectsHTML(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, "<html><body>login required</body></html>")
	}))
	defer srv.Close()

	dest := destFor(t)
	_, err := testService(3, 1<<20).Download(context.Background(), srv.URL, dest)

	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load(), "an HTML response must not be retried")
	assert.Contains(t, err.Error(), "text/html")
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDownloadRejectsOversizeBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		io.WriteString(w, strings.Repeat("x", 2048))
	}))
	defer srv.Close()

	dest := destFor(t)
	_, err := testService(1, 1024).Download(context.Background(), srv.URL, dest)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "size limit")
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(dest + ".tmp")
	assert.True(t, os.IsNotExist(statErr))
}

func TestWaitHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Wait(ctx, time.Second, 2*time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaitZeroDelayReturnsImmediately(t *testing.T) {
	start := time.Now()
	require.NoError(t, Wait(context.Background(), 0, 0))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestBackoffDelayGrowsAndCaps(t *testing.T) {
	base := 100 * time.Millisecond
	max := time.Second

	d0 := backoffDelay(0, base, max)
	assert.GreaterOrEqual(t, d0, base)
	assert.LessOrEqual(t, d0, max)

	d5 := backoffDelay(5, base, max)
	assert.Equal(t, max, d5, "deep attempts hit the cap")
}
