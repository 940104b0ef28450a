package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/filingwatch/regdocs-monitor/internal/common"
)

const userAgent = "regdocs-monitor/1.0"

// FileInfo describes a completed download.
type FileInfo struct {
	SizeBytes   int64
	ContentType string
}

// Service fetches PDFs over HTTP with bounded retries. Only transient
// failures are retried; a server handing back HTML or an oversized body
// fails immediately.
type Service struct {
	cfg    common.DownloadConfig
	client *http.Client
	logger *slog.Logger
}

func NewService(cfg common.DownloadConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Service{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// transientError marks a failure worth another attempt.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// Download fetches url into destPath. The body streams into a temporary
// file which is renamed into place only after a fully validated read, so a
// partial transfer never leaves a usable-looking file behind.
func (s *Service) Download(ctx context.Context, url, destPath string) (*FileInfo, error) {
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < s.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := backoffDelay(attempt-1, s.cfg.BaseDelay, s.cfg.MaxDelay)
			s.logger.Info("retrying download",
				"url", url, "attempt", attempt+1, "delay", delay.String())
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		info, err := s.fetch(ctx, url, destPath)
		if err == nil {
			return info, nil
		}
		lastErr = err

		var te *transientError
		if !errors.As(err, &te) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, common.NewAppError("DOWNLOAD_EXHAUSTED",
		fmt.Sprintf("giving up after %d attempts: %v", s.cfg.MaxAttempts, lastErr), lastErr)
}

func (s *Service) fetch(ctx context.Context, url, destPath string) (*FileInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/pdf,*/*")

	resp, err := s.client.Do(req)
	if err != nil {
		// Network-level failures are worth another attempt.
		return nil, &transientError{err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, &transientError{fmt.Errorf("server returned %s", resp.Status)}
	default:
		return nil, fmt.Errorf("server returned %s", resp.Status)
	}

	ct := resp.Header.Get("Content-Type")
	if strings.Contains(strings.ToLower(ct), "text/html") {
		return nil, fmt.Errorf("expected a PDF but got content type %q", ct)
	}
	if resp.ContentLength > 0 && resp.ContentLength > s.cfg.MaxPDFSizeBytes {
		return nil, fmt.Errorf("declared size %d exceeds limit %d", resp.ContentLength, s.cfg.MaxPDFSizeBytes)
	}

	tmp := destPath + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return nil, err
	}

	written, err := io.Copy(f, io.LimitReader(resp.Body, s.cfg.MaxPDFSizeBytes+1))
	cerr := f.Close()
	if err != nil {
		os.Remove(tmp)
		return nil, &transientError{fmt.Errorf("body read failed after %d bytes: %w", written, err)}
	}
	if cerr != nil {
		os.Remove(tmp)
		return nil, cerr
	}
	if written > s.cfg.MaxPDFSizeBytes {
		os.Remove(tmp)
		return nil, fmt.Errorf("body exceeds size limit %d", s.cfg.MaxPDFSizeBytes)
	}

	if err := os.Rename(tmp, destPath); err != nil {
		os.Remove(tmp)
		return nil, err
	}

	s.logger.Debug("downloaded", "url", url, "path", destPath, "bytes", written)
	return &FileInfo{SizeBytes: written, ContentType: ct}, nil
}
