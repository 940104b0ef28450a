package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/internal/common"
	"github.com/filingwatch/regdocs-monitor/internal/downloader"
	"github.com/filingwatch/regdocs-monitor/internal/entity"
)

// Fetcher is the single-file download primitive the stage drives.
type Fetcher interface {
	Download(ctx context.Context, url, destPath string) (*downloader.FileInfo, error)
}

// Delayer inserts the politeness pause between document fetches.
type Delayer func(ctx context.Context, min, max time.Duration) error

// DownloadStage fetches every PDF of a filing, all or nothing: one failed
// document discards the filing's entire directory and resets every document.
type DownloadStage struct {
	Fetcher    Fetcher
	FilingsDir string
	DelayMin   time.Duration
	DelayMax   time.Duration
	Delay      Delayer
	Logger     *slog.Logger
}

func NewDownloadStage(fetcher Fetcher, cfg common.PipelineConfig, logger *slog.Logger) *DownloadStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &DownloadStage{
		Fetcher:    fetcher,
		FilingsDir: cfg.FilingsDir,
		DelayMin:   cfg.DelayMin,
		DelayMax:   cfg.DelayMax,
		Delay:      downloader.Wait,
		Logger:     logger,
	}
}

// FilingDir returns the on-disk directory for a filing, named by date and
// external id so runs are easy to browse.
func FilingDir(root string, f *entity.Filing) string {
	date := "unknown-date"
	if f.Date != nil {
		date = f.Date.Format("2006-01-02")
	}
	return filepath.Join(root, fmt.Sprintf("%s_Filing-%s", date, f.ExternalID))
}

// DocumentPath returns the destination path for the i-th document (zero
// based) of a filing.
func DocumentPath(filingDir string, i int) string {
	return filepath.Join(filingDir, "documents", fmt.Sprintf("doc_%03d.pdf", i+1))
}

// Run is the per-filing download operation.
func (s *DownloadStage) Run(ctx context.Context, f *entity.Filing) Outcome {
	if len(f.Documents) == 0 {
		s.Logger.Info("no documents to download", "external_id", f.ExternalID)
		return Outcome{Status: constants.StatusSuccess, Skipped: true}
	}

	dir := FilingDir(s.FilingsDir, f)
	counters := map[string]int64{}

	for i, doc := range f.Documents {
		dest := DocumentPath(dir, i)
		info, err := s.Fetcher.Download(ctx, doc.DocumentURL, dest)
		if err != nil {
			s.Logger.Warn("document download failed, discarding filing",
				"external_id", f.ExternalID, "seq", doc.Seq, "url", doc.DocumentURL, "error", err)
			s.discard(dir, f)
			return Outcome{
				Status: constants.StatusFailed,
				ErrMsg: fmt.Sprintf("document %d of %d: %v", i+1, len(f.Documents), err),
			}
		}

		doc.DownloadStatus = constants.StatusSuccess
		doc.LocalPath = dest
		doc.FileSizeBytes = info.SizeBytes
		doc.ContentType = info.ContentType
		if doc.Filename == "" {
			doc.Filename = filepath.Base(dest)
		}
		counters["pdfs_downloaded"]++
		counters["bytes_downloaded"] += info.SizeBytes

		// Politeness pause between documents, never after the last one.
		if i < len(f.Documents)-1 {
			if err := s.Delay(ctx, s.DelayMin, s.DelayMax); err != nil {
				s.discard(dir, f)
				return Outcome{Status: constants.StatusFailed, ErrMsg: err.Error()}
			}
		}
	}

	return Outcome{Status: constants.StatusSuccess, Counters: counters}
}

// discard removes the filing directory and resets every document so a
// partial transfer leaves nothing behind.
func (s *DownloadStage) discard(dir string, f *entity.Filing) {
	if err := os.RemoveAll(dir); err != nil {
		s.Logger.Error("failed to remove filing directory", "dir", dir, "error", err)
	}
	for _, doc := range f.Documents {
		doc.DownloadStatus = constants.StatusFailed
		doc.LocalPath = ""
		doc.FileSizeBytes = 0
	}
}
