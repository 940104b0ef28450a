package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "data/filings", cfg.Pipeline.FilingsDir)
	assert.Equal(t, "data/state.db", cfg.Pipeline.DBPath)
	assert.Equal(t, 3, cfg.Pipeline.MaxRetryCount)
	assert.Equal(t, 1*time.Second, cfg.Pipeline.DelayMin)
	assert.Equal(t, 3*time.Second, cfg.Pipeline.DelayMax)

	assert.Equal(t, 3, cfg.Download.MaxAttempts)
	assert.Equal(t, int64(100<<20), cfg.Download.MaxPDFSizeBytes)

	assert.Equal(t, 500, cfg.Extraction.MaxPagesForExtraction)
	assert.Equal(t, 50, cfg.Extraction.MaxPagesForOCR)
	assert.Equal(t, 50, cfg.Extraction.MinCharsPerPage)
	assert.Equal(t, 25, cfg.Extraction.MinCharsPerPageOCR)
	assert.InDelta(t, 0.05, cfg.Extraction.GarbleRatioThreshold, 1e-9)
	assert.InDelta(t, 0.10, cfg.Extraction.OCRGarbleRatioThreshold, 1e-9)

	assert.Equal(t, "claude", cfg.Analysis.Command)
	assert.Equal(t, 300*time.Second, cfg.Analysis.Timeout)
	assert.Equal(t, 200, cfg.Analysis.MinTextLength)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
pipeline:
  filings_dir: /srv/filings
  max_retry_count: 5
  delay_min_seconds: 0.5
  delay_max_seconds: 2.5
download:
  max_attempts: 7
  timeout_seconds: 120
extraction:
  max_pages_for_ocr: 30
  ocr_language: eng+fra
analysis:
  model: opus
  timeout_seconds: 600
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/filings", cfg.Pipeline.FilingsDir)
	assert.Equal(t, 5, cfg.Pipeline.MaxRetryCount)
	assert.Equal(t, 500*time.Millisecond, cfg.Pipeline.DelayMin)
	assert.Equal(t, 2500*time.Millisecond, cfg.Pipeline.DelayMax)
	assert.Equal(t, 7, cfg.Download.MaxAttempts)
	assert.Equal(t, 120*time.Second, cfg.Download.Timeout)
	assert.Equal(t, 30, cfg.Extraction.MaxPagesForOCR)
	assert.Equal(t, "eng+fra", cfg.Extraction.OCRLanguage)
	assert.Equal(t, "opus", cfg.Analysis.Model)
	assert.Equal(t, 600*time.Second, cfg.Analysis.Timeout)

	// Keys the file omits keep their defaults.
	assert.Equal(t, "data/state.db", cfg.Pipeline.DBPath)
	assert.Equal(t, 500, cfg.Extraction.MaxPagesForExtraction)
}

func TestLoadConfigEnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analysis:\n  model: opus\n"), 0o644))

	t.Setenv("ANALYSIS_MODEL", "haiku")
	t.Setenv("PIPELINE_MAX_RETRY_COUNT", "9")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "haiku", cfg.Analysis.Model)
	assert.Equal(t, 9, cfg.Pipeline.MaxRetryCount)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline: [not a map"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() *Config {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.Database.DSN = ""
	cfg.Pipeline.DBPath = ""
	assert.Error(t, cfg.Validate(), "some database location is required")

	cfg = base()
	cfg.Pipeline.MaxRetryCount = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Pipeline.DelayMin = 5 * time.Second
	cfg.Pipeline.DelayMax = 1 * time.Second
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Extraction.GarbleRatioThreshold = 1.5
	assert.Error(t, cfg.Validate())
}
