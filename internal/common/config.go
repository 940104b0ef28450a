package common

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Pipeline   PipelineConfig
	Download   DownloadConfig
	Extraction ExtractionConfig
	Analysis   AnalysisConfig
}

// DatabaseConfig holds database-related configuration. An empty DSN selects
// the local SQLite state database at Pipeline.DBPath.
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// PipelineConfig holds orchestration-level configuration shared by all stages.
type PipelineConfig struct {
	DataDir       string
	FilingsDir    string
	DBPath        string
	MaxRetryCount int
	DelayMin      time.Duration // politeness delay floor between requests
	DelayMax      time.Duration // politeness delay ceiling
}

// DownloadConfig holds PDF download configuration.
type DownloadConfig struct {
	Timeout         time.Duration
	MaxPDFSizeBytes int64
	ChunkSize       int
	MaxAttempts     int
	BaseDelay       time.Duration
	MaxDelay        time.Duration
}

// ExtractionConfig holds tiered-extraction configuration.
type ExtractionConfig struct {
	MaxPagesForExtraction   int
	MaxPagesForOCR          int
	MinCharsPerPage         int
	MinCharsPerPageOCR      int
	GarbleRatioThreshold    float64
	OCRGarbleRatioThreshold float64
	OCRDPI                  int
	OCRLanguage             string
	Pdftotext               string
	Pdftoppm                string
	Tesseract               string
}

// AnalysisConfig holds LLM analysis configuration.
type AnalysisConfig struct {
	Command       string
	Model         string
	Timeout       time.Duration
	MinTextLength int
	TemplatePath  string
}

// fileConfig mirrors the YAML layout. Durations are plain seconds so config
// files stay tool-agnostic.
type fileConfig struct {
	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`
	Pipeline struct {
		DataDir         string  `yaml:"data_dir"`
		FilingsDir      string  `yaml:"filings_dir"`
		DBPath          string  `yaml:"db_path"`
		MaxRetryCount   int     `yaml:"max_retry_count"`
		DelayMinSeconds float64 `yaml:"delay_min_seconds"`
		DelayMaxSeconds float64 `yaml:"delay_max_seconds"`
	} `yaml:"pipeline"`
	Download struct {
		TimeoutSeconds   int     `yaml:"timeout_seconds"`
		MaxPDFSizeBytes  int64   `yaml:"max_pdf_size_bytes"`
		ChunkSize        int     `yaml:"chunk_size"`
		MaxAttempts      int     `yaml:"max_attempts"`
		BaseDelaySeconds float64 `yaml:"base_delay_seconds"`
		MaxDelaySeconds  float64 `yaml:"max_delay_seconds"`
	} `yaml:"download"`
	Extraction struct {
		MaxPagesForExtraction   int     `yaml:"max_pages_for_extraction"`
		MaxPagesForOCR          int     `yaml:"max_pages_for_ocr"`
		MinCharsPerPage         int     `yaml:"min_chars_per_page"`
		MinCharsPerPageOCR      int     `yaml:"min_chars_per_page_ocr"`
		GarbleRatioThreshold    float64 `yaml:"garble_ratio_threshold"`
		OCRGarbleRatioThreshold float64 `yaml:"ocr_garble_ratio_threshold"`
		OCRDPI                  int     `yaml:"ocr_dpi"`
		OCRLanguage             string  `yaml:"ocr_language"`
		Pdftotext               string  `yaml:"pdftotext"`
		Pdftoppm                string  `yaml:"pdftoppm"`
		Tesseract               string  `yaml:"tesseract"`
	} `yaml:"extraction"`
	Analysis struct {
		Command        string `yaml:"command"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		MinTextLength  int    `yaml:"min_text_length"`
		TemplatePath   string `yaml:"template_path"`
	} `yaml:"analysis"`
}

// LoadConfig loads configuration from an optional YAML file and environment
// variables. Environment variables win over the file; the file wins over
// defaults. An empty path skips the file layer.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, WrapError(err, "read config file")
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, WrapError(err, "parse config file")
		}
		applyFile(cfg, &fc)
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			MaxConns:        10,
			MinConns:        2,
			MaxConnLifetime: 30 * time.Minute,
			MaxConnIdleTime: 5 * time.Minute,
			DialTimeout:     3 * time.Second,
		},
		Pipeline: PipelineConfig{
			DataDir:       "data",
			FilingsDir:    "data/filings",
			DBPath:        "data/state.db",
			MaxRetryCount: 3,
			DelayMin:      1 * time.Second,
			DelayMax:      3 * time.Second,
		},
		Download: DownloadConfig{
			Timeout:         60 * time.Second,
			MaxPDFSizeBytes: 100 << 20, // 100MB
			ChunkSize:       64 << 10,
			MaxAttempts:     3,
			BaseDelay:       2 * time.Second,
			MaxDelay:        30 * time.Second,
		},
		Extraction: ExtractionConfig{
			MaxPagesForExtraction:   500,
			MaxPagesForOCR:          50,
			MinCharsPerPage:         50,
			MinCharsPerPageOCR:      25,
			GarbleRatioThreshold:    0.05,
			OCRGarbleRatioThreshold: 0.10,
			OCRDPI:                  300,
			OCRLanguage:             "eng",
			Pdftotext:               "pdftotext",
			Pdftoppm:                "pdftoppm",
			Tesseract:               "tesseract",
		},
		Analysis: AnalysisConfig{
			Command:       "claude",
			Model:         "sonnet",
			Timeout:       300 * time.Second,
			MinTextLength: 200,
			TemplatePath:  "config/analysis_prompt.md",
		},
	}
}

func applyFile(cfg *Config, fc *fileConfig) {
	setStr(&cfg.Database.DSN, fc.Database.DSN)

	setStr(&cfg.Pipeline.DataDir, fc.Pipeline.DataDir)
	setStr(&cfg.Pipeline.FilingsDir, fc.Pipeline.FilingsDir)
	setStr(&cfg.Pipeline.DBPath, fc.Pipeline.DBPath)
	setInt(&cfg.Pipeline.MaxRetryCount, fc.Pipeline.MaxRetryCount)
	setSeconds(&cfg.Pipeline.DelayMin, fc.Pipeline.DelayMinSeconds)
	setSeconds(&cfg.Pipeline.DelayMax, fc.Pipeline.DelayMaxSeconds)

	setSeconds(&cfg.Download.Timeout, float64(fc.Download.TimeoutSeconds))
	setInt64(&cfg.Download.MaxPDFSizeBytes, fc.Download.MaxPDFSizeBytes)
	setInt(&cfg.Download.ChunkSize, fc.Download.ChunkSize)
	setInt(&cfg.Download.MaxAttempts, fc.Download.MaxAttempts)
	setSeconds(&cfg.Download.BaseDelay, fc.Download.BaseDelaySeconds)
	setSeconds(&cfg.Download.MaxDelay, fc.Download.MaxDelaySeconds)

	setInt(&cfg.Extraction.MaxPagesForExtraction, fc.Extraction.MaxPagesForExtraction)
	setInt(&cfg.Extraction.MaxPagesForOCR, fc.Extraction.MaxPagesForOCR)
	setInt(&cfg.Extraction.MinCharsPerPage, fc.Extraction.MinCharsPerPage)
	setInt(&cfg.Extraction.MinCharsPerPageOCR, fc.Extraction.MinCharsPerPageOCR)
	setFloat(&cfg.Extraction.GarbleRatioThreshold, fc.Extraction.GarbleRatioThreshold)
	setFloat(&cfg.Extraction.OCRGarbleRatioThreshold, fc.Extraction.OCRGarbleRatioThreshold)
	setInt(&cfg.Extraction.OCRDPI, fc.Extraction.OCRDPI)
	setStr(&cfg.Extraction.OCRLanguage, fc.Extraction.OCRLanguage)
	setStr(&cfg.Extraction.Pdftotext, fc.Extraction.Pdftotext)
	setStr(&cfg.Extraction.Pdftoppm, fc.Extraction.Pdftoppm)
	setStr(&cfg.Extraction.Tesseract, fc.Extraction.Tesseract)

	setStr(&cfg.Analysis.Command, fc.Analysis.Command)
	setStr(&cfg.Analysis.Model, fc.Analysis.Model)
	setSeconds(&cfg.Analysis.Timeout, float64(fc.Analysis.TimeoutSeconds))
	setInt(&cfg.Analysis.MinTextLength, fc.Analysis.MinTextLength)
	setStr(&cfg.Analysis.TemplatePath, fc.Analysis.TemplatePath)
}

func applyEnv(cfg *Config) {
	cfg.Database.DSN = getEnv("DB_URL", cfg.Database.DSN)
	cfg.Database.MaxConns = getEnvAsInt32("DB_MAX_CONNS", cfg.Database.MaxConns)
	cfg.Database.MinConns = getEnvAsInt32("DB_MIN_CONNS", cfg.Database.MinConns)
	cfg.Database.MaxConnLifetime = getEnvAsDuration("DB_MAX_CONN_LIFETIME", cfg.Database.MaxConnLifetime)
	cfg.Database.MaxConnIdleTime = getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", cfg.Database.MaxConnIdleTime)
	cfg.Database.DialTimeout = getEnvAsDuration("DB_DIAL_TIMEOUT", cfg.Database.DialTimeout)
	cfg.Database.StatementTimeout = getEnvAsDuration("DB_STATEMENT_TIMEOUT", cfg.Database.StatementTimeout)

	cfg.Pipeline.DataDir = getEnv("PIPELINE_DATA_DIR", cfg.Pipeline.DataDir)
	cfg.Pipeline.FilingsDir = getEnv("PIPELINE_FILINGS_DIR", cfg.Pipeline.FilingsDir)
	cfg.Pipeline.DBPath = getEnv("PIPELINE_DB_PATH", cfg.Pipeline.DBPath)
	cfg.Pipeline.MaxRetryCount = getEnvAsInt("PIPELINE_MAX_RETRY_COUNT", cfg.Pipeline.MaxRetryCount)

	cfg.Download.Timeout = getEnvAsDuration("DOWNLOAD_TIMEOUT", cfg.Download.Timeout)
	cfg.Download.MaxAttempts = getEnvAsInt("DOWNLOAD_MAX_ATTEMPTS", cfg.Download.MaxAttempts)

	cfg.Analysis.Command = getEnv("ANALYSIS_COMMAND", cfg.Analysis.Command)
	cfg.Analysis.Model = getEnv("ANALYSIS_MODEL", cfg.Analysis.Model)
	cfg.Analysis.Timeout = getEnvAsDuration("ANALYSIS_TIMEOUT", cfg.Analysis.Timeout)
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" && c.Pipeline.DBPath == "" {
		return NewAppError("CONFIG_ERROR", "either DB_URL or PIPELINE_DB_PATH is required", ErrInvalidInput)
	}
	if c.Pipeline.MaxRetryCount < 1 {
		return NewAppError("CONFIG_ERROR", "max_retry_count must be at least 1", ErrInvalidInput)
	}
	if c.Pipeline.DelayMax < c.Pipeline.DelayMin {
		return NewAppError("CONFIG_ERROR", "delay_max_seconds must be >= delay_min_seconds", ErrInvalidInput)
	}
	if c.Extraction.GarbleRatioThreshold <= 0 || c.Extraction.GarbleRatioThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "garble_ratio_threshold must be in (0, 1]", ErrInvalidInput)
	}
	return nil
}

func setStr(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setInt64(dst *int64, v int64) {
	if v != 0 {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func setSeconds(dst *time.Duration, secs float64) {
	if secs != 0 {
		*dst = time.Duration(secs * float64(time.Second))
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
