package cli

import (
	"context"
	"log/slog"

	"github.com/filingwatch/regdocs-monitor/gen/ent"
	"github.com/filingwatch/regdocs-monitor/internal/analyzer"
	"github.com/filingwatch/regdocs-monitor/internal/common"
	"github.com/filingwatch/regdocs-monitor/internal/downloader"
	"github.com/filingwatch/regdocs-monitor/internal/export"
	"github.com/filingwatch/regdocs-monitor/internal/extractor"
	"github.com/filingwatch/regdocs-monitor/internal/ingest"
	"github.com/filingwatch/regdocs-monitor/internal/pipeline"
	"github.com/filingwatch/regdocs-monitor/internal/repository"
)

// App wires configuration, storage, and services for one CLI invocation.
type App struct {
	Cfg    *common.Config
	Logger *slog.Logger

	Client  *ent.Client
	cleanup func()

	Filings repository.FilingRepository
	Runs    repository.RunHistoryRepository

	Ingest       *ingest.Service
	Orchestrator *pipeline.Orchestrator
	Download     *pipeline.DownloadStage
	Extract      *pipeline.ExtractStage
	Analyze      *pipeline.AnalyzeStage
	Export       *export.Service
}

// newApp builds the full service graph. The returned App owns the database
// connection; callers must Close it.
func newApp(ctx context.Context, opts *RootOptions) (*App, error) {
	logger := slog.Default()

	cfg, err := common.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, cleanup, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	filings := repository.NewFilingRepository(client, logger)
	runs := repository.NewRunHistoryRepository(client, logger)

	fetcher := downloader.NewService(cfg.Download, logger)
	engine := extractor.NewEngine(cfg.Extraction, logger)
	analysis := analyzer.NewService(cfg.Analysis, logger)

	return &App{
		Cfg:          cfg,
		Logger:       logger,
		Client:       client,
		cleanup:      cleanup,
		Filings:      filings,
		Runs:         runs,
		Ingest:       ingest.NewService(filings, logger),
		Orchestrator: pipeline.NewOrchestrator(filings, cfg.Pipeline.MaxRetryCount, logger),
		Download:     pipeline.NewDownloadStage(fetcher, cfg.Pipeline, logger),
		Extract:      pipeline.NewExtractStage(engine, logger),
		Analyze:      pipeline.NewAnalyzeStage(analysis, cfg.Pipeline.FilingsDir, logger),
		Export:       export.NewService(filings, logger),
	}, nil
}

func (a *App) Close() {
	if a.cleanup != nil {
		a.cleanup()
	}
}
