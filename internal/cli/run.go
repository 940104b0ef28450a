package cli

import (
	"github.com/spf13/cobra"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/internal/pipeline"
	"github.com/filingwatch/regdocs-monitor/internal/repository"
)

// NewRunCommand executes a full pipeline pass: optional ingest, then
// download, extract, and analyze, with an audit row recording the totals.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	var candidatesFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline once",
		Long: `Runs every stage in order over all eligible filings. With --candidates,
new filings from the given JSON file are registered first. The pass is
recorded in run history with per-run totals.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			run, err := app.Runs.Start(ctx)
			if err != nil {
				return err
			}

			stats := repository.RunStats{}

			if candidatesFile != "" {
				_, ingestStats, err := app.Ingest.IngestFile(ctx, candidatesFile)
				if err != nil {
					app.Logger.Error("ingest failed", "path", candidatesFile, "error", err)
				} else {
					stats.TotalFilingsFound = int(ingestStats.Found)
					stats.NewFilings = int(ingestStats.New)
				}
			}

			results := []*pipeline.BatchResult{
				app.Orchestrator.RunStage(ctx, constants.StageDownloaded, app.Download.Run),
				app.Orchestrator.RunStage(ctx, constants.StageExtracted, app.Extract.Run),
				app.Orchestrator.RunStage(ctx, constants.StageAnalyzed, app.Analyze.Run),
			}
			for _, res := range results {
				printBatchResult(cmd, res)
				stats.ProcessedOK += res.Succeeded
				stats.ProcessedFailed += res.Failed
			}

			if err := app.Runs.Finish(ctx, run.ID, stats); err != nil {
				app.Logger.Error("failed to record run completion", "error", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&candidatesFile, "candidates", "", "candidates JSON file to ingest before processing")
	return cmd
}
