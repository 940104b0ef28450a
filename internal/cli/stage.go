package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/internal/pipeline"
)

// NewStageCommand groups the single-stage subcommands.
func NewStageCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Run a single pipeline stage over all eligible filings",
	}
	cmd.AddCommand(newDownloadCommand(rootOpts))
	cmd.AddCommand(newExtractCommand(rootOpts))
	cmd.AddCommand(newAnalyzeCommand(rootOpts))
	return cmd
}

func newDownloadCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Download PDFs for filings with scraped=success",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()
			res := app.Orchestrator.RunStage(cmd.Context(), constants.StageDownloaded, app.Download.Run)
			printBatchResult(cmd, res)
			return nil
		},
	}
}

func newExtractCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "extract",
		Short: "Extract text from downloaded PDFs",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()
			res := app.Orchestrator.RunStage(cmd.Context(), constants.StageExtracted, app.Extract.Run)
			printBatchResult(cmd, res)
			return nil
		},
	}
}

func newAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Analyze extracted filing text into structured JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()
			res := app.Orchestrator.RunStage(cmd.Context(), constants.StageAnalyzed, app.Analyze.Run)
			printBatchResult(cmd, res)
			return nil
		},
	}
}

func printBatchResult(cmd *cobra.Command, res *pipeline.BatchResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: attempted=%d succeeded=%d failed=%d skipped=%d\n",
		res.Stage, res.Attempted, res.Succeeded, res.Failed, res.Skipped)

	keys := make([]string, 0, len(res.Counters))
	for k := range res.Counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  %s=%d\n", k, res.Counters[k])
	}
	for _, e := range res.Errors {
		fmt.Fprintf(out, "  error: %s\n", e)
	}
}
