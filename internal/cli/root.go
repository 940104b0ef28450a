package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by every command.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	JSONLog    bool
}

// NewRootCommand creates the root command for the regdocs-monitor CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "regdocs-monitor",
		Short: "Regulatory filing acquisition pipeline",
		Long: `regdocs-monitor tracks regulatory filings through a staged pipeline:
discovered filings are registered, their PDFs downloaded, text extracted
through a tiered cascade, and the result analyzed into structured JSON.

Each stage records its own status per filing, so interrupted runs resume
where they left off.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&opts.JSONLog, "log-json", false, "emit logs as JSON")

	cmd.AddCommand(NewIngestCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))
	cmd.AddCommand(NewStageCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))

	return cmd
}

func setupLogger(opts *RootOptions) {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	var handler slog.Handler
	if opts.JSONLog {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
