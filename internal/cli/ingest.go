package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewIngestCommand registers filings from a candidates JSON file.
func NewIngestCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <candidates.json>",
		Short: "Register discovered filings from a candidates file",
		Long: `Reads a JSON file holding an array of discovered filings and registers
each new one with status scraped=success. Filings already in the store are
skipped, so re-running the same file is harmless.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			results, stats, err := app.Ingest.IngestFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, r := range results {
				if r.Err != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "failed  %s: %s\n", r.ExternalID, r.Err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "found=%d new=%d duplicate=%d failed=%d\n",
				stats.Found, stats.New, stats.Deduplicated, stats.Failed)
			return nil
		},
	}
}
