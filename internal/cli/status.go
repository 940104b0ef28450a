package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStatusCommand reports queue depth and the last recorded run.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show pipeline queue depth and last run",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			unprocessed, err := app.Filings.CountUnprocessed(ctx, app.Cfg.Pipeline.MaxRetryCount)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "unprocessed filings: %d\n", unprocessed)

			last, err := app.Runs.Latest(ctx)
			if err != nil {
				return err
			}
			if last == nil {
				fmt.Fprintln(out, "no runs recorded yet")
				return nil
			}
			fmt.Fprintf(out, "last run: started=%s", last.StartedAt.Format("2006-01-02 15:04:05"))
			if last.CompletedAt != nil {
				fmt.Fprintf(out, " completed=%s duration=%.1fs",
					last.CompletedAt.Format("2006-01-02 15:04:05"), last.DurationSeconds)
			} else {
				fmt.Fprint(out, " (incomplete)")
			}
			fmt.Fprintf(out, "\n  found=%d new=%d ok=%d failed=%d\n",
				last.TotalFilingsFound, last.NewFilings, last.ProcessedOK, last.ProcessedFailed)
			return nil
		},
	}
}
