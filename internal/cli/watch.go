package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/filingwatch/regdocs-monitor/internal/ingest"
)

// NewWatchCommand watches a drop directory and ingests candidate files as
// they arrive.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	var dir string
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a directory for candidate files and ingest them",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
				Dir:      dir,
				Debounce: debounce,
			}, app.Logger)
			if err != nil {
				return err
			}

			app.Logger.Info("watching for candidate files", "dir", dir)
			for {
				select {
				case <-ctx.Done():
					return nil
				case path, ok := <-evCh:
					if !ok {
						return nil
					}
					_, stats, err := app.Ingest.IngestFile(ctx, path)
					if err != nil {
						app.Logger.Error("failed to ingest candidates file", "path", path, "error", err)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: found=%d new=%d duplicate=%d failed=%d\n",
						path, stats.Found, stats.New, stats.Deduplicated, stats.Failed)
				case err, ok := <-errCh:
					if ok && err != nil {
						app.Logger.Error("watcher error", "error", err)
					}
				}
			}
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "data/inbox", "directory to watch for candidate JSON files")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "settle time before ingesting a changed file")
	return cmd
}
