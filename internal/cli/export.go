package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewExportCommand writes an XLSX digest of analyzed filings.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export analyzed filings to an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			data, err := app.Export.ExportAnalyzedXLSX(cmd.Context())
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", outPath, len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "filings.xlsx", "output file path")
	return cmd
}
