package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkondratyk93/mvp-punchclock/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export closed entries to CSV",
		Long: `Export writes all closed entries as CSV. Open entries are skipped.
The default filename is punchclock-<date>.csv; use --out - for stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := app.Entries.ListAll()

			if outPath == "-" {
				fmt.Fprintln(cmd.OutOrStdout(), export.CSV(entries))
				app.track("csv_exported", "stdout")
				return nil
			}

			path := outPath
			if path == "" {
				path = export.Filename(app.now())
			}
			if err := export.WriteFile(path, entries); err != nil {
				return err
			}
			app.track("csv_exported", "file")

			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Output file path, or - for stdout")

	return cmd
}
