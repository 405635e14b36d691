package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"jobfinder/internal/store"

	"github.com/spf13/cobra"
)

func newDatasetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Dataset commands",
	}
	cmd.AddCommand(newDatasetExportSQLiteCmd(app))
	return cmd
}

func newDatasetExportSQLiteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export-sqlite <out>",
		Short: "Write the loaded dataset to a SQLite file usable with --dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := strings.TrimSpace(args[0])
			if out == "" {
				return writeErr(cmd, fmt.Errorf("missing output path"))
			}
			switch strings.ToLower(filepath.Ext(out)) {
			case ".sqlite", ".sqlite3", ".db":
			default:
				return writeErr(cmd, fmt.Errorf("output %q must end in .sqlite, .sqlite3 or .db", out))
			}

			records, source, err := loadRecords(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := store.ExportSQLite(cmd.Context(), out, records.All()); err != nil {
				return writeErr(cmd, err)
			}
			app.logger.Info("dataset exported", "source", store.SourceLabel(source), "out", out, "records", records.Len())
			return writeOut(cmd, app, map[string]any{
				"source":  store.SourceLabel(source),
				"path":    out,
				"records": records.Len(),
			})
		},
	}
}
