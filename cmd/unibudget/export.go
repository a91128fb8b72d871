package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/unibudget/internal/cli"
	"github.com/Veraticus/unibudget/internal/common"
	"github.com/Veraticus/unibudget/internal/export"
	"github.com/spf13/cobra"
)

func (a *app) exportCmd() *cobra.Command {
	var (
		formatName string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expenses to CSV or XLSX",
		Long: `Export writes every expense to a file. CSV holds the expenses only; XLSX adds
a Notes sheet and a Summary sheet with the weekly figures.

The format defaults to the extension of --out, or CSV when writing to stdout.`,
		Example: `  unibudget export --out week.xlsx
  unibudget export --format csv > expenses.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			format, err := resolveFormat(formatName, outPath)
			if err != nil {
				return common.NewUserError("Format must be csv or xlsx", err)
			}

			tr, cleanup, err := a.openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := tr.Snapshot()
			data := export.Data{
				Location: time.Local,
				Expenses: snap.Expenses,
				Notes:    snap.Notes,
				Derived:  tr.Derived(),
			}

			if outPath == "" || outPath == "-" {
				return export.Write(cmd.OutOrStdout(), format, data, nil)
			}

			return writeExportFile(cmd.ErrOrStderr(), outPath, format, data, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "", "output format (csv, xlsx)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")

	return cmd
}

func writeExportFile(progressOut io.Writer, path string, format export.Format, data export.Data, out io.Writer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close export file: %w", closeErr)
		}
	}()

	var progress export.Progress
	if total := data.Records(format); total > 0 {
		progress = cli.NewProgressBar(progressOut, total, "Exporting")
	}

	if err := export.Write(f, format, data, progress); err != nil {
		return err
	}

	slog.Info("Exported tracker data", "path", path, "format", format, "expenses", len(data.Expenses))
	writeLine(out, cli.FormatSuccess(fmt.Sprintf("Exported %d expenses to %s", len(data.Expenses), path)))
	return nil
}

// resolveFormat prefers an explicit name, then the output file extension.
func resolveFormat(name, outPath string) (export.Format, error) {
	if name != "" {
		return export.ParseFormat(name)
	}
	if ext := strings.TrimPrefix(filepath.Ext(outPath), "."); ext != "" {
		return export.ParseFormat(ext)
	}
	return export.FormatCSV, nil
}
