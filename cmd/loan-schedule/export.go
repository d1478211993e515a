package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iwvelando/loan-schedule/internal/book"
	"github.com/iwvelando/loan-schedule/internal/metrics"
	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/output"
	"github.com/iwvelando/loan-schedule/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportFormat string
	exportDir    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write each loan's schedule to a CSV or Excel file",
	Long: `Write <loan name>_schedule.csv or <loan name>_schedule.xlsx for every
configured loan. The format and directory default to the config's output
section.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "", "export format: csv, xlsx")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "directory to write export files to")
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	format := exportFormat
	if format == "" {
		format = s.conf.Output.Format
		if validation.ValidateExportFormat(format) != nil {
			format = constants.OutputFormatCSV
		}
	}
	if err := validation.ValidateExportFormat(format); err != nil {
		return err
	}

	dir := exportDir
	if dir == "" {
		dir = s.conf.Output.Directory
	}

	paths, err := exportAll(s.book, dir, format, s.logger)
	if err != nil {
		return err
	}
	for _, path := range paths {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// exportAll writes one file per loan into dir and returns the written paths.
func exportAll(b *book.Book, dir, format string, logger *zap.Logger) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}

	records := b.List()
	paths := make([]string, 0, len(records))
	used := make(map[string]bool, len(records))
	for _, record := range records {
		path := exportPath(dir, record.Name, format, used)
		if err := exportFile(path, format, record); err != nil {
			return paths, err
		}
		metrics.Exports.WithLabelValues(format).Inc()
		logger.Info("schedule exported",
			zap.String("op", "main.exportAll"),
			zap.String("id", record.ID),
			zap.String("path", path),
		)
		paths = append(paths, path)
	}
	return paths, nil
}

// exportPath returns a file path for name that no earlier loan in this run
// has taken, appending _2, _3, ... to repeated names. Names are compared
// case-insensitively.
func exportPath(dir, name, format string, used map[string]bool) string {
	path := filepath.Join(dir, output.FileName(name, format))
	for n := 2; used[strings.ToLower(path)]; n++ {
		path = filepath.Join(dir, output.FileName(fmt.Sprintf("%s_%d", name, n), format))
	}
	used[strings.ToLower(path)] = true
	return path
}

func exportFile(path, format string, record book.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	if err := output.Write(f, format, book.Compute(record.Loan)); err != nil {
		return fmt.Errorf("failed to export %s: %w", record.Name, err)
	}
	return nil
}
