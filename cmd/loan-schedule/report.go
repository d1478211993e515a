package main

import (
	"fmt"
	"io"

	"github.com/iwvelando/loan-schedule/internal/book"
	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/output"
	"github.com/iwvelando/loan-schedule/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scheduleFormat string

var scheduleCmd = &cobra.Command{
	Use:   "schedule [name...]",
	Short: "Print the summary and amortization schedule of each loan",
	Long: `Print each configured loan's progress summary, next payment and full
schedule. Loan names may be given to restrict the report; names match
case-insensitively.`,
	RunE: runSchedule,
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare loans side by side with a chart of total interest",
	Args:  cobra.NoArgs,
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(compareCmd)

	scheduleCmd.Flags().StringVarP(&scheduleFormat, "format", "f", "", "output format override: pretty, csv")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	outputFormat := scheduleFormat
	if outputFormat == "" {
		// An unusable configured format was already reported as a warning.
		outputFormat = s.conf.Output.Format
		if validation.ValidateOutputFormat(outputFormat) != nil {
			outputFormat = constants.OutputFormatPretty
		}
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}
	if outputFormat == constants.OutputFormatXLSX {
		outputFormat = constants.OutputFormatPretty
	}

	views, err := selectViews(s, args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch outputFormat {
	case constants.OutputFormatCSV:
		return writeCSVSections(w, views)
	default:
		output.PrettyFormat(w, s.labels, reports(views), true)
	}
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	w := cmd.OutOrStdout()
	views := s.book.Views(s.now)
	output.PrettyFormat(w, s.labels, reports(views), false)
	if len(views) > 0 {
		_, _ = fmt.Fprintln(w)
	}

	points := s.book.Comparison(s.now)
	bars := make([]output.ChartBar, 0, len(points))
	for _, point := range points {
		bars = append(bars, output.ChartBar{Label: point.Name, Value: point.TotalInterest})
	}
	output.PrettyComparison(w, s.labels, bars)
	return nil
}

// selectViews returns every loan when names is empty, otherwise the named
// loans in the order given.
func selectViews(s *session, names []string) ([]book.View, error) {
	if len(names) == 0 {
		return s.book.Views(s.now), nil
	}
	views := make([]book.View, 0, len(names))
	for _, name := range names {
		record, err := s.book.FindByName(name)
		if err != nil {
			s.logger.Error("unknown loan",
				zap.String("op", "main.selectViews"),
				zap.String("name", name),
			)
			return nil, err
		}
		views = append(views, book.Derive(record, s.now))
	}
	return views, nil
}

func reports(views []book.View) []output.LoanReport {
	out := make([]output.LoanReport, 0, len(views))
	for _, view := range views {
		out = append(out, output.LoanReport{
			ID:       view.ID,
			Name:     view.Name,
			Loan:     view.Loan,
			Schedule: view.Schedule,
			Summary:  view.Summary,
		})
	}
	return out
}

// writeCSVSections writes one CSV block per loan, each preceded by a
// "# <name>" line.
func writeCSVSections(w io.Writer, views []book.View) error {
	for i, view := range views {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "# %s\n", view.Name)
		if err := output.WriteCSV(w, view.Schedule); err != nil {
			return fmt.Errorf("failed to write schedule for %s: %w", view.Name, err)
		}
	}
	return nil
}
