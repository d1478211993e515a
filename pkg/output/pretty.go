package output

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/format"
	"github.com/iwvelando/loan-schedule/pkg/loans"
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
	"golang.org/x/text/language"
)

// Labeler translates a label key for display.
type Labeler interface {
	T(key string) string
	Tag() language.Tag
}

// LoanReport is everything PrettyFormat prints for one loan.
type LoanReport struct {
	ID       string
	Name     string
	Loan     loans.Loan
	Schedule loans.Schedule
	Summary  loans.ProgressSummary
}

// ChartBar is one bar of the interest comparison chart.
type ChartBar struct {
	Label string
	Value float64
}

const chartWidth = 40

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, labels Labeler, reports []LoanReport, withSchedule bool) {
	tag := labels.Tag()
	for i, report := range reports {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "--- %s ---\n", report.Name)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		line := func(key, value string) {
			_, _ = fmt.Fprintf(tw, "%s:\t%s\n", labels.T(key), value)
		}
		startDate := report.Loan.StartDate
		if startDate == "" {
			startDate = "-"
		}
		summary := report.Summary

		line("loanId", report.ID)
		line("amount", format.Grouped(report.Loan.Principal, tag))
		line("fixed", format.Percent(report.Loan.FixedAnnualRatePercent))
		line("prime", format.Percent(report.Loan.VariableAnnualRatePercent))
		line("months", fmt.Sprintf("%d", report.Loan.TermMonths))
		line("startDateLabel", startDate)
		line("monthsLeft", fmt.Sprintf("%d", summary.MonthsLeft))
		line("method", labels.T(MethodLabelKey(report.Loan.Method)))
		line("totalInterest", format.Grouped(summary.TotalInterest, tag))
		line("interestPaid", format.Grouped(summary.InterestPaid, tag))
		line("interestRemaining", format.Grouped(summary.InterestRemaining, tag))
		line("totalPrincipal", format.Grouped(summary.TotalPrincipal, tag))
		line("principalPaid", format.Grouped(summary.PrincipalPaid, tag))
		line("principalRemaining", format.Grouped(summary.PrincipalRemaining, tag))
		_ = tw.Flush()

		_, _ = fmt.Fprintf(w, "%s:\n", labels.T("nextPayment"))
		if next := summary.NextPayment; next != nil {
			_, _ = fmt.Fprintf(w, "  %s: %s | %s: %s | %s: %s | %s: %s\n",
				labels.T("dueDate"), datetime.FormatDate(next.DueDate),
				labels.T("interest"), format.Grouped(next.Interest, tag),
				labels.T("principal"), format.Grouped(next.Principal, tag),
				labels.T("total"), format.Grouped(next.Total(), tag))
		} else {
			_, _ = fmt.Fprintf(w, "  %s\n", labels.T("fullyPaid"))
		}

		if withSchedule && len(report.Schedule) > 0 {
			_, _ = fmt.Fprintln(w)
			tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
				labels.T("months"), labels.T("dueDate"), labels.T("interest"),
				labels.T("principal"), labels.T("total"), labels.T("principalRemaining"))
			for _, entry := range report.Schedule {
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
					entry.Month, datetime.FormatDate(entry.DueDate),
					format.Grouped(entry.Interest, tag), format.Grouped(entry.Principal, tag),
					format.Grouped(entry.Total(), tag), format.Grouped(entry.RemainingBalance, tag))
			}
			_ = tw.Flush()
		}
	}
}

// PrettyComparison prints a horizontal bar chart of total interest per loan.
func PrettyComparison(w io.Writer, labels Labeler, bars []ChartBar) {
	_, _ = fmt.Fprintf(w, "--- %s ---\n", labels.T("chartComparison"))
	if len(bars) == 0 {
		_, _ = fmt.Fprintln(w, labels.T("noLoans"))
		return
	}

	peak := 0.0
	for _, bar := range bars {
		peak = math.Max(peak, bar.Value)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, bar := range bars {
		width := 0
		if bar.Value > 0 && !mathutil.IsZero(bar.Value) {
			width = int(math.Round(bar.Value / peak * chartWidth))
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", bar.Label, strings.Repeat("█", width), format.Grouped(bar.Value, labels.Tag()))
	}
	_ = tw.Flush()
}

// MethodLabelKey maps a method to its display label key.
func MethodLabelKey(method loans.Method) string {
	switch method {
	case loans.EqualPrincipal:
		return "equalPrincipalMethod"
	case loans.Balloon:
		return "balloonMethod"
	}
	return "spitzerMethod"
}
