package loans

import (
	"time"

	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
)

// ElapsedMonths returns how many scheduled months have passed at now,
// clamped to [0, TermMonths]. Months are counted in calendar buckets, not by
// day: a loan started on the 28th has one month elapsed on the 1st of the
// next month. Loans without a usable start date have zero elapsed months.
func ElapsedMonths(loan Loan, now time.Time) int {
	start, ok := loan.Start()
	if !ok {
		return 0
	}
	return mathutil.ClampInt(datetime.MonthsBetween(start, now), 0, loan.TermMonths)
}

// Summarize splits schedule into paid and remaining parts as of now.
//
// Paid figures cover the first ElapsedMonths entries; the next payment is the
// entry right after them, or nil once the schedule is exhausted. The totals
// are the exact float sum of the paid and remaining parts, so
// paid + remaining == total holds without rounding error.
func Summarize(loan Loan, schedule Schedule, now time.Time) ProgressSummary {
	elapsed := ElapsedMonths(loan, now)
	paidCount := min(elapsed, len(schedule))

	paid := schedule[:paidCount]
	rest := schedule[paidCount:]

	summary := ProgressSummary{
		ElapsedMonths:      elapsed,
		MonthsLeft:         max(loan.TermMonths-elapsed, 0),
		InterestPaid:       paid.TotalInterest(),
		PrincipalPaid:      paid.TotalPrincipal(),
		InterestRemaining:  rest.TotalInterest(),
		PrincipalRemaining: rest.TotalPrincipal(),
	}
	summary.TotalInterest = summary.InterestPaid + summary.InterestRemaining
	summary.TotalPrincipal = summary.PrincipalPaid + summary.PrincipalRemaining

	if elapsed < len(schedule) {
		next := schedule[elapsed]
		summary.NextPayment = &next
	}

	return summary
}
