// Package loans computes amortization schedules and progress summaries.
//
// Every function here is pure: results depend only on the arguments, nothing
// is cached, and the current time is always passed in by the caller.
package loans

import (
	"math"

	"github.com/iwvelando/loan-schedule/pkg/datetime"
)

// LevelPayment calculates the constant monthly payment of a fixed-payment
// loan using the standard annuity formula. A zero rate splits the balance
// evenly over the term.
func LevelPayment(balance, monthlyRate float64, termMonths int) float64 {
	if monthlyRate == 0 {
		return balance / float64(termMonths)
	}
	return balance * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(termMonths)))
}

// InterestPayment calculates the interest accrued on balance over one month.
func InterestPayment(balance, monthlyRate float64) float64 {
	return balance * monthlyRate
}

// ComputeSchedule builds the month-by-month schedule for loan.
//
// The schedule has at most TermMonths entries and stops as soon as the
// balance reaches zero. A non-positive term yields an empty schedule. The
// function never fails; degenerate input produces empty or all-zero results.
func ComputeSchedule(loan Loan) Schedule {
	schedule := Schedule{}
	if loan.TermMonths <= 0 {
		return schedule
	}

	rate := loan.MonthlyRate()
	balance := loan.Principal
	start, hasStart := loan.Start()

	var payment float64
	if loan.Method == FixedPayment {
		payment = LevelPayment(balance, rate, loan.TermMonths)
	}
	equalShare := loan.Principal / float64(loan.TermMonths)

	for month := 1; month <= loan.TermMonths; month++ {
		interest := InterestPayment(balance, rate)

		var principal float64
		switch loan.Method {
		case FixedPayment:
			principal = payment - interest
		case EqualPrincipal:
			principal = math.Min(equalShare, balance)
		default:
			// Balloon, and any method value outside the known set.
			if month == loan.TermMonths {
				principal = balance
			}
		}

		balance = math.Max(balance-principal, 0)

		entry := ScheduleEntry{
			Month:            month,
			Interest:         interest,
			Principal:        principal,
			RemainingBalance: balance,
		}
		if hasStart {
			due := datetime.AddMonths(start, month)
			entry.DueDate = &due
		}
		schedule = append(schedule, entry)

		if balance <= 0 {
			break
		}
	}

	return schedule
}
