package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/loan-schedule/pkg/loans"
)

// ValidateLoan returns warnings for loan parameters that still compute but
// probably do not mean what the user intended. It never rejects a loan.
func ValidateLoan(name string, loan loans.Loan) []string {
	var warnings []string

	if loan.Principal <= 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has a non-positive principal (%.2f) - schedule will be all zero", name, loan.Principal))
	}
	if loan.FixedAnnualRatePercent < 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has a negative fixed rate (%.2f%%)", name, loan.FixedAnnualRatePercent))
	}
	if loan.VariableAnnualRatePercent < 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has a negative variable rate (%.2f%%)", name, loan.VariableAnnualRatePercent))
	}
	if loan.TermMonths <= 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has a non-positive term (%d months) - schedule will be empty", name, loan.TermMonths))
	}
	if strings.TrimSpace(loan.StartDate) != "" {
		if _, ok := loan.Start(); !ok {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' has an unparseable start date %q - due dates will be omitted", name, loan.StartDate))
		}
	}

	return warnings
}
