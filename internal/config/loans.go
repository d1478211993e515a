package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/loan-schedule/internal/book"
	"github.com/iwvelando/loan-schedule/pkg/loans"
)

// Loan is a loan as written in the config file. Rates are annual percentages
// and Term is in months.
type Loan struct {
	Name         string  `yaml:"name"`
	Principal    float64 `yaml:"principal"`
	FixedRate    float64 `yaml:"fixedRate"`
	VariableRate float64 `yaml:"variableRate,omitempty"`
	Term         int     `yaml:"term"`
	Method       string  `yaml:"method,omitempty"`
	StartDate    string  `yaml:"startDate,omitempty"`
}

// ToLoan converts the config entry into calculation input. An empty method
// means fixed payment.
func (l Loan) ToLoan() (loans.Loan, error) {
	method := loans.FixedPayment
	if strings.TrimSpace(l.Method) != "" {
		var err error
		method, err = loans.ParseMethod(l.Method)
		if err != nil {
			return loans.Loan{}, err
		}
	}

	return loans.Loan{
		Principal:                 l.Principal,
		FixedAnnualRatePercent:    l.FixedRate,
		VariableAnnualRatePercent: l.VariableRate,
		TermMonths:                l.Term,
		Method:                    method,
		StartDate:                 strings.TrimSpace(l.StartDate),
	}, nil
}

// DisplayName is the configured name, or the 1-based position for unnamed
// loans.
func (l Loan) DisplayName(index int) string {
	if name := strings.TrimSpace(l.Name); name != "" {
		return name
	}
	return fmt.Sprintf("#%d", index+1)
}

// Inputs converts every configured loan into loan book input.
func (c *Configuration) Inputs() ([]book.Input, error) {
	inputs := make([]book.Input, 0, len(c.Loans))
	for i, loan := range c.Loans {
		converted, err := loan.ToLoan()
		if err != nil {
			return nil, fmt.Errorf("loan %s: %w", loan.DisplayName(i), err)
		}
		inputs = append(inputs, book.Input{Name: loan.Name, Loan: converted})
	}
	return inputs, nil
}
