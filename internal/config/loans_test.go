package config

import (
	"testing"

	"github.com/iwvelando/loan-schedule/pkg/loans"
)

func TestToLoan(t *testing.T) {
	tests := []struct {
		name      string
		loan      Loan
		expected  loans.Method
		wantError bool
	}{
		{name: "Empty method", loan: Loan{}, expected: loans.FixedPayment},
		{name: "Spitzer alias", loan: Loan{Method: "spitzer"}, expected: loans.FixedPayment},
		{name: "Equal principal", loan: Loan{Method: "EqualPrincipal"}, expected: loans.EqualPrincipal},
		{name: "Balloon", loan: Loan{Method: "BALLOON"}, expected: loans.Balloon},
		{name: "Unknown method", loan: Loan{Method: "bullet"}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.loan.ToLoan()
			if tt.wantError {
				if err == nil {
					t.Errorf("ToLoan() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("ToLoan() unexpected error = %v", err)
			}
			if got.Method != tt.expected {
				t.Errorf("ToLoan() method = %v, expected %v", got.Method, tt.expected)
			}
		})
	}
}

func TestToLoanFields(t *testing.T) {
	got, err := Loan{
		Principal:    1000,
		FixedRate:    2,
		VariableRate: 1.5,
		Term:         24,
		StartDate:    " 2025-02-01 ",
	}.ToLoan()
	if err != nil {
		t.Fatalf("ToLoan() unexpected error = %v", err)
	}
	expected := loans.Loan{
		Principal:                 1000,
		FixedAnnualRatePercent:    2,
		VariableAnnualRatePercent: 1.5,
		TermMonths:                24,
		Method:                    loans.FixedPayment,
		StartDate:                 "2025-02-01",
	}
	if got != expected {
		t.Errorf("ToLoan() = %+v, expected %+v", got, expected)
	}
}

func TestDisplayName(t *testing.T) {
	if got := (Loan{Name: " Car "}).DisplayName(0); got != "Car" {
		t.Errorf("DisplayName() = %q, expected Car", got)
	}
	if got := (Loan{}).DisplayName(2); got != "#3" {
		t.Errorf("DisplayName() = %q, expected #3", got)
	}
}

func TestInputs(t *testing.T) {
	config := Configuration{
		Loans: []Loan{
			{Name: "Mortgage", Principal: 1000, Term: 12},
			{Name: "", Principal: 500, Term: 6, Method: "Balloon"},
		},
	}
	inputs, err := config.Inputs()
	if err != nil {
		t.Fatalf("Inputs() unexpected error = %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("Inputs() returned %d inputs, expected 2", len(inputs))
	}
	if inputs[0].Name != "Mortgage" || inputs[1].Method != loans.Balloon {
		t.Errorf("Inputs() = %+v", inputs)
	}

	config.Loans = append(config.Loans, Loan{Name: "Bad", Method: "bullet"})
	if _, err := config.Inputs(); err == nil {
		t.Error("Inputs() expected error for unknown method")
	}
}
