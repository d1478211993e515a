package loans

import (
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
)

// Method selects how principal is repaid over the term.
type Method int

const (
	// FixedPayment (Spitzer / annuity) keeps the total monthly payment level.
	FixedPayment Method = iota
	// EqualPrincipal repays the same principal every month; interest shrinks.
	EqualPrincipal
	// Balloon pays interest only and the whole principal in the final month.
	Balloon
)

var methodNames = map[Method]string{
	FixedPayment:   constants.MethodFixedPayment,
	EqualPrincipal: constants.MethodEqualPrincipal,
	Balloon:        constants.MethodBalloon,
}

// Methods lists every supported method in display order.
func Methods() []Method {
	return []Method{FixedPayment, EqualPrincipal, Balloon}
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod accepts the canonical method names case-insensitively, plus the
// "Spitzer" and "annuity" aliases for FixedPayment.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fixedpayment", "spitzer", "annuity", "fixed-payment", "fixed_payment":
		return FixedPayment, nil
	case "equalprincipal", "equal-principal", "equal_principal":
		return EqualPrincipal, nil
	case "balloon":
		return Balloon, nil
	}
	names := make([]string, 0, len(methodNames))
	for _, m := range Methods() {
		names = append(names, m.String())
	}
	return FixedPayment, fmt.Errorf("unknown amortization method %q: expected one of %s",
		name, strings.Join(names, ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Loan holds the parameters of a single loan. It is treated as immutable by
// every function in this package.
type Loan struct {
	Principal                 float64 `json:"principal"`
	FixedAnnualRatePercent    float64 `json:"fixedRate"`
	VariableAnnualRatePercent float64 `json:"variableRate"`
	TermMonths                int     `json:"term"`
	Method                    Method  `json:"method"`
	// StartDate is optional. Empty or unparseable values leave every
	// schedule entry without a due date.
	StartDate string `json:"startDate,omitempty"`
}

// MonthlyRate is the combined fixed and variable annual rate, per month.
func (l Loan) MonthlyRate() float64 {
	return mathutil.MonthlyRate(l.FixedAnnualRatePercent, l.VariableAnnualRatePercent)
}

// Start returns the parsed start date, if there is one.
func (l Loan) Start() (time.Time, bool) {
	return datetime.ParseDate(l.StartDate)
}

// ScheduleEntry is one month of an amortization schedule.
type ScheduleEntry struct {
	Month            int        `json:"month"`
	Interest         float64    `json:"interest"`
	Principal        float64    `json:"principal"`
	RemainingBalance float64    `json:"balance"`
	DueDate          *time.Time `json:"dueDate,omitempty"`
}

// Total is the full payment due for the month.
func (e ScheduleEntry) Total() float64 {
	return e.Interest + e.Principal
}

// Schedule is an amortization schedule in chronological order.
type Schedule []ScheduleEntry

// TotalInterest sums the interest of every entry.
func (s Schedule) TotalInterest() float64 {
	total := 0.0
	for _, entry := range s {
		total += entry.Interest
	}
	return total
}

// TotalPrincipal sums the principal of every entry.
func (s Schedule) TotalPrincipal() float64 {
	total := 0.0
	for _, entry := range s {
		total += entry.Principal
	}
	return total
}

// ProgressSummary describes how far into its schedule a loan is at a given
// moment.
type ProgressSummary struct {
	ElapsedMonths      int            `json:"elapsedMonths"`
	MonthsLeft         int            `json:"monthsLeft"`
	TotalInterest      float64        `json:"totalInterest"`
	TotalPrincipal     float64        `json:"totalPrincipal"`
	InterestPaid       float64        `json:"interestPaid"`
	PrincipalPaid      float64        `json:"principalPaid"`
	InterestRemaining  float64        `json:"interestRemaining"`
	PrincipalRemaining float64        `json:"principalRemaining"`
	NextPayment        *ScheduleEntry `json:"nextPayment,omitempty"`
}

// FullyPaid reports whether there is no future payment left on the schedule.
func (p ProgressSummary) FullyPaid() bool {
	return p.NextPayment == nil
}
