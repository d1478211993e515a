// Package book holds the session's loans in memory and derives schedules,
// progress summaries and comparison data from them on demand.
package book

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/loan-schedule/internal/metrics"
	"github.com/iwvelando/loan-schedule/pkg/loans"
	"go.uber.org/zap"
)

// ErrLoanNotFound is returned when an id does not name a loan in the book.
var ErrLoanNotFound = errors.New("loan not found")

// Input is a loan as entered by the user.
type Input struct {
	Name string `json:"name"`
	loans.Loan
}

// Record is a loan held by the book.
type Record struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	loans.Loan
}

// View is a record with everything derived from it at a point in time.
type View struct {
	Record
	Schedule loans.Schedule        `json:"schedule"`
	Summary  loans.ProgressSummary `json:"summary"`
}

// ComparisonPoint is one loan's entry in the side-by-side comparison.
type ComparisonPoint struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Method         loans.Method `json:"method"`
	TotalInterest  float64      `json:"totalInterest"`
	TotalPrincipal float64      `json:"totalPrincipal"`
}

// Book is an in-memory, insertion-ordered list of loans. It is safe for
// concurrent use.
type Book struct {
	mu      sync.RWMutex
	records []Record
	logger  *zap.Logger
	newID   func() string
	clock   func() time.Time
}

// New creates an empty loan book.
func New(logger *zap.Logger) *Book {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Book{
		logger: logger,
		newID:  newID,
		clock:  time.Now,
	}
}

// newID returns a timestamp-ordered UUID, falling back to a random one if
// the v7 generator fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Add stores a new loan and returns its record. A blank name is replaced
// with "Loan #<id>".
func (b *Book) Add(in Input) Record {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.newID()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = fmt.Sprintf("Loan #%s", id)
	}
	record := Record{
		ID:        id,
		Name:      name,
		CreatedAt: b.clock(),
		Loan:      in.Loan,
	}
	b.records = append(b.records, record)
	metrics.LoansHeld.Set(float64(len(b.records)))

	b.logger.Debug("loan added",
		zap.String("op", "book.Add"),
		zap.String("id", id),
		zap.String("name", name),
		zap.Stringer("method", in.Method),
	)
	return record
}

// Update replaces the loan parameters of an existing record. A blank name
// keeps the current one.
func (b *Book) Update(id string, in Input) (Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return Record{}, fmt.Errorf("update %s: %w", id, ErrLoanNotFound)
	}
	record := &b.records[i]
	if name := strings.TrimSpace(in.Name); name != "" {
		record.Name = name
	}
	record.Loan = in.Loan

	b.logger.Debug("loan updated",
		zap.String("op", "book.Update"),
		zap.String("id", id),
		zap.String("name", record.Name),
	)
	return *record, nil
}

// Remove deletes a loan from the book.
func (b *Book) Remove(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return fmt.Errorf("remove %s: %w", id, ErrLoanNotFound)
	}
	b.records = append(b.records[:i], b.records[i+1:]...)
	metrics.LoansHeld.Set(float64(len(b.records)))

	b.logger.Debug("loan removed",
		zap.String("op", "book.Remove"),
		zap.String("id", id),
	)
	return nil
}

// Get returns the record with the given id.
func (b *Book) Get(id string) (Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i := b.indexOf(id)
	if i < 0 {
		return Record{}, fmt.Errorf("get %s: %w", id, ErrLoanNotFound)
	}
	return b.records[i], nil
}

// FindByName returns the first record whose name matches case-insensitively.
func (b *Book) FindByName(name string) (Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, record := range b.records {
		if strings.EqualFold(record.Name, strings.TrimSpace(name)) {
			return record, nil
		}
	}
	return Record{}, fmt.Errorf("find %q: %w", name, ErrLoanNotFound)
}

// List returns a copy of every record in insertion order.
func (b *Book) List() []Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out
}

// Len is the number of loans in the book.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.records)
}

// View computes the schedule and progress summary of one loan as of now.
func (b *Book) View(id string, now time.Time) (View, error) {
	record, err := b.Get(id)
	if err != nil {
		return View{}, err
	}
	return Derive(record, now), nil
}

// Views computes every loan's view as of now, in insertion order.
func (b *Book) Views(now time.Time) []View {
	records := b.List()
	views := make([]View, 0, len(records))
	for _, record := range records {
		views = append(views, Derive(record, now))
	}
	return views
}

// Comparison returns the total interest and principal of every loan. The
// totals are taken from the same summaries Views returns for now.
func (b *Book) Comparison(now time.Time) []ComparisonPoint {
	views := b.Views(now)
	points := make([]ComparisonPoint, 0, len(views))
	for _, view := range views {
		points = append(points, ComparisonPoint{
			ID:             view.ID,
			Name:           view.Name,
			Method:         view.Method,
			TotalInterest:  view.Summary.TotalInterest,
			TotalPrincipal: view.Summary.TotalPrincipal,
		})
	}
	return points
}

// Compute wraps loans.ComputeSchedule with metrics.
func Compute(loan loans.Loan) loans.Schedule {
	metrics.SchedulesComputed.WithLabelValues(loan.Method.String()).Inc()
	return loans.ComputeSchedule(loan)
}

// Derive computes the view of a record as of now.
func Derive(record Record, now time.Time) View {
	schedule := Compute(record.Loan)
	return View{
		Record:   record,
		Schedule: schedule,
		Summary:  loans.Summarize(record.Loan, schedule, now),
	}
}

func (b *Book) indexOf(id string) int {
	for i, record := range b.records {
		if record.ID == id {
			return i
		}
	}
	return -1
}
