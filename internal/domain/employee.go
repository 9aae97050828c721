package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind tags the pay scheme of an employee.
type Kind string

const (
	KindHourly   Kind = "hourly"   // Contracted, paid hourly rate × 8 per day
	KindSalaried Kind = "salaried" // Staff, paid a daily rate with an on-time bonus
)

// ParseKind parses an employee kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindHourly, KindSalaried:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// Display returns a human-readable representation of the kind.
func (k Kind) Display() string {
	switch k {
	case KindHourly:
		return "Contracted"
	case KindSalaried:
		return "Staff"
	default:
		return string(k)
	}
}

// Category is the seniority of a salaried employee.
type Category string

const (
	CategoryInitial   Category = "INITIAL"
	CategoryTechnical Category = "TECHNICAL"
	CategoryExpert    Category = "EXPERT"
)

// ParseCategory parses a category label, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToUpper(strings.TrimSpace(s))); c {
	case CategoryInitial, CategoryTechnical, CategoryExpert:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
}

const hoursPerDay = 8

var onTimeBonus = decimal.RequireFromString("1.02")

// Employee is a worker that can hold at most one unfinished task at a time.
// Fields are ordered to minimize memory padding.
type Employee struct {
	rate     decimal.Decimal // Hourly rate for KindHourly, daily rate for KindSalaried
	name     string
	kind     Kind
	category Category // Empty for KindHourly
	id       int
	delays   int
	busy     bool
}

// NewHourlyEmployee creates a contracted employee paid by the hour.
func NewHourlyEmployee(id int, name string, hourlyRate decimal.Decimal) (*Employee, error) {
	if err := validateEmployee(id, name, hourlyRate); err != nil {
		return nil, err
	}
	return &Employee{id: id, name: name, kind: KindHourly, rate: hourlyRate}, nil
}

// NewSalariedEmployee creates a staff employee paid by the day.
func NewSalariedEmployee(id int, name string, dailyRate decimal.Decimal, category Category) (*Employee, error) {
	if err := validateEmployee(id, name, dailyRate); err != nil {
		return nil, err
	}
	category, err := ParseCategory(string(category))
	if err != nil {
		return nil, err
	}
	return &Employee{id: id, name: name, kind: KindSalaried, rate: dailyRate, category: category}, nil
}

func validateEmployee(id int, name string, rate decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	if !rate.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidRate, rate)
	}
	return nil
}

// ID returns the employee number.
func (e *Employee) ID() int { return e.id }

// Name returns the employee name.
func (e *Employee) Name() string { return e.name }

// Kind returns the pay scheme.
func (e *Employee) Kind() Kind { return e.kind }

// Category returns the category of a salaried employee, empty otherwise.
func (e *Employee) Category() Category { return e.category }

// Rate returns the hourly or daily rate depending on Kind.
func (e *Employee) Rate() decimal.Decimal { return e.rate }

// Assign marks the employee busy.
func (e *Employee) Assign() error {
	if e.busy {
		return fmt.Errorf("%w: employee %d", ErrAlreadyBusy, e.id)
	}
	e.busy = true
	return nil
}

// Release marks the employee free. Releasing a free employee is a no-op.
func (e *Employee) Release() {
	e.busy = false
}

// IsFree reports whether the employee holds no unfinished task.
func (e *Employee) IsFree() bool { return !e.busy }

// RecordDelay increments the delay counter.
func (e *Employee) RecordDelay() {
	e.delays++
}

// Delays returns how many delays have been recorded against the employee.
func (e *Employee) Delays() int { return e.delays }

// Pay returns what the employee earns for days of work. It does not mutate the employee.
func (e *Employee) Pay(days decimal.Decimal) decimal.Decimal {
	switch e.kind {
	case KindHourly:
		return e.rate.Mul(decimal.NewFromInt(hoursPerDay)).Mul(days)
	case KindSalaried:
		pay := e.rate.Mul(days)
		if e.delays == 0 {
			pay = pay.Mul(onTimeBonus)
		}
		return pay
	default:
		return decimal.Zero
	}
}

// String returns a one-line description, e.g. "3 - Ana (Delays: 1) - Staff (EXPERT, $100/day)".
func (e *Employee) String() string {
	base := fmt.Sprintf("%d - %s (Delays: %d)", e.id, e.name, e.delays)
	if e.kind == KindSalaried {
		return fmt.Sprintf("%s - %s (%s, $%s/day)", base, e.kind.Display(), e.category, e.rate)
	}
	return fmt.Sprintf("%s - %s ($%s/hour)", base, e.kind.Display(), e.rate)
}
