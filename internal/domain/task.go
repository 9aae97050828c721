package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TaskState is the derived lifecycle state of a task.
type TaskState string

const (
	TaskUnassigned TaskState = "unassigned"
	TaskAssigned   TaskState = "assigned"
	TaskFinalized  TaskState = "finalized"
)

// TaskSpec describes a task to be created with a project.
type TaskSpec struct {
	Days        decimal.Decimal
	Title       string
	Description string
}

// Task is a unit of project work.
// The employee is held by id; the Roster owns busy and delay state.
// Fields are ordered to minimize memory padding.
type Task struct {
	required    decimal.Decimal
	delay       decimal.Decimal
	roster      Roster
	title       string
	description string
	employeeID  int // 0 = no employee
	finalized   bool
}

// NewTask creates an unassigned task whose employees are resolved through roster.
func NewTask(roster Roster, title, description string, days decimal.Decimal) (*Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if !days.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDays, days)
	}
	return &Task{
		roster:      roster,
		title:       title,
		description: description,
		required:    days,
		delay:       decimal.Zero,
	}, nil
}

// Title returns the task title, unique within its project.
func (t *Task) Title() string { return t.title }

// Description returns the task description.
func (t *Task) Description() string { return t.description }

// RequiredDays returns the planned duration.
func (t *Task) RequiredDays() decimal.Decimal { return t.required }

// DelayDays returns the accumulated delay.
func (t *Task) DelayDays() decimal.Decimal { return t.delay }

// EmployeeID returns the assigned employee id, or 0 when unassigned.
func (t *Task) EmployeeID() int { return t.employeeID }

// IsAssigned reports whether an employee holds the task.
func (t *Task) IsAssigned() bool { return t.employeeID != 0 }

// IsFinalized reports whether the task is complete.
func (t *Task) IsFinalized() bool { return t.finalized }

// HasDelay reports whether any delay was registered.
func (t *Task) HasDelay() bool { return t.delay.IsPositive() }

// State returns the task lifecycle state.
func (t *Task) State() TaskState {
	switch {
	case t.finalized:
		return TaskFinalized
	case t.employeeID != 0:
		return TaskAssigned
	default:
		return TaskUnassigned
	}
}

// EffectiveDuration is the number of days fed into pay calculation.
func (t *Task) EffectiveDuration() decimal.Decimal {
	return t.required.Add(t.delay)
}

// Employee resolves the assigned employee. ok is false when unassigned.
func (t *Task) Employee() (e *Employee, ok bool, err error) {
	if t.employeeID == 0 {
		return nil, false, nil
	}
	e, err = t.roster.Employee(t.employeeID)
	if err != nil {
		return nil, false, fmt.Errorf("task %q: %w", t.title, err)
	}
	return e, true, nil
}

// AssignEmployee gives the task to e and marks e busy.
func (t *Task) AssignEmployee(e *Employee) error {
	if t.finalized {
		return fmt.Errorf("task %q: %w", t.title, ErrAlreadyFinalized)
	}
	if t.employeeID != 0 {
		return fmt.Errorf("task %q held by employee %d: %w", t.title, t.employeeID, ErrAlreadyAssigned)
	}
	if !e.IsFree() {
		return fmt.Errorf("employee %d: %w", e.ID(), ErrEmployeeBusy)
	}
	if err := e.Assign(); err != nil {
		return err
	}
	t.employeeID = e.ID()
	return nil
}

// ReassignEmployee hands the task from its current employee to e.
// The previous employee is released and e is marked busy in the same call.
func (t *Task) ReassignEmployee(e *Employee) error {
	if t.finalized {
		return fmt.Errorf("task %q: %w", t.title, ErrAlreadyFinalized)
	}
	if t.employeeID == 0 {
		return fmt.Errorf("task %q: %w", t.title, ErrNoCurrentAssignment)
	}
	if !e.IsFree() {
		return fmt.Errorf("employee %d: %w", e.ID(), ErrEmployeeBusy)
	}
	prev, _, err := t.Employee()
	if err != nil {
		return err
	}
	if err := e.Assign(); err != nil {
		return err
	}
	prev.Release()
	t.employeeID = e.ID()
	return nil
}

// RegisterDelay adds days of delay and records a delay against the assigned employee.
func (t *Task) RegisterDelay(days decimal.Decimal) error {
	if !days.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidDays, days)
	}
	if t.finalized {
		return fmt.Errorf("task %q: %w", t.title, ErrAlreadyFinalized)
	}
	e, ok, err := t.Employee()
	if err != nil {
		return err
	}
	t.delay = t.delay.Add(days)
	if ok {
		e.RecordDelay()
	}
	return nil
}

// Finalize completes the task and frees its employee, delays notwithstanding.
func (t *Task) Finalize() error {
	if t.finalized {
		return fmt.Errorf("task %q: %w", t.title, ErrAlreadyFinalized)
	}
	e, ok, err := t.Employee()
	if err != nil {
		return err
	}
	t.finalized = true
	if ok {
		e.Release()
	}
	return nil
}

// Pay returns the labor cost of the task, zero when unassigned.
func (t *Task) Pay() (decimal.Decimal, error) {
	e, ok, err := t.Employee()
	if err != nil || !ok {
		return decimal.Zero, err
	}
	return e.Pay(t.EffectiveDuration()), nil
}

// String returns the task title.
func (t *Task) String() string { return t.title }
