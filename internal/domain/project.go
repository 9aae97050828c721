package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProjectSpec holds the parameters for a new project.
// Fields are ordered to minimize memory padding.
type ProjectSpec struct {
	Start    Date
	Estimate Date
	Client   *Client // Optional
	Address  string
	Tasks    []TaskSpec // At least one
}

// Project is the aggregate of tasks commissioned by a client.
// It owns the state machine and the cached cost.
// Fields are ordered to minimize memory padding.
type Project struct {
	start    Date
	estimate Date
	actual   Date
	cost     decimal.Decimal
	roster   Roster
	client   *Client
	address  string
	state    State
	tasks    []*Task
	history  []int // Every employee ever assigned, in insertion order
	id       int
}

// NewProject validates spec and creates a pending project.
// The actual completion date starts out equal to the estimate.
func NewProject(id int, roster Roster, spec ProjectSpec) (*Project, error) {
	if id <= 0 {
		return nil, fmt.Errorf("project: %w: %d", ErrInvalidID, id)
	}
	if len(spec.Tasks) == 0 {
		return nil, ErrNoTasks
	}
	if spec.Start.IsZero() || spec.Estimate.IsZero() {
		return nil, fmt.Errorf("%w: start and estimate dates are required", ErrInvalidDate)
	}
	if spec.Estimate.Before(spec.Start) {
		return nil, fmt.Errorf("%w: %s < %s", ErrEstimateBeforeStart, spec.Estimate, spec.Start)
	}
	p := &Project{
		id:       id,
		roster:   roster,
		client:   spec.Client,
		address:  spec.Address,
		start:    spec.Start,
		estimate: spec.Estimate,
		actual:   spec.Estimate,
		state:    StatePending,
		cost:     decimal.Zero,
	}
	for i, ts := range spec.Tasks {
		if p.findTask(ts.Title) != nil {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTask, ts.Title)
		}
		t, err := NewTask(roster, ts.Title, ts.Description, ts.Days)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		p.tasks = append(p.tasks, t)
	}
	return p, nil
}

// ID returns the project number.
func (p *Project) ID() int { return p.id }

// Client returns the client, or nil when none was given.
func (p *Project) Client() *Client { return p.client }

// Address returns the work site address.
func (p *Project) Address() string { return p.address }

// State returns the current state.
func (p *Project) State() State { return p.state }

// Start returns the planned start date.
func (p *Project) Start() Date { return p.start }

// Estimate returns the planned completion date.
func (p *Project) Estimate() Date { return p.estimate }

// Actual returns the actual completion date; equal to the estimate until finalized.
func (p *Project) Actual() Date { return p.actual }

// Cost returns the cost computed after the last mutation.
func (p *Project) Cost() decimal.Decimal { return p.cost }

// IsFinalized reports whether the project is closed.
func (p *Project) IsFinalized() bool { return p.state == StateFinalized }

// Task returns the task with title.
func (p *Project) Task(title string) (*Task, error) {
	t := p.findTask(title)
	if t == nil {
		return nil, fmt.Errorf("%w: %q in project %d", ErrTaskNotFound, title, p.id)
	}
	return t, nil
}

// Tasks returns every task in insertion order.
func (p *Project) Tasks() []*Task {
	return append([]*Task(nil), p.tasks...)
}

// UnassignedTasks returns the tasks no employee holds.
func (p *Project) UnassignedTasks() []*Task {
	var res []*Task
	for _, t := range p.tasks {
		if !t.IsAssigned() {
			res = append(res, t)
		}
	}
	return res
}

// HasDelays reports whether any task accumulated delay.
func (p *Project) HasDelays() bool {
	for _, t := range p.tasks {
		if t.HasDelay() {
			return true
		}
	}
	return false
}

// CurrentEmployees returns the distinct employees on assigned, unfinished tasks.
func (p *Project) CurrentEmployees() ([]*Employee, error) {
	var ids []int
	for _, t := range p.tasks {
		if t.IsAssigned() && !t.IsFinalized() {
			ids = appendUnique(ids, t.EmployeeID())
		}
	}
	return p.resolve(ids)
}

// History returns every employee ever assigned to the project, in order of first assignment.
func (p *Project) History() ([]*Employee, error) {
	return p.resolve(p.history)
}

// AssignEmployee gives the task named title to e.
// The first successful assignment activates a pending project.
func (p *Project) AssignEmployee(title string, e *Employee) error {
	t, err := p.mutableTask(title)
	if err != nil {
		return err
	}
	if err := t.AssignEmployee(e); err != nil {
		return err
	}
	p.history = appendUnique(p.history, e.ID())
	if p.state == StatePending {
		p.transition(StateActive)
	}
	p.refreshCost()
	return nil
}

// ReassignEmployee hands the task named title to e. It never activates the project.
func (p *Project) ReassignEmployee(title string, e *Employee) error {
	t, err := p.mutableTask(title)
	if err != nil {
		return err
	}
	if err := t.ReassignEmployee(e); err != nil {
		return err
	}
	p.history = appendUnique(p.history, e.ID())
	p.refreshCost()
	return nil
}

// RegisterDelay adds days of delay to the task named title.
func (p *Project) RegisterDelay(title string, days decimal.Decimal) error {
	t, err := p.mutableTask(title)
	if err != nil {
		return err
	}
	if err := t.RegisterDelay(days); err != nil {
		return err
	}
	p.refreshCost()
	return nil
}

// AddTask appends a new unassigned task. State and cost are left as they are.
func (p *Project) AddTask(title, description string, days decimal.Decimal) error {
	if p.IsFinalized() {
		return fmt.Errorf("project %d: %w", p.id, ErrProjectFinalized)
	}
	if p.findTask(title) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateTask, title)
	}
	t, err := NewTask(p.roster, title, description, days)
	if err != nil {
		return err
	}
	p.tasks = append(p.tasks, t)
	return nil
}

// FinalizeTask completes the task named title and frees its employee.
func (p *Project) FinalizeTask(title string) error {
	t, err := p.mutableTask(title)
	if err != nil {
		return err
	}
	if err := t.Finalize(); err != nil {
		return err
	}
	p.refreshCost()
	return nil
}

// Finalize closes the project on date. Employees still holding unfinished tasks are
// released without finalizing those tasks. The cost is computed one last time.
func (p *Project) Finalize(date Date) error {
	if p.IsFinalized() {
		return fmt.Errorf("project %d: %w", p.id, ErrAlreadyFinalized)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: completion date is required", ErrInvalidDate)
	}
	if date.Before(p.start) {
		return fmt.Errorf("%w: %s < %s", ErrFinishBeforeStart, date, p.start)
	}
	var holders []*Employee
	for _, t := range p.tasks {
		if !t.IsAssigned() || t.IsFinalized() {
			continue
		}
		e, _, err := t.Employee()
		if err != nil {
			return err
		}
		holders = append(holders, e)
	}
	p.actual = date
	p.transition(StateFinalized)
	for _, e := range holders {
		e.Release()
	}
	p.refreshCost()
	return nil
}

// mutableTask returns the task named title when the project still accepts changes.
func (p *Project) mutableTask(title string) (*Task, error) {
	if p.IsFinalized() {
		return nil, fmt.Errorf("project %d: %w", p.id, ErrProjectFinalized)
	}
	return p.Task(title)
}

func (p *Project) transition(target State) {
	if p.state.CanTransitionTo(target) {
		p.state = target
	}
}

func (p *Project) refreshCost() {
	p.cost = p.CalculateCost()
}

func (p *Project) findTask(title string) *Task {
	for _, t := range p.tasks {
		if t.Title() == title {
			return t
		}
	}
	return nil
}

func (p *Project) resolve(ids []int) ([]*Employee, error) {
	res := make([]*Employee, 0, len(ids))
	for _, id := range ids {
		e, err := p.roster.Employee(id)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

func appendUnique(ids []int, id int) []int {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
