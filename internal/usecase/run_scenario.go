package usecase

import (
	"context"
	"fmt"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// Scenario phases reported by StepError.
const (
	PhaseEmployees = "employees"
	PhaseProjects  = "projects"
	PhaseSteps     = "steps"
)

// StepError locates a failing scenario entry. It unwraps to the underlying domain error.
type StepError struct {
	Err   error
	Phase string
	Op    domain.StepOp // Empty outside the steps phase
	Index int           // Zero-based within the phase
}

func (e *StepError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s[%d] (%s): %v", e.Phase, e.Index, e.Op, e.Err)
	}
	return fmt.Sprintf("%s[%d]: %v", e.Phase, e.Index, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// RunScenarioInput contains the scenario to apply.
type RunScenarioInput struct {
	Scenario        *domain.Scenario
	ContinueOnError bool // Record failures and keep going instead of stopping
}

// RunScenarioOutput summarizes what was applied.
type RunScenarioOutput struct {
	EmployeeIDs []int
	ProjectIDs  []int
	Failures    []*StepError
	Applied     int // Steps that succeeded
}

// RunScenario is the use case for applying a batch of registrations and operations in order.
// Fields are ordered to minimize memory padding.
type RunScenario struct {
	registerEmployee *RegisterEmployee
	registerProject  *RegisterProject
	assign           *AssignEmployee
	reassign         *ReassignEmployee
	delay            *RegisterDelay
	addTask          *AddTask
	finalizeTask     *FinalizeTask
	finalizeProject  *FinalizeProject
}

// NewRunScenario creates a new RunScenario use case from the use cases it drives.
func NewRunScenario(
	registerEmployee *RegisterEmployee,
	registerProject *RegisterProject,
	assign *AssignEmployee,
	reassign *ReassignEmployee,
	delay *RegisterDelay,
	addTask *AddTask,
	finalizeTask *FinalizeTask,
	finalizeProject *FinalizeProject,
) *RunScenario {
	return &RunScenario{
		registerEmployee: registerEmployee,
		registerProject:  registerProject,
		assign:           assign,
		reassign:         reassign,
		delay:            delay,
		addTask:          addTask,
		finalizeTask:     finalizeTask,
		finalizeProject:  finalizeProject,
	}
}

// Execute registers employees, then projects, then applies each step.
// It stops at the first failure unless ContinueOnError is set; the returned error is a *StepError.
func (uc *RunScenario) Execute(ctx context.Context, in RunScenarioInput) (*RunScenarioOutput, error) {
	out := &RunScenarioOutput{}
	if in.Scenario == nil {
		return out, nil
	}

	// fail records a failure and reports whether execution should stop.
	fail := func(se *StepError) bool {
		out.Failures = append(out.Failures, se)
		return !in.ContinueOnError
	}

	for i, spec := range in.Scenario.Employees {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		res, err := uc.registerEmployee.Execute(ctx, RegisterEmployeeInput{
			Name:     spec.Name,
			Kind:     spec.Kind,
			Category: spec.Category,
			Rate:     spec.Rate,
		})
		if err != nil {
			if se := (&StepError{Phase: PhaseEmployees, Index: i, Err: err}); fail(se) {
				return out, se
			}
			continue
		}
		out.EmployeeIDs = append(out.EmployeeIDs, res.EmployeeID)
	}

	for i, spec := range in.Scenario.Projects {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		res, err := uc.registerProject.Execute(ctx, RegisterProjectInput{Spec: spec})
		if err != nil {
			if se := (&StepError{Phase: PhaseProjects, Index: i, Err: err}); fail(se) {
				return out, se
			}
			continue
		}
		out.ProjectIDs = append(out.ProjectIDs, res.ProjectID)
	}

	for i, step := range in.Scenario.Steps {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if err := uc.apply(ctx, step); err != nil {
			if se := (&StepError{Phase: PhaseSteps, Index: i, Op: step.Op, Err: err}); fail(se) {
				return out, se
			}
			continue
		}
		out.Applied++
	}

	if len(out.Failures) > 0 {
		return out, out.Failures[0]
	}
	return out, nil
}

func (uc *RunScenario) apply(ctx context.Context, step domain.Step) error {
	switch step.Op {
	case domain.OpAssign:
		_, err := uc.assign.Execute(ctx, AssignEmployeeInput{
			ProjectID:  step.ProjectID,
			Title:      step.Title,
			Policy:     step.Policy,
			EmployeeID: step.EmployeeID,
		})
		return err
	case domain.OpReassign:
		_, err := uc.reassign.Execute(ctx, ReassignEmployeeInput{
			ProjectID:  step.ProjectID,
			Title:      step.Title,
			Policy:     step.Policy,
			EmployeeID: step.EmployeeID,
		})
		return err
	case domain.OpDelay:
		_, err := uc.delay.Execute(ctx, RegisterDelayInput{
			ProjectID: step.ProjectID,
			Title:     step.Title,
			Days:      step.Days,
		})
		return err
	case domain.OpAddTask:
		return uc.addTask.Execute(ctx, AddTaskInput{
			ProjectID:   step.ProjectID,
			Title:       step.Title,
			Description: step.Description,
			Days:        step.Days,
		})
	case domain.OpFinalizeTask:
		return uc.finalizeTask.Execute(ctx, FinalizeTaskInput{
			ProjectID: step.ProjectID,
			Title:     step.Title,
		})
	case domain.OpFinalize:
		_, err := uc.finalizeProject.Execute(ctx, FinalizeProjectInput{
			ProjectID: step.ProjectID,
			Date:      step.Date,
		})
		return err
	default:
		return fmt.Errorf("%w: unknown step op %q", domain.ErrInvalidArgument, step.Op)
	}
}
