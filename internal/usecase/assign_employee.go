package usecase

import (
	"context"
	"fmt"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// AssignEmployeeInput contains the parameters for assigning an employee to a task.
// Fields are ordered to minimize memory padding.
type AssignEmployeeInput struct {
	Title      string              // Task title (required)
	Policy     domain.AssignPolicy // Empty = specific when EmployeeID is set, else the configured default
	ProjectID  int                 // Project ID (required)
	EmployeeID int                 // Employee ID for the specific policy
}

// AssignEmployeeOutput contains the result of an assignment.
type AssignEmployeeOutput struct {
	EmployeeID int // The employee that took the task
}

// AssignEmployee is the use case for giving a task to an employee.
type AssignEmployee struct {
	projects      domain.ProjectRepository
	employees     domain.EmployeeRepository
	logger        domain.Logger
	defaultPolicy domain.AssignPolicy
}

// NewAssignEmployee creates a new AssignEmployee use case.
// defaultPolicy applies when the input names neither a policy nor an employee.
func NewAssignEmployee(projects domain.ProjectRepository, employees domain.EmployeeRepository, logger domain.Logger, defaultPolicy domain.AssignPolicy) *AssignEmployee {
	return &AssignEmployee{
		projects:      projects,
		employees:     employees,
		logger:        logger,
		defaultPolicy: defaultPolicy,
	}
}

// Execute assigns the selected employee and activates a pending project.
func (uc *AssignEmployee) Execute(_ context.Context, in AssignEmployeeInput) (*AssignEmployeeOutput, error) {
	p, err := openProject(uc.projects, in.ProjectID)
	if err != nil {
		return nil, rejected(uc.logger, in.ProjectID, "assign", err)
	}

	policy := resolvePolicy(in.Policy, in.EmployeeID, uc.defaultPolicy)
	e, err := selectEmployee(uc.employees, policy, in.EmployeeID)
	if err != nil {
		return nil, rejected(uc.logger, in.ProjectID, "assign", err)
	}

	if err := p.AssignEmployee(in.Title, e); err != nil {
		return nil, rejected(uc.logger, in.ProjectID, "assign", err)
	}

	if err := uc.projects.Save(p); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	logInfo(uc.logger, in.ProjectID, "assign", fmt.Sprintf("employee %d assigned to %q (%s)", e.ID(), in.Title, policy))
	return &AssignEmployeeOutput{EmployeeID: e.ID()}, nil
}

func resolvePolicy(policy domain.AssignPolicy, employeeID int, def domain.AssignPolicy) domain.AssignPolicy {
	switch {
	case policy != "":
		return policy
	case employeeID != 0:
		return domain.PolicySpecific
	case def != "":
		return def
	default:
		return domain.DefaultAssignPolicy
	}
}

// selectEmployee picks the employee for policy. The specific policy does not check
// availability; the task operation reports a busy employee.
func selectEmployee(employees domain.EmployeeRepository, policy domain.AssignPolicy, employeeID int) (*domain.Employee, error) {
	switch policy {
	case domain.PolicySpecific:
		if employeeID <= 0 {
			return nil, fmt.Errorf("%w: specific policy needs an employee id", domain.ErrInvalidID)
		}
		return employees.Employee(employeeID)
	case domain.PolicyFirstFree, domain.PolicyLeastDelays:
		free, err := employees.List(domain.EmployeeFilter{FreeOnly: true})
		if err != nil {
			return nil, fmt.Errorf("list employees: %w", err)
		}
		if policy == domain.PolicyFirstFree {
			return domain.FirstFree(free)
		}
		return domain.LeastDelayedFree(free)
	default:
		return nil, fmt.Errorf("%w: unknown assignment policy %q", domain.ErrInvalidArgument, policy)
	}
}

// openProject returns the project when it still accepts changes.
func openProject(projects domain.ProjectRepository, id int) (*domain.Project, error) {
	p, err := projects.Get(id)
	if err != nil {
		return nil, err
	}
	if p.IsFinalized() {
		return nil, fmt.Errorf("project %d: %w", id, domain.ErrProjectFinalized)
	}
	return p, nil
}
