package usecase

import (
	"context"
	"fmt"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// ReassignEmployeeInput contains the parameters for handing a task to another employee.
// Fields are ordered to minimize memory padding.
type ReassignEmployeeInput struct {
	Title      string              // Task title (required)
	Policy     domain.AssignPolicy // specific or least-delays; empty picks from EmployeeID
	ProjectID  int                 // Project ID (required)
	EmployeeID int                 // Employee ID for the specific policy
}

// ReassignEmployeeOutput contains the result of a reassignment.
type ReassignEmployeeOutput struct {
	PreviousEmployeeID int
	EmployeeID         int
}

// ReassignEmployee is the use case for replacing the employee of an assigned task.
type ReassignEmployee struct {
	projects  domain.ProjectRepository
	employees domain.EmployeeRepository
	logger    domain.Logger
}

// NewReassignEmployee creates a new ReassignEmployee use case.
func NewReassignEmployee(projects domain.ProjectRepository, employees domain.EmployeeRepository, logger domain.Logger) *ReassignEmployee {
	return &ReassignEmployee{projects: projects, employees: employees, logger: logger}
}

// Execute releases the current holder and assigns the selected employee in one step.
func (uc *ReassignEmployee) Execute(_ context.Context, in ReassignEmployeeInput) (*ReassignEmployeeOutput, error) {
	p, err := openProject(uc.projects, in.ProjectID)
	if err != nil {
		return nil, rejected(uc.logger, in.ProjectID, "reassign", err)
	}

	policy := in.Policy
	if policy == "" {
		policy = domain.PolicySpecific
		if in.EmployeeID == 0 {
			policy = domain.PolicyLeastDelays
		}
	}
	if policy == domain.PolicyFirstFree {
		err := fmt.Errorf("%w: reassignment supports specific or least-delays", domain.ErrInvalidArgument)
		return nil, rejected(uc.logger, in.ProjectID, "reassign", err)
	}

	e, err := selectEmployee(uc.employees, policy, in.EmployeeID)
	if err != nil {
		return nil, rejected(uc.logger, in.ProjectID, "reassign", err)
	}

	task, err := p.Task(in.Title)
	if err != nil {
		return nil, rejected(uc.logger, in.ProjectID, "reassign", err)
	}
	previous := task.EmployeeID()

	if err := p.ReassignEmployee(in.Title, e); err != nil {
		return nil, rejected(uc.logger, in.ProjectID, "reassign", err)
	}

	if err := uc.projects.Save(p); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	logInfo(uc.logger, in.ProjectID, "reassign", fmt.Sprintf("%q moved from employee %d to %d", in.Title, previous, e.ID()))
	return &ReassignEmployeeOutput{PreviousEmployeeID: previous, EmployeeID: e.ID()}, nil
}
