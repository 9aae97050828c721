package usecase

import (
	"context"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// ProjectEmployeesInput contains the parameters for a project staffing query.
type ProjectEmployeesInput struct {
	ProjectID int
}

// ProjectEmployeesOutput lists who works on a project now and who ever did.
type ProjectEmployeesOutput struct {
	Current []EmployeeSummary // Holders of assigned, unfinished tasks
	History []EmployeeSummary // Everyone ever assigned, in order of first assignment
}

// ProjectEmployees is the use case for querying a project's employees.
type ProjectEmployees struct {
	projects domain.ProjectRepository
}

// NewProjectEmployees creates a new ProjectEmployees use case.
func NewProjectEmployees(projects domain.ProjectRepository) *ProjectEmployees {
	return &ProjectEmployees{projects: projects}
}

// Execute resolves current and historical employees.
func (uc *ProjectEmployees) Execute(_ context.Context, in ProjectEmployeesInput) (*ProjectEmployeesOutput, error) {
	p, err := uc.projects.Get(in.ProjectID)
	if err != nil {
		return nil, err
	}

	current, err := p.CurrentEmployees()
	if err != nil {
		return nil, err
	}
	history, err := p.History()
	if err != nil {
		return nil, err
	}

	return &ProjectEmployeesOutput{
		Current: summarizeEmployees(current),
		History: summarizeEmployees(history),
	}, nil
}
