package usecase

import (
	"context"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// ShowProjectInput contains the parameters for showing a project.
type ShowProjectInput struct {
	ProjectID int
}

// ShowProjectOutput contains the project view and its rendered summary.
// Fields are ordered to minimize memory padding.
type ShowProjectOutput struct {
	Rendered string // Multi-line summary as produced by Project.String
	Tasks    []TaskSummary
	Project  ProjectSummary
}

// ShowProject is the use case for displaying a project.
type ShowProject struct {
	projects domain.ProjectRepository
}

// NewShowProject creates a new ShowProject use case.
func NewShowProject(projects domain.ProjectRepository) *ShowProject {
	return &ShowProject{projects: projects}
}

// Execute retrieves the project.
func (uc *ShowProject) Execute(_ context.Context, in ShowProjectInput) (*ShowProjectOutput, error) {
	p, err := uc.projects.Get(in.ProjectID)
	if err != nil {
		return nil, err
	}

	out := &ShowProjectOutput{
		Project:  summarizeProject(p),
		Rendered: p.String(),
	}
	for _, t := range p.Tasks() {
		out.Tasks = append(out.Tasks, summarizeTask(t))
	}
	return out, nil
}
