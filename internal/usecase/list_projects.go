package usecase

import (
	"context"
	"fmt"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// ListProjectsInput contains the parameters for listing projects.
type ListProjectsInput struct {
	State *domain.State // Filter by state (nil = all)
}

// ListProjectsOutput contains the projects ordered by id.
type ListProjectsOutput struct {
	Projects []ProjectSummary
}

// ListProjects is the use case for listing projects.
type ListProjects struct {
	projects domain.ProjectRepository
}

// NewListProjects creates a new ListProjects use case.
func NewListProjects(projects domain.ProjectRepository) *ListProjects {
	return &ListProjects{projects: projects}
}

// Execute lists projects matching the filter.
func (uc *ListProjects) Execute(_ context.Context, in ListProjectsInput) (*ListProjectsOutput, error) {
	projects, err := uc.projects.List(domain.ProjectFilter{State: in.State})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	out := &ListProjectsOutput{Projects: make([]ProjectSummary, 0, len(projects))}
	for _, p := range projects {
		out.Projects = append(out.Projects, summarizeProject(p))
	}
	return out, nil
}
