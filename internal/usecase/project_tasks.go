package usecase

import (
	"context"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// ProjectTasksInput contains the parameters for listing a project's tasks.
type ProjectTasksInput struct {
	ProjectID      int
	UnassignedOnly bool
}

// ProjectTasksOutput contains tasks in insertion order.
type ProjectTasksOutput struct {
	Tasks []TaskSummary
}

// ProjectTasks is the use case for listing the tasks of a project.
type ProjectTasks struct {
	projects domain.ProjectRepository
}

// NewProjectTasks creates a new ProjectTasks use case.
func NewProjectTasks(projects domain.ProjectRepository) *ProjectTasks {
	return &ProjectTasks{projects: projects}
}

// Execute lists the tasks.
func (uc *ProjectTasks) Execute(_ context.Context, in ProjectTasksInput) (*ProjectTasksOutput, error) {
	p, err := uc.projects.Get(in.ProjectID)
	if err != nil {
		return nil, err
	}

	tasks := p.Tasks()
	if in.UnassignedOnly {
		tasks = p.UnassignedTasks()
	}

	out := &ProjectTasksOutput{Tasks: make([]TaskSummary, 0, len(tasks))}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, summarizeTask(t))
	}
	return out, nil
}
