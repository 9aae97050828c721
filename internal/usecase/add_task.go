package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// AddTaskInput contains the parameters for adding a task to a project.
type AddTaskInput struct {
	Days        decimal.Decimal // Required days (> 0)
	Title       string          // Unique within the project
	Description string
	ProjectID   int
}

// AddTask is the use case for appending a task to an open project.
type AddTask struct {
	projects domain.ProjectRepository
	logger   domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(projects domain.ProjectRepository, logger domain.Logger) *AddTask {
	return &AddTask{projects: projects, logger: logger}
}

// Execute appends the task unassigned.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) error {
	p, err := uc.projects.Get(in.ProjectID)
	if err != nil {
		return rejected(uc.logger, in.ProjectID, "task", err)
	}

	if err := p.AddTask(in.Title, in.Description, in.Days); err != nil {
		return rejected(uc.logger, in.ProjectID, "task", err)
	}

	if err := uc.projects.Save(p); err != nil {
		return fmt.Errorf("save project: %w", err)
	}

	logInfo(uc.logger, in.ProjectID, "task", fmt.Sprintf("added %q (%s days)", in.Title, in.Days))
	return nil
}
