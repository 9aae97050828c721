package usecase

import (
	"context"
	"fmt"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// FinalizeTaskInput contains the parameters for completing a task.
type FinalizeTaskInput struct {
	Title     string
	ProjectID int
}

// FinalizeTask is the use case for completing a task and freeing its employee.
type FinalizeTask struct {
	projects domain.ProjectRepository
	logger   domain.Logger
}

// NewFinalizeTask creates a new FinalizeTask use case.
func NewFinalizeTask(projects domain.ProjectRepository, logger domain.Logger) *FinalizeTask {
	return &FinalizeTask{projects: projects, logger: logger}
}

// Execute finalizes the task.
func (uc *FinalizeTask) Execute(_ context.Context, in FinalizeTaskInput) error {
	p, err := uc.projects.Get(in.ProjectID)
	if err != nil {
		return rejected(uc.logger, in.ProjectID, "task", err)
	}

	if err := p.FinalizeTask(in.Title); err != nil {
		return rejected(uc.logger, in.ProjectID, "task", err)
	}

	if err := uc.projects.Save(p); err != nil {
		return fmt.Errorf("save project: %w", err)
	}

	logInfo(uc.logger, in.ProjectID, "task", fmt.Sprintf("finalized %q", in.Title))
	return nil
}
