package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// FinalizeProjectInput contains the parameters for closing a project.
type FinalizeProjectInput struct {
	Date      domain.Date // Actual completion date
	ProjectID int
}

// FinalizeProjectOutput contains the locked cost of the closed project.
type FinalizeProjectOutput struct {
	Cost decimal.Decimal
}

// FinalizeProject is the use case for closing a project.
type FinalizeProject struct {
	projects domain.ProjectRepository
	logger   domain.Logger
}

// NewFinalizeProject creates a new FinalizeProject use case.
func NewFinalizeProject(projects domain.ProjectRepository, logger domain.Logger) *FinalizeProject {
	return &FinalizeProject{projects: projects, logger: logger}
}

// Execute closes the project and releases every employee still holding one of its tasks.
func (uc *FinalizeProject) Execute(_ context.Context, in FinalizeProjectInput) (*FinalizeProjectOutput, error) {
	p, err := uc.projects.Get(in.ProjectID)
	if err != nil {
		return nil, rejected(uc.logger, in.ProjectID, "finalize", err)
	}

	if err := p.Finalize(in.Date); err != nil {
		return nil, rejected(uc.logger, in.ProjectID, "finalize", err)
	}

	if err := uc.projects.Save(p); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	logInfo(uc.logger, in.ProjectID, "finalize", fmt.Sprintf("closed on %s, cost $%s", in.Date, p.Cost().StringFixed(2)))
	return &FinalizeProjectOutput{Cost: p.Cost()}, nil
}
