package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// RegisterDelayInput contains the parameters for registering a task delay.
type RegisterDelayInput struct {
	Days      decimal.Decimal // Delay in days (> 0)
	Title     string
	ProjectID int
}

// RegisterDelayOutput contains the project cost after the delay.
type RegisterDelayOutput struct {
	Cost decimal.Decimal
}

// RegisterDelay is the use case for adding delay days to a task.
type RegisterDelay struct {
	projects domain.ProjectRepository
	logger   domain.Logger
}

// NewRegisterDelay creates a new RegisterDelay use case.
func NewRegisterDelay(projects domain.ProjectRepository, logger domain.Logger) *RegisterDelay {
	return &RegisterDelay{projects: projects, logger: logger}
}

// Execute records the delay on the task and its employee.
func (uc *RegisterDelay) Execute(_ context.Context, in RegisterDelayInput) (*RegisterDelayOutput, error) {
	p, err := uc.projects.Get(in.ProjectID)
	if err != nil {
		return nil, rejected(uc.logger, in.ProjectID, "delay", err)
	}

	if err := p.RegisterDelay(in.Title, in.Days); err != nil {
		return nil, rejected(uc.logger, in.ProjectID, "delay", err)
	}

	if err := uc.projects.Save(p); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	logInfo(uc.logger, in.ProjectID, "delay", fmt.Sprintf("%s days on %q", in.Days, in.Title))
	return &RegisterDelayOutput{Cost: p.Cost()}, nil
}
