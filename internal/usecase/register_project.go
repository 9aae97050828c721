package usecase

import (
	"context"
	"fmt"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// RegisterProjectInput contains the parameters for registering a project.
type RegisterProjectInput struct {
	Spec domain.ProjectSpec
}

// RegisterProjectOutput contains the result of registering a project.
type RegisterProjectOutput struct {
	ProjectID int
}

// RegisterProject is the use case for opening a new project.
type RegisterProject struct {
	projects domain.ProjectRepository
	roster   domain.Roster
	logger   domain.Logger
}

// NewRegisterProject creates a new RegisterProject use case.
func NewRegisterProject(projects domain.ProjectRepository, roster domain.Roster, logger domain.Logger) *RegisterProject {
	return &RegisterProject{projects: projects, roster: roster, logger: logger}
}

// Execute validates the spec and stores a pending project.
func (uc *RegisterProject) Execute(_ context.Context, in RegisterProjectInput) (*RegisterProjectOutput, error) {
	if c := in.Spec.Client; c != nil {
		if _, err := domain.NewClient(c.Name, c.Email, c.Phone); err != nil {
			return nil, rejected(uc.logger, 0, "project", err)
		}
	}

	id, err := uc.projects.NextID()
	if err != nil {
		return nil, fmt.Errorf("generate project ID: %w", err)
	}

	p, err := domain.NewProject(id, uc.roster, in.Spec)
	if err != nil {
		return nil, rejected(uc.logger, 0, "project", err)
	}

	if err := uc.projects.Save(p); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	logInfo(uc.logger, id, "project", fmt.Sprintf("registered at %q with %d tasks", p.Address(), len(p.Tasks())))
	return &RegisterProjectOutput{ProjectID: id}, nil
}
