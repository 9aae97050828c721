package usecase

import (
	"context"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// ProjectAddressInput contains the parameters for an address lookup.
type ProjectAddressInput struct {
	ProjectID int
}

// ProjectAddressOutput contains the work site address.
type ProjectAddressOutput struct {
	Address string
}

// ProjectAddress is the use case for looking up where a project takes place.
type ProjectAddress struct {
	projects domain.ProjectRepository
}

// NewProjectAddress creates a new ProjectAddress use case.
func NewProjectAddress(projects domain.ProjectRepository) *ProjectAddress {
	return &ProjectAddress{projects: projects}
}

// Execute returns the address.
func (uc *ProjectAddress) Execute(_ context.Context, in ProjectAddressInput) (*ProjectAddressOutput, error) {
	p, err := uc.projects.Get(in.ProjectID)
	if err != nil {
		return nil, err
	}
	return &ProjectAddressOutput{Address: p.Address()}, nil
}
