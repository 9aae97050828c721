package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// TotalCostOutput contains the sum of every project's current cost.
type TotalCostOutput struct {
	Total    decimal.Decimal
	Projects int
}

// TotalCost is the use case for summing costs across all projects.
type TotalCost struct {
	projects domain.ProjectRepository
}

// NewTotalCost creates a new TotalCost use case.
func NewTotalCost(projects domain.ProjectRepository) *TotalCost {
	return &TotalCost{projects: projects}
}

// Execute sums the locked cost of finalized projects and the live cost of open ones.
func (uc *TotalCost) Execute(_ context.Context) (*TotalCostOutput, error) {
	projects, err := uc.projects.List(domain.ProjectFilter{})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	total := decimal.Zero
	for _, p := range projects {
		total = total.Add(p.CurrentCost())
	}
	return &TotalCostOutput{Total: total, Projects: len(projects)}, nil
}
