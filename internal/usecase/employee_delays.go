package usecase

import (
	"context"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// EmployeeDelaysInput contains the parameters for an employee delay query.
type EmployeeDelaysInput struct {
	EmployeeID int
}

// EmployeeDelaysOutput reports the delay record of an employee.
type EmployeeDelaysOutput struct {
	Delays    int  `json:"delays"`
	HasDelays bool `json:"has_delays"`
}

// EmployeeDelays is the use case for querying an employee's delay count.
type EmployeeDelays struct {
	employees domain.Roster
}

// NewEmployeeDelays creates a new EmployeeDelays use case.
func NewEmployeeDelays(employees domain.Roster) *EmployeeDelays {
	return &EmployeeDelays{employees: employees}
}

// Execute returns the delay count.
func (uc *EmployeeDelays) Execute(_ context.Context, in EmployeeDelaysInput) (*EmployeeDelaysOutput, error) {
	e, err := uc.employees.Employee(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	return &EmployeeDelaysOutput{Delays: e.Delays(), HasDelays: e.Delays() > 0}, nil
}
