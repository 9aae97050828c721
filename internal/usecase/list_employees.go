package usecase

import (
	"context"
	"fmt"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// ListEmployeesInput contains the parameters for listing employees.
type ListEmployeesInput struct {
	FreeOnly bool
}

// ListEmployeesOutput contains the employees ordered by id.
type ListEmployeesOutput struct {
	Employees []EmployeeSummary
}

// ListEmployees is the use case for listing the roster.
type ListEmployees struct {
	employees domain.EmployeeRepository
}

// NewListEmployees creates a new ListEmployees use case.
func NewListEmployees(employees domain.EmployeeRepository) *ListEmployees {
	return &ListEmployees{employees: employees}
}

// Execute lists employees.
func (uc *ListEmployees) Execute(_ context.Context, in ListEmployeesInput) (*ListEmployeesOutput, error) {
	emps, err := uc.employees.List(domain.EmployeeFilter{FreeOnly: in.FreeOnly})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return &ListEmployeesOutput{Employees: summarizeEmployees(emps)}, nil
}
