// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// RegisterEmployeeInput contains the parameters for registering an employee.
// Fields are ordered to minimize memory padding.
type RegisterEmployeeInput struct {
	Rate     decimal.Decimal // Hourly rate for hourly employees, daily rate for salaried
	Name     string          // Employee name (required)
	Kind     domain.Kind     // hourly or salaried
	Category domain.Category // Required for salaried employees
}

// RegisterEmployeeOutput contains the result of registering an employee.
type RegisterEmployeeOutput struct {
	EmployeeID int
}

// RegisterEmployee is the use case for adding an employee to the roster.
type RegisterEmployee struct {
	employees domain.EmployeeRepository
	logger    domain.Logger
}

// NewRegisterEmployee creates a new RegisterEmployee use case.
func NewRegisterEmployee(employees domain.EmployeeRepository, logger domain.Logger) *RegisterEmployee {
	return &RegisterEmployee{employees: employees, logger: logger}
}

// Execute registers the employee and returns its sequential id.
func (uc *RegisterEmployee) Execute(_ context.Context, in RegisterEmployeeInput) (*RegisterEmployeeOutput, error) {
	id, err := uc.employees.NextID()
	if err != nil {
		return nil, fmt.Errorf("generate employee ID: %w", err)
	}

	var e *domain.Employee
	switch in.Kind {
	case domain.KindHourly:
		e, err = domain.NewHourlyEmployee(id, in.Name, in.Rate)
	case domain.KindSalaried:
		e, err = domain.NewSalariedEmployee(id, in.Name, in.Rate, in.Category)
	default:
		err = fmt.Errorf("%w: %q", domain.ErrInvalidKind, in.Kind)
	}
	if err != nil {
		return nil, rejected(uc.logger, 0, "employee", err)
	}

	if err := uc.employees.Save(e); err != nil {
		return nil, fmt.Errorf("save employee: %w", err)
	}

	logInfo(uc.logger, 0, "employee", fmt.Sprintf("registered %s", e))
	return &RegisterEmployeeOutput{EmployeeID: id}, nil
}
