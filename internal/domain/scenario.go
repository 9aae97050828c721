package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// StepOp names an operation applied by a scenario step.
type StepOp string

const (
	OpAssign       StepOp = "assign"
	OpReassign     StepOp = "reassign"
	OpDelay        StepOp = "delay"
	OpAddTask      StepOp = "add-task"
	OpFinalizeTask StepOp = "finalize-task"
	OpFinalize     StepOp = "finalize"
)

// AllStepOps returns every supported step operation.
func AllStepOps() []StepOp {
	return []StepOp{OpAssign, OpReassign, OpDelay, OpAddTask, OpFinalizeTask, OpFinalize}
}

// ParseStepOp parses an operation name, case-insensitively.
func ParseStepOp(s string) (StepOp, error) {
	op := StepOp(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllStepOps() {
		if op == known {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: unknown step op %q", ErrInvalidArgument, s)
}

// EmployeeSpec describes an employee to register.
type EmployeeSpec struct {
	Rate     decimal.Decimal
	Name     string
	Kind     Kind
	Category Category // Salaried only
}

// Step is one operation of a scenario. Only the fields relevant to Op are set.
// Fields are ordered to minimize memory padding.
type Step struct {
	Days        decimal.Decimal
	Date        Date
	Op          StepOp
	Title       string
	Description string
	Policy      AssignPolicy // Empty = configured default
	ProjectID   int
	EmployeeID  int // 0 = chosen by policy
}

// Scenario is a batch of registrations followed by operations, applied in order.
type Scenario struct {
	Employees []EmployeeSpec
	Projects  []ProjectSpec
	Steps     []Step
}
