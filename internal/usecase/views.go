package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// EmployeeSummary is a read-only view of an employee.
// Fields are ordered to minimize memory padding.
type EmployeeSummary struct {
	Rate     decimal.Decimal `json:"rate"`
	Name     string          `json:"name"`
	Kind     domain.Kind     `json:"kind"`
	Category domain.Category `json:"category,omitempty"`
	ID       int             `json:"id"`
	Delays   int             `json:"delays"`
	Busy     bool            `json:"busy"`
}

func summarizeEmployee(e *domain.Employee) EmployeeSummary {
	return EmployeeSummary{
		ID:       e.ID(),
		Name:     e.Name(),
		Kind:     e.Kind(),
		Category: e.Category(),
		Rate:     e.Rate(),
		Delays:   e.Delays(),
		Busy:     !e.IsFree(),
	}
}

func summarizeEmployees(emps []*domain.Employee) []EmployeeSummary {
	res := make([]EmployeeSummary, 0, len(emps))
	for _, e := range emps {
		res = append(res, summarizeEmployee(e))
	}
	return res
}

// ProjectSummary is a read-only view of a project.
// Fields are ordered to minimize memory padding.
type ProjectSummary struct {
	Cost      decimal.Decimal `json:"cost"`
	Start     domain.Date     `json:"start"`
	Estimate  domain.Date     `json:"estimate"`
	Actual    domain.Date     `json:"actual"`
	Client    *domain.Client  `json:"client,omitempty"`
	Address   string          `json:"address"`
	State     domain.State    `json:"state"`
	ID        int             `json:"id"`
	Tasks     int             `json:"tasks"`
	HasDelays bool            `json:"has_delays"`
}

func summarizeProject(p *domain.Project) ProjectSummary {
	return ProjectSummary{
		ID:        p.ID(),
		Address:   p.Address(),
		Client:    p.Client(),
		State:     p.State(),
		Start:     p.Start(),
		Estimate:  p.Estimate(),
		Actual:    p.Actual(),
		Cost:      p.CurrentCost(),
		Tasks:     len(p.Tasks()),
		HasDelays: p.HasDelays(),
	}
}

// TaskSummary is a read-only view of a task.
// Fields are ordered to minimize memory padding.
type TaskSummary struct {
	RequiredDays decimal.Decimal  `json:"required_days"`
	DelayDays    decimal.Decimal  `json:"delay_days"`
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	State        domain.TaskState `json:"state"`
	EmployeeID   int              `json:"employee_id,omitempty"`
}

func summarizeTask(t *domain.Task) TaskSummary {
	return TaskSummary{
		Title:        t.Title(),
		Description:  t.Description(),
		RequiredDays: t.RequiredDays(),
		DelayDays:    t.DelayDays(),
		State:        t.State(),
		EmployeeID:   t.EmployeeID(),
	}
}
