package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// mapRoster is a test double for Roster.
type mapRoster map[int]*Employee

func (r mapRoster) Employee(id int) (*Employee, error) {
	e, ok := r[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	return e, nil
}

func (r mapRoster) add(e *Employee) *Employee {
	r[e.ID()] = e
	return e
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func hourly(t *testing.T, id int, rate string) *Employee {
	t.Helper()
	e, err := NewHourlyEmployee(id, "hourly", dec(rate))
	require.NoError(t, err)
	return e
}

func salaried(t *testing.T, id int, rate string) *Employee {
	t.Helper()
	e, err := NewSalariedEmployee(id, "salaried", dec(rate), CategoryTechnical)
	require.NoError(t, err)
	return e
}

func newTestProject(t *testing.T, roster Roster, titles ...string) *Project {
	t.Helper()
	specs := make([]TaskSpec, 0, len(titles))
	for _, title := range titles {
		specs = append(specs, TaskSpec{Title: title, Description: "desc " + title, Days: dec("5")})
	}
	p, err := NewProject(1, roster, ProjectSpec{
		Tasks:    specs,
		Client:   &Client{Name: "Ana", Email: "ana@mail.com", Phone: "555"},
		Address:  "Calle 123",
		Start:    MustDate(1, 3, 2025),
		Estimate: MustDate(10, 3, 2025),
	})
	require.NoError(t, err)
	return p
}
