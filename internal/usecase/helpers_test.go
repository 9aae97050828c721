package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/diazbsofia/homesolution/internal/domain"
	"github.com/diazbsofia/homesolution/internal/testutil"
)

// fixture bundles the repositories and logger shared by a test.
type fixture struct {
	employees *testutil.MockEmployeeRepository
	projects  *testutil.MockProjectRepository
	logger    *testutil.MockLogger
}

func newFixture() *fixture {
	return &fixture{
		employees: testutil.NewMockEmployeeRepository(),
		projects:  testutil.NewMockProjectRepository(),
		logger:    &testutil.MockLogger{},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (f *fixture) hourly(t *testing.T, name, rate string) int {
	t.Helper()
	out, err := NewRegisterEmployee(f.employees, f.logger).Execute(context.Background(), RegisterEmployeeInput{
		Name: name,
		Kind: domain.KindHourly,
		Rate: dec(rate),
	})
	require.NoError(t, err)
	return out.EmployeeID
}

func (f *fixture) salaried(t *testing.T, name, rate string) int {
	t.Helper()
	out, err := NewRegisterEmployee(f.employees, f.logger).Execute(context.Background(), RegisterEmployeeInput{
		Name:     name,
		Kind:     domain.KindSalaried,
		Category: domain.CategoryTechnical,
		Rate:     dec(rate),
	})
	require.NoError(t, err)
	return out.EmployeeID
}

func projectSpec(titles ...string) domain.ProjectSpec {
	spec := domain.ProjectSpec{
		Client:   &domain.Client{Name: "Ana", Email: "ana@mail.com", Phone: "555"},
		Address:  "Calle 123",
		Start:    domain.MustDate(1, 3, 2025),
		Estimate: domain.MustDate(10, 3, 2025),
	}
	for _, title := range titles {
		spec.Tasks = append(spec.Tasks, domain.TaskSpec{Title: title, Days: dec("5")})
	}
	return spec
}

func (f *fixture) project(t *testing.T, titles ...string) int {
	t.Helper()
	out, err := NewRegisterProject(f.projects, f.employees, f.logger).Execute(context.Background(), RegisterProjectInput{
		Spec: projectSpec(titles...),
	})
	require.NoError(t, err)
	return out.ProjectID
}

func (f *fixture) assign(t *testing.T, projectID int, title string, employeeID int) {
	t.Helper()
	_, err := f.assignUC().Execute(context.Background(), AssignEmployeeInput{
		ProjectID:  projectID,
		Title:      title,
		EmployeeID: employeeID,
	})
	require.NoError(t, err)
}

func (f *fixture) assignUC() *AssignEmployee {
	return NewAssignEmployee(f.projects, f.employees, f.logger, domain.PolicyFirstFree)
}

func (f *fixture) employee(t *testing.T, id int) *domain.Employee {
	t.Helper()
	e, err := f.employees.Employee(id)
	require.NoError(t, err)
	return e
}

func (f *fixture) get(t *testing.T, id int) *domain.Project {
	t.Helper()
	p, err := f.projects.Get(id)
	require.NoError(t, err)
	return p
}
