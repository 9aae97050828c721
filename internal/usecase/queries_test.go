package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diazbsofia/homesolution/internal/domain"
)

func TestShowProject_Execute(t *testing.T) {
	f := newFixture()
	luis := f.hourly(t, "Luis", "10")
	pid := f.project(t, "Paint", "Plumbing")
	f.assign(t, pid, "Paint", luis)

	out, err := NewShowProject(f.projects).Execute(context.Background(), ShowProjectInput{ProjectID: pid})
	require.NoError(t, err)
	assert.Equal(t, pid, out.Project.ID)
	assert.Equal(t, domain.StateActive, out.Project.State)
	assert.Contains(t, out.Rendered, "Final cost: $540.00")
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, domain.TaskAssigned, out.Tasks[0].State)
	assert.Equal(t, luis, out.Tasks[0].EmployeeID)

	_, err = NewShowProject(f.projects).Execute(context.Background(), ShowProjectInput{ProjectID: 9})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestListProjects_Execute(t *testing.T) {
	f := newFixture()
	luis := f.hourly(t, "Luis", "10")
	f.project(t, "A")
	active := f.project(t, "B")
	f.assign(t, active, "B", luis)

	uc := NewListProjects(f.projects)
	all, err := uc.Execute(context.Background(), ListProjectsInput{})
	require.NoError(t, err)
	require.Len(t, all.Projects, 2)
	assert.Equal(t, 1, all.Projects[0].ID)

	state := domain.StateActive
	filtered, err := uc.Execute(context.Background(), ListProjectsInput{State: &state})
	require.NoError(t, err)
	require.Len(t, filtered.Projects, 1)
	assert.Equal(t, active, filtered.Projects[0].ID)

	f.projects.ListErr = errors.New("boom")
	_, err = uc.Execute(context.Background(), ListProjectsInput{})
	assert.ErrorContains(t, err, "list projects")
}

func TestListEmployees_Execute(t *testing.T) {
	f := newFixture()
	luis := f.hourly(t, "Luis", "10")
	f.salaried(t, "Ana", "100")
	pid := f.project(t, "Paint")
	f.assign(t, pid, "Paint", luis)

	uc := NewListEmployees(f.employees)
	all, err := uc.Execute(context.Background(), ListEmployeesInput{})
	require.NoError(t, err)
	require.Len(t, all.Employees, 2)
	assert.True(t, all.Employees[0].Busy)
	assert.Equal(t, domain.CategoryTechnical, all.Employees[1].Category)

	free, err := uc.Execute(context.Background(), ListEmployeesInput{FreeOnly: true})
	require.NoError(t, err)
	require.Len(t, free.Employees, 1)
	assert.Equal(t, "Ana", free.Employees[0].Name)
}

func TestEmployeeDelays_Execute(t *testing.T) {
	f := newFixture()
	luis := f.hourly(t, "Luis", "10")
	uc := NewEmployeeDelays(f.employees)

	out, err := uc.Execute(context.Background(), EmployeeDelaysInput{EmployeeID: luis})
	require.NoError(t, err)
	assert.False(t, out.HasDelays)

	f.employee(t, luis).RecordDelay()
	out, err = uc.Execute(context.Background(), EmployeeDelaysInput{EmployeeID: luis})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Delays)
	assert.True(t, out.HasDelays)

	_, err = uc.Execute(context.Background(), EmployeeDelaysInput{EmployeeID: 5})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestProjectEmployees_Execute(t *testing.T) {
	f := newFixture()
	luis := f.hourly(t, "Luis", "10")
	ana := f.hourly(t, "Ana", "10")
	pid := f.project(t, "Paint", "Plumbing")
	f.assign(t, pid, "Paint", luis)
	f.assign(t, pid, "Plumbing", ana)
	require.NoError(t, NewFinalizeTask(f.projects, nil).Execute(context.Background(), FinalizeTaskInput{ProjectID: pid, Title: "Paint"}))

	out, err := NewProjectEmployees(f.projects).Execute(context.Background(), ProjectEmployeesInput{ProjectID: pid})
	require.NoError(t, err)
	require.Len(t, out.Current, 1)
	assert.Equal(t, ana, out.Current[0].ID)
	require.Len(t, out.History, 2)
	assert.Equal(t, luis, out.History[0].ID)
	assert.Equal(t, ana, out.History[1].ID)
}

func TestProjectTasks_Execute(t *testing.T) {
	f := newFixture()
	luis := f.hourly(t, "Luis", "10")
	pid := f.project(t, "Paint", "Plumbing", "Roof")
	f.assign(t, pid, "Plumbing", luis)

	uc := NewProjectTasks(f.projects)
	all, err := uc.Execute(context.Background(), ProjectTasksInput{ProjectID: pid})
	require.NoError(t, err)
	assert.Len(t, all.Tasks, 3)

	open, err := uc.Execute(context.Background(), ProjectTasksInput{ProjectID: pid, UnassignedOnly: true})
	require.NoError(t, err)
	require.Len(t, open.Tasks, 2)
	assert.Equal(t, "Paint", open.Tasks[0].Title)
	assert.Equal(t, "Roof", open.Tasks[1].Title)
}

func TestProjectAddress_Execute(t *testing.T) {
	f := newFixture()
	pid := f.project(t, "Paint")

	out, err := NewProjectAddress(f.projects).Execute(context.Background(), ProjectAddressInput{ProjectID: pid})
	require.NoError(t, err)
	assert.Equal(t, "Calle 123", out.Address)

	_, err = NewProjectAddress(f.projects).Execute(context.Background(), ProjectAddressInput{ProjectID: 3})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTotalCost_Execute(t *testing.T) {
	f := newFixture()
	luis := f.hourly(t, "Luis", "10")
	ana := f.hourly(t, "Ana", "10")
	p1 := f.project(t, "Paint")
	p2 := f.project(t, "Roof")
	f.project(t, "Idle")
	f.assign(t, p1, "Paint", luis)
	f.assign(t, p2, "Roof", ana)
	_, err := NewRegisterDelay(f.projects, nil).Execute(context.Background(), RegisterDelayInput{ProjectID: p2, Title: "Roof", Days: dec("1")})
	require.NoError(t, err)

	out, err := NewTotalCost(f.projects).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, out.Projects)
	// 540 + 600 + 0
	assert.True(t, dec("1140").Equal(out.Total), "got %s", out.Total)
}

func TestTotalCost_RecomputesOpenProjects(t *testing.T) {
	f := newFixture()
	ana := f.salaried(t, "Ana", "100")
	p1 := f.project(t, "Paint")
	p2 := f.project(t, "Roof")
	f.assign(t, p1, "Paint", ana)
	err := NewFinalizeTask(f.projects, nil).Execute(context.Background(), FinalizeTaskInput{ProjectID: p1, Title: "Paint"})
	require.NoError(t, err)
	f.assign(t, p2, "Roof", ana)
	_, err = NewRegisterDelay(f.projects, nil).Execute(context.Background(), RegisterDelayInput{ProjectID: p2, Title: "Roof", Days: dec("1")})
	require.NoError(t, err)

	out, err := NewTotalCost(f.projects).Execute(context.Background())
	require.NoError(t, err)
	// p1 loses the on-time bonus: 675, p2: 100 * 6 * 1.25 = 750
	assert.True(t, dec("1425").Equal(out.Total), "got %s", out.Total)

	shown, err := NewShowProject(f.projects).Execute(context.Background(), ShowProjectInput{ProjectID: p1})
	require.NoError(t, err)
	assert.True(t, dec("675").Equal(shown.Project.Cost), "got %s", shown.Project.Cost)
	assert.Contains(t, shown.Rendered, "Final cost: $675.00")
}
