package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diazbsofia/homesolution/internal/domain"
)

func TestRegisterDelay_Execute(t *testing.T) {
	f := newFixture()
	luis := f.hourly(t, "Luis", "10")
	pid := f.project(t, "Paint")
	f.assign(t, pid, "Paint", luis)

	uc := NewRegisterDelay(f.projects, f.logger)
	out, err := uc.Execute(context.Background(), RegisterDelayInput{ProjectID: pid, Title: "Paint", Days: dec("1")})
	require.NoError(t, err)
	assert.True(t, dec("600").Equal(out.Cost), "got %s", out.Cost)
	assert.Equal(t, 1, f.employee(t, luis).Delays())

	_, err = uc.Execute(context.Background(), RegisterDelayInput{ProjectID: pid, Title: "Paint", Days: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidDays)
	_, err = uc.Execute(context.Background(), RegisterDelayInput{ProjectID: pid, Title: "Roof", Days: dec("1")})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	_, err = uc.Execute(context.Background(), RegisterDelayInput{ProjectID: 7, Title: "Paint", Days: dec("1")})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	assert.Equal(t, 1, f.employee(t, luis).Delays())
	assert.True(t, dec("600").Equal(f.get(t, pid).Cost()))
}

func TestAddTask_Execute(t *testing.T) {
	f := newFixture()
	pid := f.project(t, "Paint")
	uc := NewAddTask(f.projects, f.logger)

	require.NoError(t, uc.Execute(context.Background(), AddTaskInput{ProjectID: pid, Title: "Roof", Description: "leaks", Days: dec("2")}))
	tasks := f.get(t, pid).Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "Roof", tasks[1].Title())
	assert.Equal(t, domain.StatePending, f.get(t, pid).State())

	err := uc.Execute(context.Background(), AddTaskInput{ProjectID: pid, Title: "Roof", Days: dec("2")})
	assert.ErrorIs(t, err, domain.ErrDuplicateTask)
	assert.Len(t, f.get(t, pid).Tasks(), 2)
}

func TestFinalizeTask_Execute(t *testing.T) {
	f := newFixture()
	luis := f.hourly(t, "Luis", "10")
	pid := f.project(t, "Paint", "Plumbing")
	f.assign(t, pid, "Paint", luis)

	uc := NewFinalizeTask(f.projects, f.logger)
	require.NoError(t, uc.Execute(context.Background(), FinalizeTaskInput{ProjectID: pid, Title: "Paint"}))
	assert.True(t, f.employee(t, luis).IsFree())

	err := uc.Execute(context.Background(), FinalizeTaskInput{ProjectID: pid, Title: "Paint"})
	assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	err = uc.Execute(context.Background(), FinalizeTaskInput{ProjectID: pid, Title: "Missing"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	// Freed by the finalized task, Luis can take the next one.
	f.assign(t, pid, "Plumbing", luis)
}

func TestFinalizeProject_Execute(t *testing.T) {
	f := newFixture()
	luis := f.hourly(t, "Luis", "10")
	ana := f.hourly(t, "Ana", "10")
	pid := f.project(t, "Paint", "Plumbing")
	f.assign(t, pid, "Paint", luis)
	f.assign(t, pid, "Plumbing", ana)

	uc := NewFinalizeProject(f.projects, f.logger)
	out, err := uc.Execute(context.Background(), FinalizeProjectInput{ProjectID: pid, Date: domain.MustDate(12, 3, 2025)})
	require.NoError(t, err)
	assert.True(t, dec("1080").Equal(out.Cost), "got %s", out.Cost)

	p := f.get(t, pid)
	assert.Equal(t, domain.StateFinalized, p.State())
	assert.Equal(t, domain.MustDate(12, 3, 2025), p.Actual())
	assert.True(t, f.employee(t, luis).IsFree())
	assert.True(t, f.employee(t, ana).IsFree())

	_, err = uc.Execute(context.Background(), FinalizeProjectInput{ProjectID: pid, Date: domain.MustDate(13, 3, 2025)})
	assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, domain.MustDate(12, 3, 2025), f.get(t, pid).Actual())
	assert.True(t, dec("1080").Equal(f.get(t, pid).Cost()))

	last := f.logger.Entries[len(f.logger.Entries)-1]
	assert.Equal(t, "warn", last.Level)
	assert.Equal(t, "finalize", last.Category)
}
