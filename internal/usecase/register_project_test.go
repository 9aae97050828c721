package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diazbsofia/homesolution/internal/domain"
)

func TestRegisterProject_Execute_Success(t *testing.T) {
	f := newFixture()

	assert.Equal(t, 1, f.project(t, "Paint"))
	assert.Equal(t, 2, f.project(t, "Roof", "Gutter"))

	p := f.get(t, 2)
	assert.Equal(t, domain.StatePending, p.State())
	assert.Len(t, p.Tasks(), 2)
	require.Len(t, f.logger.Entries, 2)
	assert.Equal(t, 2, f.logger.Entries[1].ProjectID)
}

func TestRegisterProject_Execute_Invalid(t *testing.T) {
	badClient := projectSpec("Paint")
	badClient.Client = &domain.Client{Name: ""}

	badDates := projectSpec("Paint")
	badDates.Estimate = domain.MustDate(1, 2, 2025)

	tests := []struct {
		name    string
		spec    domain.ProjectSpec
		wantErr error
	}{
		{"no tasks", projectSpec(), domain.ErrNoTasks},
		{"duplicate title", projectSpec("Paint", "Paint"), domain.ErrDuplicateTask},
		{"invalid client", badClient, domain.ErrEmptyName},
		{"estimate before start", badDates, domain.ErrEstimateBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := NewRegisterProject(f.projects, f.employees, f.logger).Execute(context.Background(), RegisterProjectInput{Spec: tt.spec})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Empty(t, f.projects.Projects)
			assert.Equal(t, []string{"warn"}, f.logger.Levels())
		})
	}
}

func TestRegisterProject_Execute_WithoutClient(t *testing.T) {
	f := newFixture()
	spec := projectSpec("Paint")
	spec.Client = nil

	out, err := NewRegisterProject(f.projects, f.employees, nil).Execute(context.Background(), RegisterProjectInput{Spec: spec})
	require.NoError(t, err)
	assert.Nil(t, f.get(t, out.ProjectID).Client())
}
