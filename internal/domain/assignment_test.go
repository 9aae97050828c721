package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstFree(t *testing.T) {
	e3 := hourly(t, 3, "10")
	e1 := hourly(t, 1, "10")
	e2 := hourly(t, 2, "10")
	require.NoError(t, e1.Assign())

	got, err := FirstFree([]*Employee{e3, e1, e2})
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID())
}

func TestLeastDelayedFree(t *testing.T) {
	e1 := hourly(t, 1, "10")
	e2 := hourly(t, 2, "10")
	e3 := hourly(t, 3, "10")
	e4 := hourly(t, 4, "10")
	e1.RecordDelay()
	e1.RecordDelay()
	e2.RecordDelay()
	e3.RecordDelay()
	require.NoError(t, e4.Assign())

	got, err := LeastDelayedFree([]*Employee{e1, e3, e2, e4})
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID(), "ties go to the lowest id")
}

func TestPolicies_NoneFree(t *testing.T) {
	e := hourly(t, 1, "10")
	require.NoError(t, e.Assign())

	_, err := FirstFree([]*Employee{e})
	assert.ErrorIs(t, err, ErrNoFreeEmployee)
	_, err = LeastDelayedFree(nil)
	assert.ErrorIs(t, err, ErrNoFreeEmployee)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestParseAssignPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    AssignPolicy
		wantErr bool
	}{
		{"", PolicyFirstFree, false},
		{"specific", PolicySpecific, false},
		{"Least-Delays", PolicyLeastDelays, false},
		{"first-free", PolicyFirstFree, false},
		{"random", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAssignPolicy(tt.in, PolicyFirstFree)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
