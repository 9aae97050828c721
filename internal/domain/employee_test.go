package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee_Validation(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (*Employee, error)
		wantErr error
	}{
		{"hourly ok", func() (*Employee, error) { return NewHourlyEmployee(1, "Luis", dec("10")) }, nil},
		{"hourly empty name", func() (*Employee, error) { return NewHourlyEmployee(1, "", dec("10")) }, ErrEmptyName},
		{"hourly blank name", func() (*Employee, error) { return NewHourlyEmployee(1, "  ", dec("10")) }, ErrEmptyName},
		{"hourly zero id", func() (*Employee, error) { return NewHourlyEmployee(0, "Luis", dec("10")) }, ErrInvalidID},
		{"hourly zero rate", func() (*Employee, error) { return NewHourlyEmployee(1, "Luis", decimal.Zero) }, ErrInvalidRate},
		{"hourly negative rate", func() (*Employee, error) { return NewHourlyEmployee(1, "Luis", dec("-1")) }, ErrInvalidRate},
		{"salaried ok", func() (*Employee, error) { return NewSalariedEmployee(2, "Ana", dec("100"), CategoryExpert) }, nil},
		{"salaried bad category", func() (*Employee, error) { return NewSalariedEmployee(2, "Ana", dec("100"), "TÉCNICO") }, ErrInvalidCategory},
		{"salaried negative id", func() (*Employee, error) { return NewSalariedEmployee(-2, "Ana", dec("100"), CategoryExpert) }, ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tt.build()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			assert.True(t, e.IsFree())
			assert.Equal(t, 0, e.Delays())
		})
	}
}

func TestEmployee_AssignRelease(t *testing.T) {
	for _, e := range []*Employee{hourly(t, 1, "10"), salaried(t, 2, "100")} {
		require.NoError(t, e.Assign())
		assert.False(t, e.IsFree())

		err := e.Assign()
		assert.ErrorIs(t, err, ErrAlreadyBusy)
		assert.ErrorIs(t, err, ErrResourceUnavailable)

		e.Release()
		assert.True(t, e.IsFree())
		e.Release()
		assert.True(t, e.IsFree())
	}
}

func TestEmployee_Pay_Hourly(t *testing.T) {
	e := hourly(t, 1, "10")
	assert.True(t, dec("400").Equal(e.Pay(dec("5"))))

	// Delays never affect hourly pay.
	e.RecordDelay()
	assert.True(t, dec("400").Equal(e.Pay(dec("5"))))
	assert.True(t, dec("120").Equal(e.Pay(dec("1.5"))))
}

func TestEmployee_Pay_Salaried(t *testing.T) {
	onTime := salaried(t, 1, "100")
	late := salaried(t, 2, "100")
	late.RecordDelay()

	assert.True(t, dec("1020").Equal(onTime.Pay(dec("10"))), "got %s", onTime.Pay(dec("10")))
	assert.True(t, dec("1000").Equal(late.Pay(dec("10"))), "got %s", late.Pay(dec("10")))
}

func TestEmployee_Pay_DoesNotMutate(t *testing.T) {
	e := salaried(t, 1, "100")
	_ = e.Pay(dec("3"))
	assert.True(t, e.IsFree())
	assert.Equal(t, 0, e.Delays())
}

func TestEmployee_RecordDelay(t *testing.T) {
	e := hourly(t, 1, "10")
	for i := 0; i < 5; i++ {
		e.RecordDelay()
	}
	assert.Equal(t, 5, e.Delays())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("technical")
	require.NoError(t, err)
	assert.Equal(t, CategoryTechnical, c)

	_, err = ParseCategory("TECNICO")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestNewSalariedEmployee_NormalizesCategory(t *testing.T) {
	e, err := NewSalariedEmployee(1, "Ana", dec("100"), Category(" expert"))
	require.NoError(t, err)
	assert.Equal(t, CategoryExpert, e.Category())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Salaried")
	require.NoError(t, err)
	assert.Equal(t, KindSalaried, k)

	_, err = ParseKind("freelance")
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestEmployee_String(t *testing.T) {
	e, err := NewSalariedEmployee(3, "Ana", dec("100"), CategoryExpert)
	require.NoError(t, err)
	e.RecordDelay()
	assert.Equal(t, "3 - Ana (Delays: 1) - Staff (EXPERT, $100/day)", e.String())

	h, err := NewHourlyEmployee(4, "Luis", dec("12.5"))
	require.NoError(t, err)
	assert.Equal(t, "4 - Luis (Delays: 0) - Contracted ($12.5/hour)", h.String())
}
