package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	c, err := NewClient("Ana", "ana@mail.com", "555")
	require.NoError(t, err)
	assert.Equal(t, "Ana (ana@mail.com - 555)", c.String())

	c.UpdateEmail("ana@work.com")
	c.UpdatePhone("777")
	assert.Equal(t, "Ana (ana@work.com - 777)", c.String())

	_, err = NewClient(" ", "", "")
	assert.ErrorIs(t, err, ErrEmptyName)
}
