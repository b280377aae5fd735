package tenant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atendezap/atendezap/modules/core/domain/entities/tenant"
)

func TestNew(t *testing.T) {
	t.Run("valid tenant", func(t *testing.T) {
		created, err := tenant.New("12345678900", "Provedor Silva")
		require.NoError(t, err)
		assert.Equal(t, "12345678900", created.Matricula())
		assert.Equal(t, "Provedor Silva", created.Name())
		assert.True(t, created.IsActive())
	})

	t.Run("empty matricula", func(t *testing.T) {
		_, err := tenant.New("", "Provedor Silva")
		require.ErrorIs(t, err, tenant.ErrEmptyMatricula)
	})

	t.Run("matricula must be digits only", func(t *testing.T) {
		_, err := tenant.New("123.456.789-00", "Provedor Silva")
		require.ErrorIs(t, err, tenant.ErrInvalidMatricula)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := tenant.New("12345678900", "  ")
		require.ErrorIs(t, err, tenant.ErrEmptyName)
	})
}

func TestTenant_Setters(t *testing.T) {
	created, err := tenant.New("12345678900", "Provedor Silva")
	require.NoError(t, err)

	updated := created.SetName("Provedor Souza").SetActive(false)
	assert.Equal(t, "Provedor Silva", created.Name())
	assert.Equal(t, "Provedor Souza", updated.Name())
	assert.False(t, updated.IsActive())
	assert.Equal(t, created.ID(), updated.ID())
}
