package assistantconfig_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atendezap/atendezap/modules/assistant/domain/entities/assistantconfig"
)

func TestCompany_ResolvedHours(t *testing.T) {
	t.Run("current field wins", func(t *testing.T) {
		company := assistantconfig.Company{Hours: "9h às 17h", BusinessHours: "8h às 18h"}
		assert.Equal(t, "9h às 17h", company.ResolvedHours())
	})

	t.Run("legacy field is the fallback", func(t *testing.T) {
		company := assistantconfig.Company{BusinessHours: "8h às 18h"}
		assert.Equal(t, "8h às 18h", company.ResolvedHours())
	})

	t.Run("both empty", func(t *testing.T) {
		assert.Empty(t, assistantconfig.Company{}.ResolvedHours())
	})
}

func TestCompany_HasProfile(t *testing.T) {
	assert.False(t, assistantconfig.Company{}.HasProfile())
	assert.True(t, assistantconfig.Company{Name: "AtendeZap"}.HasProfile())
	assert.True(t, assistantconfig.Company{BusinessHours: "8h às 18h"}.HasProfile())
}

func TestToneFromString(t *testing.T) {
	assert.Equal(t, assistantconfig.ToneFriendly, assistantconfig.ToneFromString("friendly"))
	assert.Equal(t, assistantconfig.Tone(""), assistantconfig.ToneFromString("grumpy"))
	assert.Equal(t, assistantconfig.Tone(""), assistantconfig.ToneFromString(""))
}

func TestNew_StorefrontValidation(t *testing.T) {
	tenantID := uuid.New()

	_, err := assistantconfig.New(tenantID, assistantconfig.WithStorefront(assistantconfig.Storefront{
		Enabled: true,
	}))
	require.ErrorIs(t, err, assistantconfig.ErrStorefrontNoSlug)

	config, err := assistantconfig.New(tenantID, assistantconfig.WithStorefront(assistantconfig.Storefront{
		Enabled: true,
		Slug:    "minha-loja",
	}))
	require.NoError(t, err)
	assert.Equal(t, "minha-loja", config.Storefront().Slug)
}

func TestSetters_DoNotMutateReceiver(t *testing.T) {
	tenantID := uuid.New()
	config, err := assistantconfig.New(tenantID, assistantconfig.WithBehaviorRules("sempre educado"))
	require.NoError(t, err)

	updated := config.SetBehaviorRules("nunca prometa prazos")
	assert.Equal(t, "sempre educado", config.BehaviorRules())
	assert.Equal(t, "nunca prometa prazos", updated.BehaviorRules())
	assert.Equal(t, tenantID, updated.TenantID())
}

func TestSetIdentity_NormalizesTone(t *testing.T) {
	config, err := assistantconfig.New(uuid.New())
	require.NoError(t, err)

	updated := config.SetIdentity(assistantconfig.Identity{Tone: "shouty"})
	assert.Equal(t, assistantconfig.Tone(""), updated.Identity().Tone)
}
