package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atendezap/atendezap/modules/assistant/domain/entities/assistantconfig"
	assistantPersistence "github.com/atendezap/atendezap/modules/assistant/infrastructure/persistence"
	"github.com/atendezap/atendezap/modules/catalog/domain/entities/product"
	catalogPersistence "github.com/atendezap/atendezap/modules/catalog/infrastructure/persistence"
	"github.com/atendezap/atendezap/modules/vitrine/services"
	"github.com/atendezap/atendezap/pkg/testutils"
)

func TestStorefrontLink(t *testing.T) {
	assert.Equal(t, "https://atendezap.com.br/vitrine/loja", services.StorefrontLink("https://atendezap.com.br", "loja"))
	assert.Equal(t, "https://atendezap.com.br/vitrine/loja", services.StorefrontLink("https://atendezap.com.br/", "loja"))
}

func TestVitrineService_GetBySlug(t *testing.T) {
	env := testutils.NewTestContext().Build(t)

	configRepo := assistantPersistence.NewInmemAssistantConfigRepository()
	productRepo := catalogPersistence.NewInmemProductRepository()
	service := services.NewVitrineService(configRepo, productRepo)

	config, err := assistantconfig.New(env.TenantID, assistantconfig.WithStorefront(assistantconfig.Storefront{
		Enabled: true,
		Name:    "Loja AtendeZap",
		Theme:   "dark",
		Slug:    "atendezap",
	}))
	require.NoError(t, err)
	_, err = configRepo.Save(env.Ctx, config)
	require.NoError(t, err)

	seed := func(name, category string, active bool) {
		p, err := product.New(env.TenantID, name, decimal.NewFromInt(100),
			product.WithCategory(category),
			product.WithActive(active),
		)
		require.NoError(t, err)
		_, err = productRepo.Save(env.Ctx, p)
		require.NoError(t, err)
	}
	seed("Plano Fibra", "Internet", true)
	seed("Roteador", "Equipamentos", true)
	seed("Plano Antigo", "Internet", false)
	seed("Avulso", "", true)

	vitrine, err := service.GetBySlug(env.Ctx, "atendezap")
	require.NoError(t, err)
	assert.Equal(t, "Loja AtendeZap", vitrine.Name)
	assert.Equal(t, "dark", vitrine.Theme)

	categories := make(map[string]int)
	for _, group := range vitrine.Categories {
		categories[group.Name] = len(group.Products)
	}
	// The inactive product stays out; the uncategorized one lands in the
	// default bucket.
	assert.Equal(t, map[string]int{
		"Internet":      1,
		"Equipamentos":  1,
		"Sem categoria": 1,
	}, categories)
}

func TestVitrineService_GetBySlug_NotFound(t *testing.T) {
	env := testutils.NewTestContext().Build(t)
	service := services.NewVitrineService(
		assistantPersistence.NewInmemAssistantConfigRepository(),
		catalogPersistence.NewInmemProductRepository(),
	)

	_, err := service.GetBySlug(env.Ctx, "inexistente")
	require.ErrorIs(t, err, assistantconfig.ErrConfigNotFound)
}

func TestVitrineService_DisabledStorefrontDoesNotResolve(t *testing.T) {
	env := testutils.NewTestContext().Build(t)
	configRepo := assistantPersistence.NewInmemAssistantConfigRepository()
	service := services.NewVitrineService(configRepo, catalogPersistence.NewInmemProductRepository())

	config, err := assistantconfig.New(env.TenantID, assistantconfig.WithStorefront(assistantconfig.Storefront{
		Enabled: false,
		Slug:    "fechada",
	}))
	require.NoError(t, err)
	_, err = configRepo.Save(env.Ctx, config)
	require.NoError(t, err)

	_, err = service.GetBySlug(env.Ctx, "fechada")
	require.ErrorIs(t, err, assistantconfig.ErrConfigNotFound)
}
