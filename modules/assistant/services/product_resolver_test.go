package services_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atendezap/atendezap/modules/assistant/services"
	"github.com/atendezap/atendezap/modules/catalog/domain/entities/product"
)

func mustProduct(t *testing.T, tenantID uuid.UUID, name string, opts ...product.Option) product.Product {
	t.Helper()
	p, err := product.New(tenantID, name, decimal.NewFromFloat(99.90), opts...)
	require.NoError(t, err)
	return p
}

func TestProductResolver_FocusedByCode(t *testing.T) {
	tenantID := uuid.New()
	resolver := services.NewProductResolver()

	bot := mustProduct(t, tenantID, "Bot WhatsApp", product.WithCode("WWBOT"))
	site := mustProduct(t, tenantID, "Site Institucional", product.WithCode("SITE-PRO"))
	catalog := []product.Product{bot, site}

	t.Run("case-insensitive exact code match", func(t *testing.T) {
		resolution := resolver.Resolve("Quero o wwbot", catalog)
		require.NotNil(t, resolution.Focused)
		assert.Equal(t, "WWBOT", resolution.Focused.Code())
	})

	t.Run("focused never repeats in related", func(t *testing.T) {
		// "bot" also keyword-matches the focused product's name.
		resolution := resolver.Resolve("Quero o WWBOT bot", catalog)
		require.NotNil(t, resolution.Focused)
		for _, p := range resolution.Related {
			assert.NotEqual(t, resolution.Focused.ID(), p.ID())
		}
	})

	t.Run("first code in the message wins", func(t *testing.T) {
		resolution := resolver.Resolve("Compare o SITE-PRO com o WWBOT", catalog)
		require.NotNil(t, resolution.Focused)
		assert.Equal(t, "SITE-PRO", resolution.Focused.Code())
	})

	t.Run("hyphenated code resolves", func(t *testing.T) {
		resolution := resolver.Resolve("tem o site-pro disponível?", catalog)
		require.NotNil(t, resolution.Focused)
		assert.Equal(t, "SITE-PRO", resolution.Focused.Code())
	})

	t.Run("unknown code falls back to keywords", func(t *testing.T) {
		resolution := resolver.Resolve("quanto custa o XYZ999 de site", catalog)
		assert.Nil(t, resolution.Focused)
		require.Len(t, resolution.Related, 1)
		assert.Equal(t, site.ID(), resolution.Related[0].ID())
	})
}

func TestProductResolver_RelatedCap(t *testing.T) {
	tenantID := uuid.New()
	resolver := services.NewProductResolver()

	var catalog []product.Product
	for i := 0; i < 10; i++ {
		catalog = append(catalog, mustProduct(t, tenantID, fmt.Sprintf("Plano fibra %d", i)))
	}

	resolution := resolver.Resolve("quero assinar fibra", catalog)
	assert.Nil(t, resolution.Focused)
	require.Len(t, resolution.Related, services.MaxRelatedProducts)

	// Discovery order preserved: the first five catalog entries.
	for i, p := range resolution.Related {
		assert.Equal(t, catalog[i].ID(), p.ID())
	}
}

func TestProductResolver_Stopwords(t *testing.T) {
	tenantID := uuid.New()
	resolver := services.NewProductResolver()
	catalog := []product.Product{
		mustProduct(t, tenantID, "Bom dia premium", product.WithDescription("para quem tem pressa")),
	}

	t.Run("oi bom dia resolves nothing", func(t *testing.T) {
		resolution := resolver.Resolve("oi bom dia", catalog)
		assert.True(t, resolution.Empty())
	})

	t.Run("short tokens never match", func(t *testing.T) {
		resolution := resolver.Resolve("aa bb cc", catalog)
		assert.True(t, resolution.Empty())
	})

	t.Run("punctuation is stripped before tokenizing", func(t *testing.T) {
		resolution := resolver.Resolve("olá!!! você tem premium???", catalog)
		require.Len(t, resolution.Related, 1)
	})
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"fibra", "500mb"}, services.Keywords("Quero a fibra de 500MB, por favor!"))
	assert.Empty(t, services.Keywords("oi bom dia"))
	assert.Empty(t, services.Keywords("você tem?"))
}
