package services_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atendezap/atendezap/modules/assistant/domain/entities/assistantconfig"
	"github.com/atendezap/atendezap/modules/assistant/services"
	"github.com/atendezap/atendezap/modules/catalog/domain/entities/product"
)

func isaConfig(t *testing.T, tenantID uuid.UUID) assistantconfig.AssistantConfig {
	t.Helper()
	config, err := assistantconfig.New(
		tenantID,
		assistantconfig.WithIdentity(assistantconfig.Identity{
			AssistantName: "ISA",
			Tone:          assistantconfig.ToneFriendly,
		}),
	)
	require.NoError(t, err)
	return config
}

func TestPromptBuilder_IsaScenario(t *testing.T) {
	tenantID := uuid.New()
	builder := services.NewPromptBuilder()
	resolver := services.NewProductResolver()

	bot, err := product.New(tenantID, "Bot WhatsApp", decimal.NewFromFloat(299.9),
		product.WithCode("WWBOT"),
		product.WithCategory("Software"),
	)
	require.NoError(t, err)
	catalog := []product.Product{bot}

	resolution := resolver.Resolve("Quero o WWBOT", catalog)
	require.NotNil(t, resolution.Focused)
	assert.Equal(t, "WWBOT", resolution.Focused.Code())

	prompt := builder.Build(services.PromptInput{
		Config:         isaConfig(t, tenantID),
		Products:       catalog,
		ProductContext: services.ProductContextBlock(resolution),
	})

	assert.Contains(t, prompt, "Seu nome é ISA.")
	assert.Contains(t, prompt, "WWBOT")
	assert.Contains(t, prompt, "R$ 299,90")
	assert.Contains(t, prompt, "CATÁLOGO DE PRODUTOS:")
	assert.Contains(t, prompt, "Software:")
	assert.Contains(t, prompt, "PRODUTO EM FOCO")
}

func TestPromptBuilder_Pure(t *testing.T) {
	tenantID := uuid.New()
	builder := services.NewPromptBuilder()

	p, err := product.New(tenantID, "Consultoria", decimal.NewFromInt(1500))
	require.NoError(t, err)

	input := services.PromptInput{
		Config:   isaConfig(t, tenantID),
		Products: []product.Product{p},
	}
	assert.Equal(t, builder.Build(input), builder.Build(input))
}

func TestPromptBuilder_EmptyCatalog(t *testing.T) {
	tenantID := uuid.New()
	builder := services.NewPromptBuilder()

	prompt := builder.Build(services.PromptInput{Config: isaConfig(t, tenantID)})

	assert.Contains(t, prompt, "Ainda não há produtos cadastrados no catálogo.")
	assert.NotContains(t, prompt, "CATÁLOGO")
}

func TestPromptBuilder_EmptyCatalogWithProductContext(t *testing.T) {
	tenantID := uuid.New()
	builder := services.NewPromptBuilder()

	prompt := builder.Build(services.PromptInput{
		Config:         isaConfig(t, tenantID),
		ProductContext: "PRODUTO EM FOCO:\n- Avulso (S/C) — R$ 10,00",
	})

	assert.Contains(t, prompt, "PRODUTO EM FOCO")
	assert.NotContains(t, prompt, "Ainda não há produtos cadastrados")
}

func TestPromptBuilder_CompanySection(t *testing.T) {
	tenantID := uuid.New()
	builder := services.NewPromptBuilder()

	config, err := assistantconfig.New(
		tenantID,
		assistantconfig.WithCompany(assistantconfig.Company{
			Name:          "AtendeZap Telecom",
			BusinessHours: "8h às 18h",
		}),
	)
	require.NoError(t, err)

	prompt := builder.Build(services.PromptInput{Config: config})
	assert.Contains(t, prompt, "INFORMAÇÕES DA EMPRESA:")
	assert.Contains(t, prompt, "Empresa: AtendeZap Telecom")
	// Legacy business hours render when the current field is empty.
	assert.Contains(t, prompt, "Horário de atendimento: 8h às 18h")
	assert.NotContains(t, prompt, "Segmento:")
}

func TestPromptBuilder_ToneDirectives(t *testing.T) {
	tenantID := uuid.New()
	builder := services.NewPromptBuilder()

	build := func(tone assistantconfig.Tone) string {
		config, err := assistantconfig.New(
			tenantID,
			assistantconfig.WithIdentity(assistantconfig.Identity{Tone: tone}),
		)
		require.NoError(t, err)
		return builder.Build(services.PromptInput{Config: config})
	}

	assert.Contains(t, build(assistantconfig.ToneFormal), "tom formal")
	assert.Contains(t, build(assistantconfig.ToneTechnical), "tom técnico")
	assert.NotContains(t, build(assistantconfig.Tone("grumpy")), "tom ")
}

func TestPromptBuilder_StorefrontSection(t *testing.T) {
	tenantID := uuid.New()
	builder := services.NewPromptBuilder()

	config, err := assistantconfig.New(
		tenantID,
		assistantconfig.WithStorefront(assistantconfig.Storefront{
			Enabled: true,
			Name:    "Loja AtendeZap",
			Slug:    "atendezap",
		}),
	)
	require.NoError(t, err)

	prompt := builder.Build(services.PromptInput{
		Config:         config,
		StorefrontLink: "https://atendezap.com.br/vitrine/atendezap",
	})
	assert.Contains(t, prompt, "VITRINE ONLINE:")
	assert.Contains(t, prompt, "Link da vitrine: https://atendezap.com.br/vitrine/atendezap")
}

func TestProductLine(t *testing.T) {
	tenantID := uuid.New()

	noCode, err := product.New(tenantID, "Avulso", decimal.NewFromInt(10))
	require.NoError(t, err)
	line := services.ProductLine(noCode)
	assert.True(t, strings.Contains(line, "(S/C)"), "missing code renders the S/C placeholder: %s", line)

	described, err := product.New(tenantID, "Plano", decimal.NewFromFloat(49.9),
		product.WithCode("PLN"),
		product.WithDescription("internet ilimitada"),
	)
	require.NoError(t, err)
	assert.Contains(t, services.ProductLine(described), "internet ilimitada")
}

func TestFormatPriceBRL(t *testing.T) {
	cases := map[string]string{
		"0":       "R$ 0,00",
		"299.9":   "R$ 299,90",
		"1234.56": "R$ 1.234,56",
		"1234567": "R$ 1.234.567,00",
		"0.5":     "R$ 0,50",
	}
	for raw, expected := range cases {
		price, err := decimal.NewFromString(raw)
		require.NoError(t, err)
		assert.Equal(t, expected, services.FormatPriceBRL(price))
	}
}
