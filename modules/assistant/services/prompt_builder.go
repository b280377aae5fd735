package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/atendezap/atendezap/modules/assistant/domain/entities/assistantconfig"
	"github.com/atendezap/atendezap/modules/catalog/domain/entities/product"
)

const (
	platformPrimer = "Você é um assistente virtual de atendimento ao cliente no WhatsApp. " +
		"Responda sempre em português brasileiro, de forma clara, educada e objetiva. " +
		"Use apenas as informações fornecidas abaixo; nunca invente produtos, preços ou condições."

	noProductsSentence = "Ainda não há produtos cadastrados no catálogo. " +
		"Informe o cliente com gentileza e ofereça ajuda com outras dúvidas."

	closingInstructions = "INSTRUÇÕES DE FORMATAÇÃO:\n" +
		"- Mensagens curtas, adequadas ao WhatsApp.\n" +
		"- Não use markdown, tabelas ou formatação especial.\n" +
		"- Sempre informe preços no formato R$ 0,00.\n" +
		"- Se não souber a resposta, diga que vai verificar e oriente o cliente a aguardar."

	// NoCodePlaceholder is rendered in place of a missing product code.
	NoCodePlaceholder = "S/C"
)

// toneDirectives maps the tone enum to its prompt sentence. Unknown or empty
// tones produce no directive.
var toneDirectives = map[assistantconfig.Tone]string{
	assistantconfig.ToneFriendly:  "Use um tom amigável e acolhedor, com linguagem próxima e simpática.",
	assistantconfig.ToneFormal:    "Use um tom formal e profissional, tratando o cliente com cortesia.",
	assistantconfig.ToneCasual:    "Use um tom descontraído e informal, como uma conversa entre amigos.",
	assistantconfig.ToneTechnical: "Use um tom técnico e preciso, com informações detalhadas e corretas.",
}

// PromptBuilder renders an assistant config, catalog and optional product
// context into the system prompt. It is a pure function of its inputs: no
// I/O, no randomness, identical input gives byte-identical output.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

type PromptInput struct {
	Config assistantconfig.AssistantConfig
	// Products is the tenant's active catalog, rendered grouped by category.
	Products []product.Product
	// ProductContext is inserted verbatim when non-empty.
	ProductContext string
	// StorefrontLink is the public vitrine URL, rendered in the storefront
	// section when the storefront is enabled.
	StorefrontLink string
}

func (b *PromptBuilder) Build(input PromptInput) string {
	var sections []string
	sections = append(sections, platformPrimer)

	identity := input.Config.Identity()
	if identity.AssistantName != "" {
		sections = append(sections, fmt.Sprintf("Seu nome é %s.", identity.AssistantName))
	}
	if directive, ok := toneDirectives[identity.Tone]; ok {
		sections = append(sections, directive)
	}
	if identity.Greeting != "" {
		sections = append(sections, fmt.Sprintf("Saudação inicial: %s", identity.Greeting))
	}
	if identity.Farewell != "" {
		sections = append(sections, fmt.Sprintf("Despedida: %s", identity.Farewell))
	}

	if company := input.Config.Company(); company.HasProfile() {
		sections = append(sections, b.companySection(company))
	}

	if rules := input.Config.BehaviorRules(); rules != "" {
		sections = append(sections, "REGRAS DE COMPORTAMENTO:\n"+rules)
	}

	if input.ProductContext != "" {
		sections = append(sections, input.ProductContext)
	}

	if len(input.Products) > 0 {
		sections = append(sections, b.catalogSection(input.Products))
	} else if input.ProductContext == "" {
		sections = append(sections, noProductsSentence)
	}

	if storefront := input.Config.Storefront(); storefront.Enabled {
		sections = append(sections, b.storefrontSection(storefront, input.StorefrontLink))
	}

	sections = append(sections, closingInstructions)

	return strings.Join(sections, "\n\n")
}

func (b *PromptBuilder) companySection(company assistantconfig.Company) string {
	lines := []string{"INFORMAÇÕES DA EMPRESA:"}
	appendLine := func(label, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", label, value))
		}
	}
	appendLine("Empresa", company.Name)
	appendLine("Segmento", company.Segment)
	appendLine("Missão", company.Mission)
	appendLine("Horário de atendimento", company.ResolvedHours())
	appendLine("Formas de pagamento", company.PaymentTerms)
	appendLine("Endereço", company.Address)
	appendLine("Políticas", company.Policies)
	appendLine("Promoções", company.Promotions)
	return strings.Join(lines, "\n")
}

func (b *PromptBuilder) catalogSection(products []product.Product) string {
	// Group by category preserving first-appearance order so the output is
	// deterministic for a given catalog ordering.
	var categories []string
	grouped := make(map[string][]product.Product)
	for _, p := range products {
		category := p.CategoryOrDefault()
		if _, ok := grouped[category]; !ok {
			categories = append(categories, category)
		}
		grouped[category] = append(grouped[category], p)
	}

	lines := []string{"CATÁLOGO DE PRODUTOS:"}
	for _, category := range categories {
		lines = append(lines, "", category+":")
		for _, p := range grouped[category] {
			lines = append(lines, ProductLine(p))
		}
	}
	return strings.Join(lines, "\n")
}

func (b *PromptBuilder) storefrontSection(storefront assistantconfig.Storefront, link string) string {
	lines := []string{"VITRINE ONLINE:"}
	if storefront.Name != "" {
		lines = append(lines, fmt.Sprintf("Nome: %s", storefront.Name))
	}
	if link != "" {
		lines = append(lines, fmt.Sprintf("Link da vitrine: %s", link))
		lines = append(lines, "Compartilhe o link da vitrine quando o cliente pedir para ver os produtos.")
	}
	return strings.Join(lines, "\n")
}

// ProductLine renders a single catalog line: name, code or the S/C
// placeholder, price in BRL and the description when present.
func ProductLine(p product.Product) string {
	code := p.Code()
	if code == "" {
		code = NoCodePlaceholder
	}
	line := fmt.Sprintf("- %s (%s) — %s", p.Name(), code, FormatPriceBRL(p.Price()))
	if p.Description() != "" {
		line += fmt.Sprintf(": %s", p.Description())
	}
	return line
}

// FormatPriceBRL renders a price in Brazilian currency format: "R$ " prefix,
// two decimals, comma as decimal separator and dots grouping thousands.
func FormatPriceBRL(price decimal.Decimal) string {
	fixed := price.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	integer, cents := parts[0], parts[1]

	var grouped strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("R$ %s%s,%s", sign, grouped.String(), cents)
}
