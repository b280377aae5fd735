package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/go-faster/errors"

	"github.com/atendezap/atendezap/modules/assistant/domain/entities/assistantconfig"
	"github.com/atendezap/atendezap/modules/assistant/infrastructure/llm"
	"github.com/atendezap/atendezap/modules/assistant/infrastructure/replycache"
	"github.com/atendezap/atendezap/modules/catalog/domain/entities/product"
	vitrineServices "github.com/atendezap/atendezap/modules/vitrine/services"
	"github.com/atendezap/atendezap/pkg/composables"
	"github.com/atendezap/atendezap/pkg/eventbus"
)

// Completer is the outbound side of the chat service; the tiered fallback
// client satisfies it.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

type ReplyDTO struct {
	Matricula string
	Message   string
	// ConfigOverride, when set, replaces the tenant's stored config for this
	// request. The dashboard "test" flow sends unsaved configs this way.
	ConfigOverride assistantconfig.AssistantConfig
}

type ChatServiceConfig struct {
	ConfigRepo  assistantconfig.Repository
	ProductRepo product.Repository
	Completer   Completer
	Publisher   eventbus.EventBus
	// Origin is the public base URL used to build storefront links.
	Origin string
	// Cache is optional; nil disables reply caching.
	Cache replycache.ReplyCache
}

// ChatService turns a customer message into an AI reply: load config and
// catalog, resolve referenced products, compile the system prompt and walk
// the model ladder. Each call is stateless and self-contained.
type ChatService struct {
	configRepo  assistantconfig.Repository
	productRepo product.Repository
	completer   Completer
	publisher   eventbus.EventBus
	origin      string
	cache       replycache.ReplyCache

	resolver *ProductResolver
	builder  *PromptBuilder
}

func NewChatService(cfg ChatServiceConfig) *ChatService {
	return &ChatService{
		configRepo:  cfg.ConfigRepo,
		productRepo: cfg.ProductRepo,
		completer:   cfg.Completer,
		publisher:   cfg.Publisher,
		origin:      cfg.Origin,
		cache:       cfg.Cache,
		resolver:    NewProductResolver(),
		builder:     NewPromptBuilder(),
	}
}

func (s *ChatService) Reply(ctx context.Context, dto ReplyDTO) (string, error) {
	logger := composables.UseLogger(ctx)
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return "", err
	}

	config := dto.ConfigOverride
	if config == nil {
		config, err = s.configRepo.GetByTenantID(ctx, tenantID)
		if errors.Is(err, assistantconfig.ErrConfigNotFound) {
			config = assistantconfig.Default(tenantID)
		} else if err != nil {
			return "", err
		}
	}

	products, err := s.productRepo.GetAll(ctx, tenantID, product.FindParams{ActiveOnly: true})
	if err != nil {
		return "", err
	}

	resolution := s.resolver.Resolve(dto.Message, products)
	prompt := s.builder.Build(PromptInput{
		Config:         config,
		Products:       products,
		ProductContext: ProductContextBlock(resolution),
		StorefrontLink: s.storefrontLink(config),
	})

	cacheKey := s.cacheKey(tenantID.String(), prompt, dto.Message)
	if cached := s.cachedReply(ctx, cacheKey); cached != "" {
		logger.WithField("matricula", dto.Matricula).Info("replying from cache")
		s.publisher.Publish(&ChatRepliedEvent{
			TenantID:  tenantID,
			Matricula: dto.Matricula,
			Message:   dto.Message,
			Reply:     cached,
			Cached:    true,
		})
		return cached, nil
	}

	reply, err := s.completer.Complete(ctx, prompt, dto.Message)
	if err != nil {
		s.publisher.Publish(&ChatFailedEvent{TenantID: tenantID, Matricula: dto.Matricula})
		if errors.Is(err, llm.ErrAllModelsFailed) {
			return "", errors.Wrap(err, "assistant indisponível no momento")
		}
		return "", err
	}
	reply = strings.TrimSpace(reply)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, reply); err != nil {
			logger.WithError(err).Warn("failed to cache reply")
		}
	}

	s.publisher.Publish(&ChatRepliedEvent{
		TenantID:  tenantID,
		Matricula: dto.Matricula,
		Message:   dto.Message,
		Reply:     reply,
	})
	return reply, nil
}

func (s *ChatService) storefrontLink(config assistantconfig.AssistantConfig) string {
	storefront := config.Storefront()
	if !storefront.Enabled || storefront.Slug == "" {
		return ""
	}
	return vitrineServices.StorefrontLink(s.origin, storefront.Slug)
}

func (s *ChatService) cachedReply(ctx context.Context, key string) string {
	if s.cache == nil {
		return ""
	}
	reply, err := s.cache.Get(ctx, key)
	if err != nil {
		composables.UseLogger(ctx).WithError(err).Warn("reply cache lookup failed")
		return ""
	}
	return reply
}

func (s *ChatService) cacheKey(parts ...string) string {
	hash := sha256.New()
	for _, part := range parts {
		hash.Write([]byte(part))
		hash.Write([]byte{0})
	}
	return hex.EncodeToString(hash.Sum(nil))
}

// ProductContextBlock renders the resolved products into the explicit
// context block inserted verbatim into the prompt. Empty resolutions render
// nothing.
func ProductContextBlock(resolution Resolution) string {
	if resolution.Empty() {
		return ""
	}

	var lines []string
	if resolution.Focused != nil {
		lines = append(lines, "PRODUTO EM FOCO (o cliente mencionou este produto):", ProductLine(resolution.Focused))
	}
	if len(resolution.Related) > 0 {
		lines = append(lines, "PRODUTOS RELACIONADOS À MENSAGEM:")
		for _, p := range resolution.Related {
			lines = append(lines, ProductLine(p))
		}
	}
	return strings.Join(lines, "\n")
}
