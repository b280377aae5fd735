package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/atendezap/atendezap/pkg/composables"
	"github.com/atendezap/atendezap/pkg/configuration"
	"github.com/atendezap/atendezap/pkg/eventbus"
)

// ErrAllModelsFailed signals that every candidate across every tier was
// tried and none produced content. Per-candidate errors stay in the logs.
var ErrAllModelsFailed = errors.New("all models failed")

// Tier is an ordered group of model identifiers tried before falling
// through to the next tier.
type Tier struct {
	Name        string
	Provider    Provider
	Models      []string
	Temperature float64
	MaxTokens   int64
}

type AttemptEvent struct {
	Provider string
	Model    string
	Outcome  string
}

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeEmpty   = "empty"
)

type ExhaustedEvent struct {
	Attempts int
}

// FallbackClient walks a static tier ladder strictly in order and returns
// the first non-empty completion. A failed or empty candidate is logged and
// absorbed; only full exhaustion surfaces an error. There is no backoff and
// no memory of failing models between calls.
type FallbackClient struct {
	tiers          []Tier
	attemptTimeout time.Duration
	publisher      eventbus.EventBus
}

func NewFallbackClient(tiers []Tier, attemptTimeout time.Duration, publisher eventbus.EventBus) *FallbackClient {
	return &FallbackClient{
		tiers:          tiers,
		attemptTimeout: attemptTimeout,
		publisher:      publisher,
	}
}

func (c *FallbackClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	logger := composables.UseLogger(ctx)

	attempts := 0
	for _, tier := range c.tiers {
		for _, model := range tier.Models {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			attempts++

			content, err := c.attempt(ctx, tier, model, systemPrompt, userMessage)
			entry := logger.WithFields(logrus.Fields{
				"tier":     tier.Name,
				"provider": tier.Provider.Name(),
				"model":    model,
			})
			switch {
			case err != nil:
				entry.WithError(err).Warn("model attempt failed, trying next candidate")
				c.publish(&AttemptEvent{Provider: tier.Provider.Name(), Model: model, Outcome: OutcomeError})
			case strings.TrimSpace(content) == "":
				entry.Warn("model returned empty content, trying next candidate")
				c.publish(&AttemptEvent{Provider: tier.Provider.Name(), Model: model, Outcome: OutcomeEmpty})
			default:
				c.publish(&AttemptEvent{Provider: tier.Provider.Name(), Model: model, Outcome: OutcomeSuccess})
				return content, nil
			}
		}
	}

	logger.WithField("attempts", attempts).Error("all model candidates exhausted")
	c.publish(&ExhaustedEvent{Attempts: attempts})
	return "", ErrAllModelsFailed
}

func (c *FallbackClient) attempt(ctx context.Context, tier Tier, model, systemPrompt, userMessage string) (string, error) {
	attemptCtx := ctx
	if c.attemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, c.attemptTimeout)
		defer cancel()
	}

	return tier.Provider.Complete(attemptCtx, CompletionRequest{
		Model:        model,
		SystemPrompt: systemPrompt,
		UserMessage:  userMessage,
		Temperature:  tier.Temperature,
		MaxTokens:    tier.MaxTokens,
	})
}

func (c *FallbackClient) publish(event interface{}) {
	if c.publisher != nil {
		c.publisher.Publish(event)
	}
}

// TiersFromConfig assembles the default ladder: the Groq tiers in priority
// order, then a flat OpenRouter tier. Providers without an API key are
// skipped so a partially configured environment still works.
func TiersFromConfig(conf *configuration.Configuration) []Tier {
	tiers := make([]Tier, 0, 4)

	if conf.Groq.APIKey != "" {
		groq := NewOpenAICompatProvider("groq", conf.Groq.BaseURL, conf.Groq.APIKey, nil)
		names := []string{"groq-primary", "groq-secondary", "groq-fallback"}
		for i, models := range conf.GroqTiers() {
			name := "groq"
			if i < len(names) {
				name = names[i]
			}
			tiers = append(tiers, Tier{
				Name:        name,
				Provider:    groq,
				Models:      models,
				Temperature: conf.AI.Temperature,
				MaxTokens:   int64(conf.Groq.MaxTokens),
			})
		}
	}

	if conf.OpenRouter.APIKey != "" {
		openrouter := NewOpenAICompatProvider("openrouter", conf.OpenRouter.BaseURL, conf.OpenRouter.APIKey, map[string]string{
			"HTTP-Referer": conf.OpenRouter.Referer,
			"X-Title":      conf.OpenRouter.Title,
		})
		if models := conf.OpenRouterModels(); len(models) > 0 {
			tiers = append(tiers, Tier{
				Name:        "openrouter",
				Provider:    openrouter,
				Models:      models,
				Temperature: conf.AI.Temperature,
				MaxTokens:   int64(conf.OpenRouter.MaxTokens),
			})
		}
	}

	return tiers
}
