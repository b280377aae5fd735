package services

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/atendezap/atendezap/modules/assistant/domain/entities/assistantconfig"
	"github.com/atendezap/atendezap/pkg/composables"
	"github.com/atendezap/atendezap/pkg/eventbus"
)

type AssistantConfigService struct {
	repo      assistantconfig.Repository
	publisher eventbus.EventBus
}

func NewAssistantConfigService(repo assistantconfig.Repository, publisher eventbus.EventBus) *AssistantConfigService {
	return &AssistantConfigService{repo: repo, publisher: publisher}
}

// GetOrDefault returns the tenant's saved config, or the default config for
// tenants that never saved one.
func (s *AssistantConfigService) GetOrDefault(ctx context.Context) (assistantconfig.AssistantConfig, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	config, err := s.repo.GetByTenantID(ctx, tenantID)
	if errors.Is(err, assistantconfig.ErrConfigNotFound) {
		return assistantconfig.Default(tenantID), nil
	}
	if err != nil {
		return nil, err
	}
	return config, nil
}

type SaveConfigDTO struct {
	Identity   assistantconfig.Identity
	Company    assistantconfig.Company
	Storefront assistantconfig.Storefront
}

func (s *AssistantConfigService) Save(ctx context.Context, dto SaveConfigDTO) (assistantconfig.AssistantConfig, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.GetOrDefault(ctx)
	if err != nil {
		return nil, err
	}

	next, err := assistantconfig.New(
		tenantID,
		assistantconfig.WithIdentity(dto.Identity),
		assistantconfig.WithCompany(dto.Company),
		assistantconfig.WithStorefront(dto.Storefront),
		assistantconfig.WithBehaviorRules(current.BehaviorRules()),
		assistantconfig.WithCreatedAt(current.CreatedAt()),
	)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, next)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&assistantconfig.UpdatedEvent{TenantID: tenantID, Result: saved})
	return saved, nil
}

// SaveBehaviorRules replaces the tenant's free-text behavior rules keeping
// the rest of the config untouched.
func (s *AssistantConfigService) SaveBehaviorRules(ctx context.Context, rules string) (assistantconfig.AssistantConfig, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.GetOrDefault(ctx)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, current.SetBehaviorRules(rules))
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&assistantconfig.BehaviorRulesUpdatedEvent{TenantID: tenantID, Rules: rules})
	return saved, nil
}
