package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/atendezap/atendezap/modules/assistant/domain/entities/assistantconfig"
)

type InmemAssistantConfigRepository struct {
	mu      sync.RWMutex
	configs map[uuid.UUID]assistantconfig.AssistantConfig
}

func NewInmemAssistantConfigRepository() *InmemAssistantConfigRepository {
	return &InmemAssistantConfigRepository{configs: map[uuid.UUID]assistantconfig.AssistantConfig{}}
}

func (r *InmemAssistantConfigRepository) GetByTenantID(_ context.Context, tenantID uuid.UUID) (assistantconfig.AssistantConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	config, ok := r.configs[tenantID]
	if !ok {
		return nil, assistantconfig.ErrConfigNotFound
	}
	return config, nil
}

func (r *InmemAssistantConfigRepository) GetBySlug(_ context.Context, slug string) (assistantconfig.AssistantConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, config := range r.configs {
		storefront := config.Storefront()
		if storefront.Enabled && storefront.Slug == slug {
			return config, nil
		}
	}
	return nil, assistantconfig.ErrConfigNotFound
}

func (r *InmemAssistantConfigRepository) Save(_ context.Context, config assistantconfig.AssistantConfig) (assistantconfig.AssistantConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[config.TenantID()] = config
	return config, nil
}
