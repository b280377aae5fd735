package persistence

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/atendezap/atendezap/modules/core/domain/entities/tenant"
)

// InmemTenantRepository is a map-backed repository used by tests and local
// development without Postgres.
type InmemTenantRepository struct {
	mu      sync.RWMutex
	tenants map[uuid.UUID]tenant.Tenant
}

func NewInmemTenantRepository() *InmemTenantRepository {
	return &InmemTenantRepository{tenants: make(map[uuid.UUID]tenant.Tenant)}
}

func (r *InmemTenantRepository) GetByID(_ context.Context, id uuid.UUID) (tenant.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tenants[id]
	if !ok {
		return nil, tenant.ErrTenantNotFound
	}
	return t, nil
}

func (r *InmemTenantRepository) GetByMatricula(_ context.Context, matricula string) (tenant.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tenants {
		if t.Matricula() == matricula {
			return t, nil
		}
	}
	return nil, tenant.ErrTenantNotFound
}

func (r *InmemTenantRepository) Save(_ context.Context, t tenant.Tenant) (tenant.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tenants[t.ID()] = t
	return t, nil
}

func (r *InmemTenantRepository) List(_ context.Context) ([]tenant.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tenants := make([]tenant.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		tenants = append(tenants, t)
	}
	sort.Slice(tenants, func(i, j int) bool {
		return tenants[i].CreatedAt().Before(tenants[j].CreatedAt())
	})
	return tenants, nil
}
