package persistence

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/atendezap/atendezap/modules/catalog/domain/entities/product"
)

// InmemProductRepository is a map-backed repository used by tests.
type InmemProductRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]product.Product
}

func NewInmemProductRepository() *InmemProductRepository {
	return &InmemProductRepository{products: make(map[uuid.UUID]product.Product)}
}

func (r *InmemProductRepository) GetByID(_ context.Context, id uuid.UUID) (product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	return p, nil
}

func (r *InmemProductRepository) GetByCode(_ context.Context, tenantID uuid.UUID, code string) (product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matches []product.Product
	for _, p := range r.products {
		if p.TenantID() == tenantID && p.Code() != "" && strings.EqualFold(p.Code(), code) {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		return nil, product.ErrProductNotFound
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt().Before(matches[j].CreatedAt())
	})
	return matches[0], nil
}

func (r *InmemProductRepository) GetAll(_ context.Context, tenantID uuid.UUID, params product.FindParams) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var products []product.Product
	for _, p := range r.products {
		if p.TenantID() != tenantID {
			continue
		}
		if params.ActiveOnly && !p.IsActive() {
			continue
		}
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt().Before(products[j].CreatedAt())
	})
	if params.Offset > 0 {
		if params.Offset >= len(products) {
			return nil, nil
		}
		products = products[params.Offset:]
	}
	if params.Limit > 0 && params.Limit < len(products) {
		products = products[:params.Limit]
	}
	return products, nil
}

func (r *InmemProductRepository) Save(_ context.Context, p product.Product) (product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID()] = p
	return p, nil
}

func (r *InmemProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return product.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}
