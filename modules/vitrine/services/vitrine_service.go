package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/atendezap/atendezap/modules/assistant/domain/entities/assistantconfig"
	"github.com/atendezap/atendezap/modules/catalog/domain/entities/product"
)

// StorefrontLink builds the public vitrine URL for a storefront slug.
func StorefrontLink(origin, slug string) string {
	return fmt.Sprintf("%s/vitrine/%s", strings.TrimRight(origin, "/"), slug)
}

// Vitrine is the public read model of a tenant's storefront: its identity
// plus the active catalog grouped by category.
type Vitrine struct {
	Name       string
	Theme      string
	Slug       string
	Categories []CategoryGroup
}

type CategoryGroup struct {
	Name     string
	Products []product.Product
}

type VitrineService struct {
	configRepo  assistantconfig.Repository
	productRepo product.Repository
}

func NewVitrineService(configRepo assistantconfig.Repository, productRepo product.Repository) *VitrineService {
	return &VitrineService{configRepo: configRepo, productRepo: productRepo}
}

// GetBySlug resolves a public storefront by its slug. Only enabled
// storefronts resolve; disabled or unknown slugs surface ErrConfigNotFound.
func (s *VitrineService) GetBySlug(ctx context.Context, slug string) (*Vitrine, error) {
	config, err := s.configRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.GetAll(ctx, config.TenantID(), product.FindParams{ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	storefront := config.Storefront()
	vitrine := &Vitrine{
		Name:  storefront.Name,
		Theme: storefront.Theme,
		Slug:  storefront.Slug,
	}

	grouped := make(map[string]int)
	for _, p := range products {
		category := p.CategoryOrDefault()
		idx, ok := grouped[category]
		if !ok {
			idx = len(vitrine.Categories)
			grouped[category] = idx
			vitrine.Categories = append(vitrine.Categories, CategoryGroup{Name: category})
		}
		vitrine.Categories[idx].Products = append(vitrine.Categories[idx].Products, p)
	}

	return vitrine, nil
}
