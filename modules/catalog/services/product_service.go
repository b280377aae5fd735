package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atendezap/atendezap/modules/catalog/domain/entities/product"
	"github.com/atendezap/atendezap/pkg/composables"
	"github.com/atendezap/atendezap/pkg/eventbus"
)

type CreateProductDTO struct {
	Code        string
	Name        string
	Price       decimal.Decimal
	Description string
	Category    string
}

type UpdateProductDTO struct {
	ID          uuid.UUID
	Code        *string
	Name        *string
	Price       *decimal.Decimal
	Description *string
	Category    *string
	IsActive    *bool
}

type ProductService struct {
	repo      product.Repository
	publisher eventbus.EventBus
}

func NewProductService(repo product.Repository, publisher eventbus.EventBus) *ProductService {
	return &ProductService{repo: repo, publisher: publisher}
}

func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (product.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) GetAll(ctx context.Context, params product.FindParams) ([]product.Product, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx, tenantID, params)
}

func (s *ProductService) Create(ctx context.Context, dto CreateProductDTO) (product.Product, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	p, err := product.New(
		tenantID,
		dto.Name,
		dto.Price,
		product.WithCode(dto.Code),
		product.WithDescription(dto.Description),
		product.WithCategory(dto.Category),
	)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&product.CreatedEvent{TenantID: tenantID, Result: created})
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, dto UpdateProductDTO) (product.Product, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, dto.ID)
	if err != nil {
		return nil, err
	}
	if p.TenantID() != tenantID {
		return nil, product.ErrProductNotFound
	}

	if dto.Code != nil {
		p = p.SetCode(*dto.Code)
	}
	if dto.Name != nil {
		p = p.SetName(*dto.Name)
	}
	if dto.Price != nil {
		if dto.Price.IsNegative() {
			return nil, product.ErrNegativePrice
		}
		p = p.SetPrice(*dto.Price)
	}
	if dto.Description != nil {
		p = p.SetDescription(*dto.Description)
	}
	if dto.Category != nil {
		p = p.SetCategory(*dto.Category)
	}
	if dto.IsActive != nil {
		p = p.SetActive(*dto.IsActive)
	}

	updated, err := s.repo.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&product.UpdatedEvent{TenantID: tenantID, Result: updated})
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.TenantID() != tenantID {
		return product.ErrProductNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(&product.DeletedEvent{TenantID: tenantID, ID: id})
	return nil
}
