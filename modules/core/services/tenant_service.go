package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/atendezap/atendezap/modules/core/domain/entities/tenant"
)

type TenantService struct {
	repo tenant.Repository
}

func NewTenantService(repo tenant.Repository) *TenantService {
	return &TenantService{repo: repo}
}

func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) (tenant.Tenant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TenantService) GetByMatricula(ctx context.Context, matricula string) (tenant.Tenant, error) {
	return s.repo.GetByMatricula(ctx, matricula)
}

func (s *TenantService) Save(ctx context.Context, t tenant.Tenant) (tenant.Tenant, error) {
	return s.repo.Save(ctx, t)
}

func (s *TenantService) List(ctx context.Context) ([]tenant.Tenant, error) {
	return s.repo.List(ctx)
}
