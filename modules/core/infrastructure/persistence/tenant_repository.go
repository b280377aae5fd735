package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/atendezap/atendezap/modules/core/domain/entities/tenant"
	"github.com/atendezap/atendezap/modules/core/infrastructure/persistence/models"
	"github.com/atendezap/atendezap/pkg/composables"
)

const (
	tenantFindQuery = `SELECT id, matricula, name, email, is_active, created_at, updated_at FROM tenants`

	tenantUpsertQuery = `
		INSERT INTO tenants (id, matricula, name, email, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at
	`
)

type TenantRepository struct{}

func NewTenantRepository() tenant.Repository {
	return &TenantRepository{}
}

func (r *TenantRepository) GetByID(ctx context.Context, id uuid.UUID) (tenant.Tenant, error) {
	tenants, err := r.queryTenants(ctx, tenantFindQuery+" WHERE id = $1", id.String())
	if err != nil {
		return nil, err
	}
	if len(tenants) == 0 {
		return nil, tenant.ErrTenantNotFound
	}
	return tenants[0], nil
}

func (r *TenantRepository) GetByMatricula(ctx context.Context, matricula string) (tenant.Tenant, error) {
	tenants, err := r.queryTenants(ctx, tenantFindQuery+" WHERE matricula = $1", matricula)
	if err != nil {
		return nil, err
	}
	if len(tenants) == 0 {
		return nil, tenant.ErrTenantNotFound
	}
	return tenants[0], nil
}

func (r *TenantRepository) Save(ctx context.Context, t tenant.Tenant) (tenant.Tenant, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	dbRow := ToDBTenant(t)
	if _, err := tx.Exec(
		ctx,
		tenantUpsertQuery,
		dbRow.ID,
		dbRow.Matricula,
		dbRow.Name,
		dbRow.Email,
		dbRow.IsActive,
		dbRow.CreatedAt,
		dbRow.UpdatedAt,
	); err != nil {
		return nil, errors.Wrap(err, "failed to save tenant")
	}

	return r.GetByID(ctx, t.ID())
}

func (r *TenantRepository) List(ctx context.Context) ([]tenant.Tenant, error) {
	return r.queryTenants(ctx, tenantFindQuery+" ORDER BY created_at")
}

func (r *TenantRepository) queryTenants(ctx context.Context, query string, args ...any) ([]tenant.Tenant, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query tenants")
	}
	defer rows.Close()

	var tenants []tenant.Tenant
	for rows.Next() {
		var dbRow models.Tenant
		if err := rows.Scan(
			&dbRow.ID,
			&dbRow.Matricula,
			&dbRow.Name,
			&dbRow.Email,
			&dbRow.IsActive,
			&dbRow.CreatedAt,
			&dbRow.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan tenant row")
		}
		t, err := ToDomainTenant(&dbRow)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.Wrap(err, "failed to iterate tenant rows")
	}
	return tenants, nil
}
