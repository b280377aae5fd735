package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/atendezap/atendezap/modules/assistant/domain/entities/assistantconfig"
	"github.com/atendezap/atendezap/modules/assistant/infrastructure/persistence/models"
	"github.com/atendezap/atendezap/pkg/composables"
)

const (
	assistantConfigFindQuery = `
		SELECT c.tenant_id, c.config, r.rules, c.created_at, c.updated_at
		FROM assistant_configs c
		LEFT JOIN ai_behavior_rules r ON r.tenant_id = c.tenant_id`

	assistantConfigUpsertQuery = `
		INSERT INTO assistant_configs (tenant_id, config, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tenant_id) DO UPDATE SET
			config = EXCLUDED.config,
			updated_at = EXCLUDED.updated_at
	`

	behaviorRulesUpsertQuery = `
		INSERT INTO ai_behavior_rules (tenant_id, rules, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (tenant_id) DO UPDATE SET
			rules = EXCLUDED.rules,
			updated_at = now()
	`
)

type AssistantConfigRepository struct{}

func NewAssistantConfigRepository() assistantconfig.Repository {
	return &AssistantConfigRepository{}
}

func (r *AssistantConfigRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) (assistantconfig.AssistantConfig, error) {
	return r.queryConfig(ctx, assistantConfigFindQuery+" WHERE c.tenant_id = $1", tenantID.String())
}

func (r *AssistantConfigRepository) GetBySlug(ctx context.Context, slug string) (assistantconfig.AssistantConfig, error) {
	return r.queryConfig(
		ctx,
		assistantConfigFindQuery+`
		WHERE c.config->'storefront'->>'slug' = $1
		  AND (c.config->'storefront'->>'enabled')::boolean`,
		slug,
	)
}

func (r *AssistantConfigRepository) Save(ctx context.Context, config assistantconfig.AssistantConfig) (assistantconfig.AssistantConfig, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	dbRow, err := ToDBAssistantConfig(config)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(
		ctx,
		assistantConfigUpsertQuery,
		dbRow.TenantID,
		dbRow.Config,
		dbRow.CreatedAt,
		dbRow.UpdatedAt,
	); err != nil {
		return nil, errors.Wrap(err, "failed to save assistant config")
	}
	if _, err := tx.Exec(ctx, behaviorRulesUpsertQuery, dbRow.TenantID, config.BehaviorRules()); err != nil {
		return nil, errors.Wrap(err, "failed to save behavior rules")
	}

	return r.GetByTenantID(ctx, config.TenantID())
}

func (r *AssistantConfigRepository) queryConfig(ctx context.Context, query string, args ...any) (assistantconfig.AssistantConfig, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	var dbRow models.AssistantConfig
	if err := tx.QueryRow(ctx, query, args...).Scan(
		&dbRow.TenantID,
		&dbRow.Config,
		&dbRow.Rules,
		&dbRow.CreatedAt,
		&dbRow.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assistantconfig.ErrConfigNotFound
		}
		return nil, errors.Wrap(err, "failed to query assistant config")
	}

	return ToDomainAssistantConfig(&dbRow)
}
