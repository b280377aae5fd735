package persistence

import (
	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/atendezap/atendezap/modules/core/domain/entities/tenant"
	"github.com/atendezap/atendezap/modules/core/infrastructure/persistence/models"
	"github.com/atendezap/atendezap/pkg/mapping"
)

func ToDomainTenant(dbRow *models.Tenant) (tenant.Tenant, error) {
	id, err := uuid.Parse(dbRow.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse tenant id")
	}
	return tenant.New(
		dbRow.Matricula,
		dbRow.Name,
		tenant.WithID(id),
		tenant.WithEmail(mapping.SQLNullStringToValue(dbRow.Email)),
		tenant.WithActive(dbRow.IsActive),
		tenant.WithCreatedAt(dbRow.CreatedAt),
		tenant.WithUpdatedAt(dbRow.UpdatedAt),
	)
}

func ToDBTenant(t tenant.Tenant) *models.Tenant {
	return &models.Tenant{
		ID:        t.ID().String(),
		Matricula: t.Matricula(),
		Name:      t.Name(),
		Email:     mapping.ValueToSQLNullString(t.Email()),
		IsActive:  t.IsActive(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}
