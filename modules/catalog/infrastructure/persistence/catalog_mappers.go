package persistence

import (
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atendezap/atendezap/modules/catalog/domain/entities/product"
	"github.com/atendezap/atendezap/modules/catalog/infrastructure/persistence/models"
	"github.com/atendezap/atendezap/pkg/mapping"
)

func ToDomainProduct(dbRow *models.Product) (product.Product, error) {
	id, err := uuid.Parse(dbRow.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse product id")
	}
	tenantID, err := uuid.Parse(dbRow.TenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse product tenant id")
	}
	price, err := decimal.NewFromString(dbRow.Price)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse product price")
	}
	return product.New(
		tenantID,
		dbRow.Name,
		price,
		product.WithID(id),
		product.WithCode(mapping.SQLNullStringToValue(dbRow.Code)),
		product.WithDescription(mapping.SQLNullStringToValue(dbRow.Description)),
		product.WithCategory(mapping.SQLNullStringToValue(dbRow.Category)),
		product.WithActive(dbRow.IsActive),
		product.WithCreatedAt(dbRow.CreatedAt),
		product.WithUpdatedAt(dbRow.UpdatedAt),
	)
}

func ToDBProduct(p product.Product) *models.Product {
	return &models.Product{
		ID:          p.ID().String(),
		TenantID:    p.TenantID().String(),
		Code:        mapping.ValueToSQLNullString(p.Code()),
		Name:        p.Name(),
		Price:       p.Price().String(),
		Description: mapping.ValueToSQLNullString(p.Description()),
		Category:    mapping.ValueToSQLNullString(p.Category()),
		IsActive:    p.IsActive(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
