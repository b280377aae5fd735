package persistence

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/atendezap/atendezap/modules/catalog/domain/entities/product"
	"github.com/atendezap/atendezap/modules/catalog/infrastructure/persistence/models"
	"github.com/atendezap/atendezap/pkg/composables"
)

const (
	productFindQuery = `
		SELECT id, tenant_id, code, name, price, description, category, is_active, created_at, updated_at
		FROM products`

	productUpsertQuery = `
		INSERT INTO products (id, tenant_id, code, name, price, description, category, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			code = EXCLUDED.code,
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at
	`
)

type ProductRepository struct{}

func NewProductRepository() product.Repository {
	return &ProductRepository{}
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (product.Product, error) {
	products, err := r.queryProducts(ctx, productFindQuery+" WHERE id = $1", id.String())
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, product.ErrProductNotFound
	}
	return products[0], nil
}

func (r *ProductRepository) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (product.Product, error) {
	products, err := r.queryProducts(
		ctx,
		productFindQuery+" WHERE tenant_id = $1 AND upper(code) = upper($2) ORDER BY created_at LIMIT 1",
		tenantID.String(),
		code,
	)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, product.ErrProductNotFound
	}
	return products[0], nil
}

func (r *ProductRepository) GetAll(ctx context.Context, tenantID uuid.UUID, params product.FindParams) ([]product.Product, error) {
	query := productFindQuery + " WHERE tenant_id = $1"
	if params.ActiveOnly {
		query += " AND is_active"
	}
	query += " ORDER BY created_at"
	if params.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", params.Limit)
	}
	if params.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", params.Offset)
	}
	return r.queryProducts(ctx, query, tenantID.String())
}

func (r *ProductRepository) Save(ctx context.Context, p product.Product) (product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	dbRow := ToDBProduct(p)
	if _, err := tx.Exec(
		ctx,
		productUpsertQuery,
		dbRow.ID,
		dbRow.TenantID,
		dbRow.Code,
		dbRow.Name,
		dbRow.Price,
		dbRow.Description,
		dbRow.Category,
		dbRow.IsActive,
		dbRow.CreatedAt,
		dbRow.UpdatedAt,
	); err != nil {
		return nil, errors.Wrap(err, "failed to save product")
	}

	return r.GetByID(ctx, p.ID())
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, "DELETE FROM products WHERE id = $1", id.String())
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query products")
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		var dbRow models.Product
		if err := rows.Scan(
			&dbRow.ID,
			&dbRow.TenantID,
			&dbRow.Code,
			&dbRow.Name,
			&dbRow.Price,
			&dbRow.Description,
			&dbRow.Category,
			&dbRow.IsActive,
			&dbRow.CreatedAt,
			&dbRow.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan product row")
		}
		p, err := ToDomainProduct(&dbRow)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate product rows")
	}
	return products, nil
}
