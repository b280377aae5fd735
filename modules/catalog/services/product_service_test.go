package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atendezap/atendezap/modules/catalog/domain/entities/product"
	"github.com/atendezap/atendezap/modules/catalog/infrastructure/persistence"
	"github.com/atendezap/atendezap/modules/catalog/services"
	"github.com/atendezap/atendezap/pkg/eventbus"
	"github.com/atendezap/atendezap/pkg/logging"
	"github.com/atendezap/atendezap/pkg/mapping"
	"github.com/atendezap/atendezap/pkg/testutils"
	"github.com/sirupsen/logrus"
)

func setupProductService() *services.ProductService {
	repo := persistence.NewInmemProductRepository()
	publisher := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))
	return services.NewProductService(repo, publisher)
}

func TestProductService_Create(t *testing.T) {
	env := testutils.NewTestContext().Build(t)
	svc := setupProductService()

	created, err := svc.Create(env.Ctx, services.CreateProductDTO{
		Code:     "isa",
		Name:     "Plano ISA",
		Price:    decimal.NewFromFloat(299.90),
		Category: "Planos",
	})
	require.NoError(t, err)
	assert.Equal(t, env.TenantID, created.TenantID())
	assert.Equal(t, "ISA", created.Code())

	found, err := svc.GetByID(env.Ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Plano ISA", found.Name())
}

func TestProductService_Create_Invalid(t *testing.T) {
	env := testutils.NewTestContext().Build(t)
	svc := setupProductService()

	_, err := svc.Create(env.Ctx, services.CreateProductDTO{Name: "", Price: decimal.NewFromInt(10)})
	require.ErrorIs(t, err, product.ErrEmptyName)
}

func TestProductService_Update(t *testing.T) {
	env := testutils.NewTestContext().Build(t)
	svc := setupProductService()

	created, err := svc.Create(env.Ctx, services.CreateProductDTO{
		Name:  "Plano Base",
		Price: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	updated, err := svc.Update(env.Ctx, services.UpdateProductDTO{
		ID:       created.ID(),
		Name:     mapping.Pointer("Plano Top"),
		Price:    mapping.Pointer(decimal.NewFromFloat(199.90)),
		IsActive: mapping.Pointer(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Plano Top", updated.Name())
	assert.False(t, updated.IsActive())
}

func TestProductService_TenantIsolation(t *testing.T) {
	svc := setupProductService()

	ownerEnv := testutils.NewTestContext().Build(t)
	created, err := svc.Create(ownerEnv.Ctx, services.CreateProductDTO{
		Name:  "Plano Fibra",
		Price: decimal.NewFromInt(120),
	})
	require.NoError(t, err)

	otherEnv := testutils.NewTestContext().Build(t)

	_, err = svc.Update(otherEnv.Ctx, services.UpdateProductDTO{
		ID:   created.ID(),
		Name: mapping.Pointer("Invasor"),
	})
	require.ErrorIs(t, err, product.ErrProductNotFound)

	err = svc.Delete(otherEnv.Ctx, created.ID())
	require.ErrorIs(t, err, product.ErrProductNotFound)

	all, err := svc.GetAll(otherEnv.Ctx, product.FindParams{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProductService_GetAll_ActiveOnly(t *testing.T) {
	env := testutils.NewTestContext().Build(t)
	svc := setupProductService()

	active, err := svc.Create(env.Ctx, services.CreateProductDTO{Name: "Ativo", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)
	inactive, err := svc.Create(env.Ctx, services.CreateProductDTO{Name: "Inativo", Price: decimal.NewFromInt(20)})
	require.NoError(t, err)

	_, err = svc.Update(env.Ctx, services.UpdateProductDTO{
		ID:       inactive.ID(),
		IsActive: mapping.Pointer(false),
	})
	require.NoError(t, err)

	all, err := svc.GetAll(env.Ctx, product.FindParams{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyActive, err := svc.GetAll(env.Ctx, product.FindParams{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	assert.Equal(t, active.ID(), onlyActive[0].ID())
}

func TestProductService_GetAll_Paginated(t *testing.T) {
	env := testutils.NewTestContext().Build(t)
	svc := setupProductService()

	names := []string{"Plano 1", "Plano 2", "Plano 3", "Plano 4", "Plano 5"}
	for _, name := range names {
		_, err := svc.Create(env.Ctx, services.CreateProductDTO{Name: name, Price: decimal.NewFromInt(10)})
		require.NoError(t, err)
	}

	page, err := svc.GetAll(env.Ctx, product.FindParams{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Plano 1", page[0].Name())
	assert.Equal(t, "Plano 2", page[1].Name())

	page, err = svc.GetAll(env.Ctx, product.FindParams{Limit: 2, Offset: 4})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Plano 5", page[0].Name())

	page, err = svc.GetAll(env.Ctx, product.FindParams{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestProductService_Delete(t *testing.T) {
	env := testutils.NewTestContext().Build(t)
	svc := setupProductService()

	created, err := svc.Create(env.Ctx, services.CreateProductDTO{Name: "Descartável", Price: decimal.NewFromInt(5)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(env.Ctx, created.ID()))

	_, err = svc.GetByID(env.Ctx, created.ID())
	require.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestProductService_MissingTenant(t *testing.T) {
	svc := setupProductService()

	_, err := svc.Create(context.Background(), services.CreateProductDTO{Name: "Sem tenant", Price: decimal.NewFromInt(1)})
	require.Error(t, err)
}
