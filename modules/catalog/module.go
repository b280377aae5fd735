package catalog

import (
	"embed"

	"github.com/atendezap/atendezap/modules/catalog/infrastructure/persistence"
	"github.com/atendezap/atendezap/modules/catalog/presentation/controllers"
	"github.com/atendezap/atendezap/modules/catalog/services"
	"github.com/atendezap/atendezap/pkg/application"
)

//go:embed infrastructure/persistence/schema/catalog-schema.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	productRepo := persistence.NewProductRepository()
	app.RegisterServices(
		services.NewProductService(productRepo, app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewProductAPIController(controllers.ProductAPIControllerConfig{
			BasePath: "/api/v1/catalog/products",
			App:      app,
		}),
	)
	app.Migrations().RegisterSchema(&MigrationFiles)
	return nil
}

func (m *Module) Name() string {
	return "catalog"
}
