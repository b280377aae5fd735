package core

import (
	"embed"

	"github.com/atendezap/atendezap/modules/core/infrastructure/persistence"
	"github.com/atendezap/atendezap/modules/core/presentation/controllers"
	"github.com/atendezap/atendezap/modules/core/services"
	"github.com/atendezap/atendezap/pkg/application"
)

//go:embed infrastructure/persistence/schema/core-schema.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	tenantRepo := persistence.NewTenantRepository()
	app.RegisterServices(
		services.NewTenantService(tenantRepo),
	)
	app.RegisterControllers(
		controllers.NewHealthController(),
	)
	app.Migrations().RegisterSchema(&MigrationFiles)
	return nil
}

func (m *Module) Name() string {
	return "core"
}
