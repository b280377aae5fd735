package vitrine

import (
	assistantPersistence "github.com/atendezap/atendezap/modules/assistant/infrastructure/persistence"
	catalogPersistence "github.com/atendezap/atendezap/modules/catalog/infrastructure/persistence"
	"github.com/atendezap/atendezap/modules/vitrine/presentation/controllers"
	"github.com/atendezap/atendezap/modules/vitrine/services"
	"github.com/atendezap/atendezap/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewVitrineService(
			assistantPersistence.NewAssistantConfigRepository(),
			catalogPersistence.NewProductRepository(),
		),
	)
	app.RegisterControllers(
		controllers.NewVitrineController(controllers.VitrineControllerConfig{
			BasePath: "/api/v1/vitrine",
			App:      app,
		}),
	)
	return nil
}

func (m *Module) Name() string {
	return "vitrine"
}
