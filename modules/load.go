package modules

import (
	"github.com/atendezap/atendezap/modules/assistant"
	"github.com/atendezap/atendezap/modules/catalog"
	"github.com/atendezap/atendezap/modules/core"
	"github.com/atendezap/atendezap/modules/vitrine"
	"github.com/atendezap/atendezap/pkg/application"
)

// BuiltInModules lists every module in registration order. Order matters:
// assistant and vitrine resolve services registered by core and catalog.
var BuiltInModules = []application.Module{
	core.NewModule(),
	catalog.NewModule(),
	assistant.NewModule(),
	vitrine.NewModule(),
}

func Load(app application.Application, mods ...application.Module) error {
	for _, module := range mods {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
