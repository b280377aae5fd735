package assistant

import (
	"embed"

	"github.com/redis/go-redis/v9"

	"github.com/atendezap/atendezap/modules/assistant/infrastructure/llm"
	"github.com/atendezap/atendezap/modules/assistant/infrastructure/persistence"
	"github.com/atendezap/atendezap/modules/assistant/infrastructure/replycache"
	"github.com/atendezap/atendezap/modules/assistant/presentation/controllers"
	"github.com/atendezap/atendezap/modules/assistant/services"
	catalogPersistence "github.com/atendezap/atendezap/modules/catalog/infrastructure/persistence"
	"github.com/atendezap/atendezap/pkg/application"
	"github.com/atendezap/atendezap/pkg/configuration"
	"github.com/atendezap/atendezap/pkg/metrics"
)

//go:embed infrastructure/persistence/schema/assistant-schema.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()

	configRepo := persistence.NewAssistantConfigRepository()
	productRepo := catalogPersistence.NewProductRepository()

	var cache replycache.ReplyCache
	if conf.AI.ReplyCacheEnabled {
		client := redis.NewClient(&redis.Options{Addr: conf.RedisURL})
		cache = replycache.NewRedisReplyCache(client, conf.AI.ReplyCachePrefix, conf.AI.ReplyCacheTTL)
	}

	fallback := llm.NewFallbackClient(
		llm.TiersFromConfig(conf),
		conf.AI.AttemptTimeout,
		app.EventPublisher(),
	)

	app.RegisterServices(
		services.NewAssistantConfigService(configRepo, app.EventPublisher()),
		services.NewChatService(services.ChatServiceConfig{
			ConfigRepo:  configRepo,
			ProductRepo: productRepo,
			Completer:   fallback,
			Publisher:   app.EventPublisher(),
			Origin:      conf.Origin,
			Cache:       cache,
		}),
	)
	app.RegisterControllers(
		controllers.NewChatAPIController(controllers.ChatAPIControllerConfig{
			BasePath: "/api/v1/assistant/chat",
			App:      app,
		}),
		controllers.NewConfigAPIController(controllers.ConfigAPIControllerConfig{
			BasePath: "/api/v1/assistant/config",
			App:      app,
		}),
	)

	registerMetricsHandlers(app)

	app.Migrations().RegisterSchema(&MigrationFiles)
	return nil
}

func registerMetricsHandlers(app application.Application) {
	app.EventPublisher().Subscribe(func(event *llm.AttemptEvent) {
		metrics.AIAttempts.WithLabelValues(event.Provider, event.Model, event.Outcome).Inc()
	})
	app.EventPublisher().Subscribe(func(event *llm.ExhaustedEvent) {
		metrics.AIExhausted.Inc()
	})
	app.EventPublisher().Subscribe(func(event *services.ChatRepliedEvent) {
		outcome := "ok"
		if event.Cached {
			outcome = "cached"
		}
		metrics.ChatReplies.WithLabelValues(outcome).Inc()
	})
	app.EventPublisher().Subscribe(func(event *services.ChatFailedEvent) {
		metrics.ChatReplies.WithLabelValues("error").Inc()
	})
}

func (m *Module) Name() string {
	return "assistant"
}
