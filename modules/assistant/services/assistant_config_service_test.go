package services_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atendezap/atendezap/modules/assistant/domain/entities/assistantconfig"
	assistantPersistence "github.com/atendezap/atendezap/modules/assistant/infrastructure/persistence"
	"github.com/atendezap/atendezap/modules/assistant/services"
	"github.com/atendezap/atendezap/pkg/eventbus"
	"github.com/atendezap/atendezap/pkg/logging"
	"github.com/atendezap/atendezap/pkg/testutils"
)

func setupConfigService() *services.AssistantConfigService {
	return services.NewAssistantConfigService(
		assistantPersistence.NewInmemAssistantConfigRepository(),
		eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel)),
	)
}

func TestAssistantConfigService_GetOrDefault(t *testing.T) {
	env := testutils.NewTestContext().Build(t)
	svc := setupConfigService()

	config, err := svc.GetOrDefault(env.Ctx)
	require.NoError(t, err)
	assert.Equal(t, env.TenantID, config.TenantID())
	assert.Equal(t, assistantconfig.ToneFriendly, config.Identity().Tone)
}

func TestAssistantConfigService_Save(t *testing.T) {
	env := testutils.NewTestContext().Build(t)
	svc := setupConfigService()

	saved, err := svc.Save(env.Ctx, services.SaveConfigDTO{
		Identity: assistantconfig.Identity{AssistantName: "ISA", Tone: assistantconfig.ToneFormal},
		Company:  assistantconfig.Company{Name: "AtendeZap Telecom"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ISA", saved.Identity().AssistantName)

	loaded, err := svc.GetOrDefault(env.Ctx)
	require.NoError(t, err)
	assert.Equal(t, "AtendeZap Telecom", loaded.Company().Name)
}

func TestAssistantConfigService_SaveKeepsBehaviorRules(t *testing.T) {
	env := testutils.NewTestContext().Build(t)
	svc := setupConfigService()

	_, err := svc.SaveBehaviorRules(env.Ctx, "nunca prometa prazos")
	require.NoError(t, err)

	saved, err := svc.Save(env.Ctx, services.SaveConfigDTO{
		Identity: assistantconfig.Identity{AssistantName: "ISA"},
	})
	require.NoError(t, err)
	assert.Equal(t, "nunca prometa prazos", saved.BehaviorRules())
}

func TestAssistantConfigService_SaveBehaviorRules(t *testing.T) {
	env := testutils.NewTestContext().Build(t)
	svc := setupConfigService()

	saved, err := svc.SaveBehaviorRules(env.Ctx, "responda em até duas frases")
	require.NoError(t, err)
	assert.Equal(t, "responda em até duas frases", saved.BehaviorRules())
}
