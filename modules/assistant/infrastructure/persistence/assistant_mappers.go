package persistence

import (
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/atendezap/atendezap/modules/assistant/domain/entities/assistantconfig"
	"github.com/atendezap/atendezap/modules/assistant/infrastructure/persistence/models"
)

// configDocument is the JSONB shape stored in the config column. Behavior
// rules live in their own table and are joined in at read time.
type configDocument struct {
	Identity   assistantconfig.Identity   `json:"identity"`
	Company    assistantconfig.Company    `json:"company"`
	Storefront assistantconfig.Storefront `json:"storefront"`
}

func ToDomainAssistantConfig(dbRow *models.AssistantConfig) (assistantconfig.AssistantConfig, error) {
	tenantID, err := uuid.Parse(dbRow.TenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse tenant id")
	}

	var doc configDocument
	if len(dbRow.Config) > 0 {
		if err := json.Unmarshal(dbRow.Config, &doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode assistant config document")
		}
	}

	return assistantconfig.New(
		tenantID,
		assistantconfig.WithIdentity(doc.Identity),
		assistantconfig.WithCompany(doc.Company),
		assistantconfig.WithStorefront(doc.Storefront),
		assistantconfig.WithBehaviorRules(dbRow.Rules.String),
		assistantconfig.WithCreatedAt(dbRow.CreatedAt),
		assistantconfig.WithUpdatedAt(dbRow.UpdatedAt),
	)
}

func ToDBAssistantConfig(config assistantconfig.AssistantConfig) (*models.AssistantConfig, error) {
	doc := configDocument{
		Identity:   config.Identity(),
		Company:    config.Company(),
		Storefront: config.Storefront(),
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode assistant config document")
	}

	return &models.AssistantConfig{
		TenantID:  config.TenantID().String(),
		Config:    raw,
		CreatedAt: config.CreatedAt(),
		UpdatedAt: config.UpdatedAt(),
	}, nil
}
