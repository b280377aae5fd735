package assistantconfig

import "github.com/google/uuid"

type UpdatedEvent struct {
	TenantID uuid.UUID
	Result   AssistantConfig
}

type BehaviorRulesUpdatedEvent struct {
	TenantID uuid.UUID
	Rules    string
}
