package dtos

import "github.com/atendezap/atendezap/modules/assistant/domain/entities/assistantconfig"

// ConfigPayload mirrors the stored config document; it is used both as the
// PUT body and as the inline override on the chat test endpoint.
type ConfigPayload struct {
	Identity      assistantconfig.Identity   `json:"identity"`
	Company       assistantconfig.Company    `json:"company"`
	Storefront    assistantconfig.Storefront `json:"storefront"`
	BehaviorRules string                     `json:"behavior_rules"`
}

type ConfigResponse struct {
	Identity      assistantconfig.Identity   `json:"identity"`
	Company       assistantconfig.Company    `json:"company"`
	Storefront    assistantconfig.Storefront `json:"storefront"`
	BehaviorRules string                     `json:"behavior_rules"`
}

type BehaviorRulesRequest struct {
	Rules string `json:"rules" validate:"max=16384"`
}

type BehaviorRulesResponse struct {
	Rules string `json:"rules"`
}

type ChatTestRequest struct {
	Matricula string         `json:"matricula" validate:"required"`
	Message   string         `json:"message" validate:"required,max=4096"`
	Config    *ConfigPayload `json:"config"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4096"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
