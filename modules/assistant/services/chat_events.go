package services

import "github.com/google/uuid"

type ChatRepliedEvent struct {
	TenantID  uuid.UUID
	Matricula string
	Message   string
	Reply     string
	Cached    bool
}

type ChatFailedEvent struct {
	TenantID  uuid.UUID
	Matricula string
}
