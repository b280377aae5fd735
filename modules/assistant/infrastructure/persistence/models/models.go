package models

import (
	"database/sql"
	"time"
)

type AssistantConfig struct {
	TenantID  string
	Config    []byte
	Rules     sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BehaviorRules struct {
	TenantID  string
	Rules     string
	UpdatedAt time.Time
}
