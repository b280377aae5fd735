package models

import (
	"database/sql"
	"time"
)

type Tenant struct {
	ID        string
	Matricula string
	Name      string
	Email     sql.NullString
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
