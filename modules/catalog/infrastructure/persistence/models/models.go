package models

import (
	"database/sql"
	"time"
)

type Product struct {
	ID          string
	TenantID    string
	Code        sql.NullString
	Name        string
	Price       string
	Description sql.NullString
	Category    sql.NullString
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
