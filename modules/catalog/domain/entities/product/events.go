package product

import "github.com/google/uuid"

type CreatedEvent struct {
	TenantID uuid.UUID
	Result   Product
}

type UpdatedEvent struct {
	TenantID uuid.UUID
	Result   Product
}

type DeletedEvent struct {
	TenantID uuid.UUID
	ID       uuid.UUID
}
