package composables

import (
	"context"
	"errors"

	"github.com/atendezap/atendezap/pkg/constants"
	"github.com/google/uuid"
)

var ErrNoTenantID = errors.New("no tenant id found in context")

// WithTenantID returns a new context carrying the resolved tenant id.
func WithTenantID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, constants.TenantIDKey, id)
}

// UseTenantID returns the tenant id from the context.
func UseTenantID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(constants.TenantIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoTenantID
	}
	return id, nil
}
