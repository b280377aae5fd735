package testutils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/atendezap/atendezap/pkg/composables"
	"github.com/atendezap/atendezap/pkg/logging"
)

// TestContext provides a fluent API for building test contexts carrying the
// composables services expect: a request-scoped logger and a tenant id.
type TestContext struct {
	ctx      context.Context
	tenantID uuid.UUID
	logger   *logrus.Logger
}

// NewTestContext creates a new TestContext builder with a fresh tenant id.
func NewTestContext() *TestContext {
	return &TestContext{
		ctx:      context.Background(),
		tenantID: uuid.New(),
		logger:   logging.ConsoleLogger(logrus.PanicLevel),
	}
}

// WithTenantID overrides the generated tenant id.
func (tc *TestContext) WithTenantID(id uuid.UUID) *TestContext {
	tc.tenantID = id
	return tc
}

// WithLogLevel raises the log level, useful when debugging a failing test.
func (tc *TestContext) WithLogLevel(level logrus.Level) *TestContext {
	tc.logger.SetLevel(level)
	return tc
}

// Build creates the test environment.
func (tc *TestContext) Build(tb testing.TB) *TestEnvironment {
	tb.Helper()

	ctx := composables.WithLogger(tc.ctx, logrus.NewEntry(tc.logger))
	ctx = composables.WithTenantID(ctx, tc.tenantID)
	ctx = composables.WithParams(ctx, &composables.Params{RequestID: uuid.NewString()})

	return &TestEnvironment{
		Ctx:      ctx,
		TenantID: tc.tenantID,
		Logger:   tc.logger,
	}
}

// TestEnvironment contains the context and identifiers shared by a test.
type TestEnvironment struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Logger   *logrus.Logger
}
