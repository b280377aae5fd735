package tenant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrEmptyMatricula   = errors.New("empty matricula")
	ErrEmptyName        = errors.New("empty name")
	ErrInvalidMatricula = errors.New("matricula must contain only digits")
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Tenant, error)
	GetByMatricula(ctx context.Context, matricula string) (Tenant, error)
	Save(ctx context.Context, t Tenant) (Tenant, error)
	List(ctx context.Context) ([]Tenant, error)
}

type Tenant interface {
	ID() uuid.UUID
	Matricula() string
	Name() string
	Email() string
	IsActive() bool
	CreatedAt() time.Time
	UpdatedAt() time.Time

	SetName(name string) Tenant
	SetEmail(email string) Tenant
	SetActive(active bool) Tenant
}

type tenant struct {
	id        uuid.UUID
	matricula string
	name      string
	email     string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func New(matricula, name string, opts ...Option) (Tenant, error) {
	if matricula == "" {
		return nil, ErrEmptyMatricula
	}
	for _, r := range matricula {
		if r < '0' || r > '9' {
			return nil, ErrInvalidMatricula
		}
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	t := &tenant{
		id:        uuid.New(),
		matricula: matricula,
		name:      name,
		isActive:  true,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

type Option func(*tenant)

func WithID(id uuid.UUID) Option {
	return func(t *tenant) {
		if id != uuid.Nil {
			t.id = id
		}
	}
}

func WithEmail(email string) Option {
	return func(t *tenant) {
		t.email = email
	}
}

func WithActive(active bool) Option {
	return func(t *tenant) {
		t.isActive = active
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(t *tenant) {
		if !createdAt.IsZero() {
			t.createdAt = createdAt
		}
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(t *tenant) {
		if !updatedAt.IsZero() {
			t.updatedAt = updatedAt
		}
	}
}

func (t *tenant) ID() uuid.UUID        { return t.id }
func (t *tenant) Matricula() string    { return t.matricula }
func (t *tenant) Name() string         { return t.name }
func (t *tenant) Email() string        { return t.email }
func (t *tenant) IsActive() bool       { return t.isActive }
func (t *tenant) CreatedAt() time.Time { return t.createdAt }
func (t *tenant) UpdatedAt() time.Time { return t.updatedAt }

func (t *tenant) SetName(name string) Tenant {
	updated := *t
	updated.name = name
	updated.updatedAt = time.Now()
	return &updated
}

func (t *tenant) SetEmail(email string) Tenant {
	updated := *t
	updated.email = email
	updated.updatedAt = time.Now()
	return &updated
}

func (t *tenant) SetActive(active bool) Tenant {
	updated := *t
	updated.isActive = active
	updated.updatedAt = time.Now()
	return &updated
}
