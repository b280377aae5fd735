package product

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyName       = errors.New("empty product name")
	ErrNegativePrice   = errors.New("negative product price")
)

// DefaultCategory groups products that were saved without a category.
const DefaultCategory = "Sem categoria"

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	// GetByCode performs a case-insensitive exact lookup within the tenant's
	// catalog. Codes are not guaranteed unique; the first match is returned.
	GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (Product, error)
	GetAll(ctx context.Context, tenantID uuid.UUID, params FindParams) ([]Product, error)
	Save(ctx context.Context, p Product) (Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type FindParams struct {
	ActiveOnly bool
	Limit      int
	Offset     int
}

type Product interface {
	ID() uuid.UUID
	TenantID() uuid.UUID
	Code() string
	Name() string
	Price() decimal.Decimal
	Description() string
	Category() string
	IsActive() bool
	CreatedAt() time.Time
	UpdatedAt() time.Time

	// CategoryOrDefault returns the category, or DefaultCategory when unset.
	CategoryOrDefault() string

	SetCode(code string) Product
	SetName(name string) Product
	SetPrice(price decimal.Decimal) Product
	SetDescription(description string) Product
	SetCategory(category string) Product
	SetActive(active bool) Product
}

type product struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	code        string
	name        string
	price       decimal.Decimal
	description string
	category    string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func New(tenantID uuid.UUID, name string, price decimal.Decimal, opts ...Option) (Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	p := &product{
		id:        uuid.New(),
		tenantID:  tenantID,
		name:      name,
		price:     price,
		isActive:  true,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

type Option func(*product)

func WithID(id uuid.UUID) Option {
	return func(p *product) {
		if id != uuid.Nil {
			p.id = id
		}
	}
}

// WithCode stores the catalog code uppercase so lookups stay case-insensitive.
func WithCode(code string) Option {
	return func(p *product) {
		p.code = strings.ToUpper(strings.TrimSpace(code))
	}
}

func WithDescription(description string) Option {
	return func(p *product) {
		p.description = description
	}
}

func WithCategory(category string) Option {
	return func(p *product) {
		p.category = category
	}
}

func WithActive(active bool) Option {
	return func(p *product) {
		p.isActive = active
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(p *product) {
		if !createdAt.IsZero() {
			p.createdAt = createdAt
		}
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(p *product) {
		if !updatedAt.IsZero() {
			p.updatedAt = updatedAt
		}
	}
}

func (p *product) ID() uuid.UUID          { return p.id }
func (p *product) TenantID() uuid.UUID    { return p.tenantID }
func (p *product) Code() string           { return p.code }
func (p *product) Name() string           { return p.name }
func (p *product) Price() decimal.Decimal { return p.price }
func (p *product) Description() string    { return p.description }
func (p *product) Category() string       { return p.category }
func (p *product) IsActive() bool         { return p.isActive }
func (p *product) CreatedAt() time.Time   { return p.createdAt }
func (p *product) UpdatedAt() time.Time   { return p.updatedAt }

func (p *product) CategoryOrDefault() string {
	if strings.TrimSpace(p.category) == "" {
		return DefaultCategory
	}
	return p.category
}

func (p *product) SetCode(code string) Product {
	updated := *p
	updated.code = strings.ToUpper(strings.TrimSpace(code))
	updated.updatedAt = time.Now()
	return &updated
}

func (p *product) SetName(name string) Product {
	updated := *p
	updated.name = name
	updated.updatedAt = time.Now()
	return &updated
}

func (p *product) SetPrice(price decimal.Decimal) Product {
	updated := *p
	updated.price = price
	updated.updatedAt = time.Now()
	return &updated
}

func (p *product) SetDescription(description string) Product {
	updated := *p
	updated.description = description
	updated.updatedAt = time.Now()
	return &updated
}

func (p *product) SetCategory(category string) Product {
	updated := *p
	updated.category = category
	updated.updatedAt = time.Now()
	return &updated
}

func (p *product) SetActive(active bool) Product {
	updated := *p
	updated.isActive = active
	updated.updatedAt = time.Now()
	return &updated
}
