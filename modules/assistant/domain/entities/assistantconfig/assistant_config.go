package assistantconfig

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrConfigNotFound   = errors.New("assistant config not found")
	ErrStorefrontNoSlug = errors.New("storefront enabled without a slug")
)

// Tone controls the register of the assistant's replies.
type Tone string

const (
	ToneFriendly  Tone = "friendly"
	ToneFormal    Tone = "formal"
	ToneCasual    Tone = "casual"
	ToneTechnical Tone = "technical"
)

// ToneFromString parses the stored tone value. Unknown or empty values map to
// the empty tone, which produces no directive in the compiled prompt.
func ToneFromString(raw string) Tone {
	switch Tone(raw) {
	case ToneFriendly, ToneFormal, ToneCasual, ToneTechnical:
		return Tone(raw)
	default:
		return ""
	}
}

// Identity describes who the assistant presents itself as.
type Identity struct {
	AssistantName string `json:"assistant_name"`
	Tone          Tone   `json:"tone"`
	Greeting      string `json:"greeting"`
	Farewell      string `json:"farewell"`
}

// Company holds the tenant's business profile. Hours is the current field;
// BusinessHours is the legacy alias still present in older configs.
type Company struct {
	Name          string `json:"name"`
	Segment       string `json:"segment"`
	Mission       string `json:"mission"`
	Hours         string `json:"hours"`
	BusinessHours string `json:"business_hours"`
	PaymentTerms  string `json:"payment_terms"`
	Address       string `json:"address"`
	Policies      string `json:"policies"`
	Promotions    string `json:"promotions"`
}

// ResolvedHours returns Hours when set and falls back to the legacy
// BusinessHours field otherwise. All rendering must go through this method so
// the precedence lives in exactly one place.
func (c Company) ResolvedHours() string {
	if c.Hours != "" {
		return c.Hours
	}
	return c.BusinessHours
}

// HasProfile reports whether the company block carries anything worth
// rendering. The name or any legacy field qualifies.
func (c Company) HasProfile() bool {
	return c.Name != "" || c.Segment != "" || c.Mission != "" ||
		c.ResolvedHours() != "" || c.PaymentTerms != "" || c.Address != "" ||
		c.Policies != "" || c.Promotions != ""
}

// Storefront configures the public vitrine page.
type Storefront struct {
	Enabled bool   `json:"enabled"`
	Name    string `json:"name"`
	Theme   string `json:"theme"`
	Slug    string `json:"slug"`
}

type AssistantConfig interface {
	TenantID() uuid.UUID
	Identity() Identity
	Company() Company
	BehaviorRules() string
	Storefront() Storefront
	CreatedAt() time.Time
	UpdatedAt() time.Time

	SetIdentity(identity Identity) AssistantConfig
	SetCompany(company Company) AssistantConfig
	SetBehaviorRules(rules string) AssistantConfig
	SetStorefront(storefront Storefront) AssistantConfig
}

type Repository interface {
	GetByTenantID(ctx context.Context, tenantID uuid.UUID) (AssistantConfig, error)
	GetBySlug(ctx context.Context, slug string) (AssistantConfig, error)
	Save(ctx context.Context, config AssistantConfig) (AssistantConfig, error)
}

type Option func(*assistantConfig)

func WithIdentity(identity Identity) Option {
	return func(c *assistantConfig) {
		identity.Tone = ToneFromString(string(identity.Tone))
		c.identity = identity
	}
}

func WithCompany(company Company) Option {
	return func(c *assistantConfig) {
		c.company = company
	}
}

func WithBehaviorRules(rules string) Option {
	return func(c *assistantConfig) {
		c.behaviorRules = rules
	}
}

func WithStorefront(storefront Storefront) Option {
	return func(c *assistantConfig) {
		c.storefront = storefront
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(c *assistantConfig) {
		c.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(c *assistantConfig) {
		c.updatedAt = updatedAt
	}
}

func New(tenantID uuid.UUID, opts ...Option) (AssistantConfig, error) {
	c := &assistantConfig{
		tenantID:  tenantID,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.storefront.Enabled && c.storefront.Slug == "" {
		return nil, ErrStorefrontNoSlug
	}
	return c, nil
}

// Default returns the config used for tenants that never saved one.
func Default(tenantID uuid.UUID) AssistantConfig {
	return &assistantConfig{
		tenantID:  tenantID,
		identity:  Identity{Tone: ToneFriendly},
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
}

type assistantConfig struct {
	tenantID      uuid.UUID
	identity      Identity
	company       Company
	behaviorRules string
	storefront    Storefront
	createdAt     time.Time
	updatedAt     time.Time
}

func (c *assistantConfig) TenantID() uuid.UUID {
	return c.tenantID
}

func (c *assistantConfig) Identity() Identity {
	return c.identity
}

func (c *assistantConfig) Company() Company {
	return c.company
}

func (c *assistantConfig) BehaviorRules() string {
	return c.behaviorRules
}

func (c *assistantConfig) Storefront() Storefront {
	return c.storefront
}

func (c *assistantConfig) CreatedAt() time.Time {
	return c.createdAt
}

func (c *assistantConfig) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *assistantConfig) SetIdentity(identity Identity) AssistantConfig {
	res := *c
	identity.Tone = ToneFromString(string(identity.Tone))
	res.identity = identity
	res.updatedAt = time.Now()
	return &res
}

func (c *assistantConfig) SetCompany(company Company) AssistantConfig {
	res := *c
	res.company = company
	res.updatedAt = time.Now()
	return &res
}

func (c *assistantConfig) SetBehaviorRules(rules string) AssistantConfig {
	res := *c
	res.behaviorRules = rules
	res.updatedAt = time.Now()
	return &res
}

func (c *assistantConfig) SetStorefront(storefront Storefront) AssistantConfig {
	res := *c
	res.storefront = storefront
	res.updatedAt = time.Now()
	return &res
}
