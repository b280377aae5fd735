package composables_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atendezap/atendezap/pkg/composables"
	"github.com/atendezap/atendezap/pkg/configuration"
)

func TestUsePaginated(t *testing.T) {
	conf := configuration.Use()

	t.Run("defaults", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/products", nil)
		params := composables.UsePaginated(r)
		assert.Equal(t, conf.PageSize, params.Limit)
		assert.Equal(t, 0, params.Offset)
	})

	t.Run("explicit limit and offset", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/products?limit=10&offset=30", nil)
		params := composables.UsePaginated(r)
		assert.Equal(t, 10, params.Limit)
		assert.Equal(t, 30, params.Offset)
	})

	t.Run("limit capped at maximum", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/products?limit=100000", nil)
		params := composables.UsePaginated(r)
		assert.Equal(t, conf.MaxPageSize, params.Limit)
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/products?limit=abc&offset=-5", nil)
		params := composables.UsePaginated(r)
		assert.Equal(t, conf.PageSize, params.Limit)
		assert.Equal(t, 0, params.Offset)
	})
}
