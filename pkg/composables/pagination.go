package composables

import (
	"net/http"
	"strconv"

	"github.com/atendezap/atendezap/pkg/configuration"
)

type PaginationParams struct {
	Limit  int
	Offset int
}

// UsePaginated reads limit/offset from the query string. Limit falls back to
// the configured page size and is capped at the configured maximum.
func UsePaginated(r *http.Request) PaginationParams {
	conf := configuration.Use()
	limit := conf.PageSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if conf.MaxPageSize > 0 && limit > conf.MaxPageSize {
		limit = conf.MaxPageSize
	}
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			offset = v
		}
	}
	return PaginationParams{Limit: limit, Offset: offset}
}
