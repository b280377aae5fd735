package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/atendezap/atendezap/modules/core/services"
	"github.com/atendezap/atendezap/pkg/application"
	"github.com/atendezap/atendezap/pkg/composables"
	"github.com/atendezap/atendezap/pkg/configuration"
	"github.com/atendezap/atendezap/pkg/httpapi"
)

// RequireTenantFromMatricula resolves the tenant from the matricula carried in
// the configured header, falling back to the `matricula` query parameter. The
// header wins when both are present.
func RequireTenantFromMatricula(app application.Application) mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			matricula := NormalizeMatricula(r.Header.Get(conf.TenantHeader))
			if matricula == "" {
				matricula = NormalizeMatricula(r.URL.Query().Get("matricula"))
			}
			if matricula == "" {
				_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, "matricula obrigatória", nil)
				return
			}

			tenantService := app.Service(services.TenantService{}).(*services.TenantService)
			t, err := tenantService.GetByMatricula(r.Context(), matricula)
			if err != nil {
				logger := composables.UseLogger(r.Context())
				logger.WithField("matricula", matricula).WithError(err).Warn("tenant not found for matricula")
				_ = httpapi.WriteError(w, http.StatusNotFound, httpapi.CodeTenantNotFound, "cliente não encontrado", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(composables.WithTenantID(r.Context(), t.ID())))
		})
	}
}

// NormalizeMatricula strips everything but digits, accepting CPF-formatted
// input like "123.456.789-00".
func NormalizeMatricula(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
