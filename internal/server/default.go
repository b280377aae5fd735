package server

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/atendezap/atendezap/pkg/application"
	"github.com/atendezap/atendezap/pkg/configuration"
	"github.com/atendezap/atendezap/pkg/constants"
	"github.com/atendezap/atendezap/pkg/httpapi"
	"github.com/atendezap/atendezap/pkg/metrics"
	"github.com/atendezap/atendezap/pkg/middleware"
	"github.com/atendezap/atendezap/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application

	app.RegisterMiddleware(
		middleware.WithLogger(options.Logger),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.PoolKey, options.Pool),
		middleware.Cors(options.Configuration.Origin),
		middleware.RequestParams(),
	)

	if options.Configuration.Prometheus.Enabled {
		app.RegisterControllers(
			metrics.NewPrometheusController(options.Configuration.Prometheus.Path),
		)
	}

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteError(w, http.StatusNotFound, httpapi.CodeNotFound, "rota não encontrada", nil)
	})
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, httpapi.CodeInvalidRequest, "método não permitido", nil)
	})

	return server.NewHTTPServer(app, notFound, methodNotAllowed), nil
}
