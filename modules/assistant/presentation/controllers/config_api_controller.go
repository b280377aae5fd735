package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/atendezap/atendezap/modules/assistant/domain/entities/assistantconfig"
	"github.com/atendezap/atendezap/modules/assistant/presentation/controllers/dtos"
	assistantServices "github.com/atendezap/atendezap/modules/assistant/services"
	"github.com/atendezap/atendezap/pkg/application"
	"github.com/atendezap/atendezap/pkg/composables"
	"github.com/atendezap/atendezap/pkg/httpapi"
	"github.com/atendezap/atendezap/pkg/middleware"
)

type ConfigAPIControllerConfig struct {
	BasePath    string
	App         application.Application
	Middlewares []mux.MiddlewareFunc
}

type ConfigAPIController struct {
	basePath    string
	app         application.Application
	middlewares []mux.MiddlewareFunc
}

func NewConfigAPIController(cfg ConfigAPIControllerConfig) application.Controller {
	return &ConfigAPIController{
		basePath:    cfg.BasePath,
		app:         cfg.App,
		middlewares: cfg.Middlewares,
	}
}

func (c *ConfigAPIController) Key() string {
	return "AssistantConfigAPIController"
}

func (c *ConfigAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	for _, mw := range c.middlewares {
		router.Use(mw)
	}
	router.Use(middleware.RequireTenantFromMatricula(c.app))

	router.HandleFunc("", c.get).Methods(http.MethodGet)
	router.HandleFunc("", c.save).Methods(http.MethodPut)
	router.HandleFunc("/behavior-rules", c.getBehaviorRules).Methods(http.MethodGet)
	router.HandleFunc("/behavior-rules", c.saveBehaviorRules).Methods(http.MethodPut)
}

func (c *ConfigAPIController) service() *assistantServices.AssistantConfigService {
	return c.app.Service(assistantServices.AssistantConfigService{}).(*assistantServices.AssistantConfigService)
}

func (c *ConfigAPIController) get(w http.ResponseWriter, r *http.Request) {
	config, err := c.service().GetOrDefault(r.Context())
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, toConfigResponse(config))
}

func (c *ConfigAPIController) save(w http.ResponseWriter, r *http.Request) {
	var req dtos.ConfigPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, "corpo da requisição inválido", nil)
		return
	}

	saved, err := c.service().Save(r.Context(), assistantServices.SaveConfigDTO{
		Identity:   req.Identity,
		Company:    req.Company,
		Storefront: req.Storefront,
	})
	if err != nil {
		if errors.Is(err, assistantconfig.ErrStorefrontNoSlug) {
			_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, "vitrine habilitada sem slug", nil)
			return
		}
		c.handleError(w, r, err)
		return
	}

	if req.BehaviorRules != "" {
		saved, err = c.service().SaveBehaviorRules(r.Context(), req.BehaviorRules)
		if err != nil {
			c.handleError(w, r, err)
			return
		}
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, toConfigResponse(saved))
}

func (c *ConfigAPIController) getBehaviorRules(w http.ResponseWriter, r *http.Request) {
	config, err := c.service().GetOrDefault(r.Context())
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.BehaviorRulesResponse{Rules: config.BehaviorRules()})
}

func (c *ConfigAPIController) saveBehaviorRules(w http.ResponseWriter, r *http.Request) {
	var req dtos.BehaviorRulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, "corpo da requisição inválido", nil)
		return
	}
	if err := validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, err.Error(), nil)
		return
	}

	saved, err := c.service().SaveBehaviorRules(r.Context(), req.Rules)
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.BehaviorRulesResponse{Rules: saved.BehaviorRules()})
}

func (c *ConfigAPIController) handleError(w http.ResponseWriter, r *http.Request, err error) {
	composables.UseLogger(r.Context()).WithError(err).Error("assistant config request failed")
	_ = httpapi.WriteError(w, http.StatusInternalServerError, httpapi.CodeInternalServer, "erro interno", nil)
}

func toConfigResponse(config assistantconfig.AssistantConfig) dtos.ConfigResponse {
	return dtos.ConfigResponse{
		Identity:      config.Identity(),
		Company:       config.Company(),
		Storefront:    config.Storefront(),
		BehaviorRules: config.BehaviorRules(),
	}
}

func configFromPayload(tenantID uuid.UUID, payload *dtos.ConfigPayload) (assistantconfig.AssistantConfig, error) {
	return assistantconfig.New(
		tenantID,
		assistantconfig.WithIdentity(payload.Identity),
		assistantconfig.WithCompany(payload.Company),
		assistantconfig.WithStorefront(payload.Storefront),
		assistantconfig.WithBehaviorRules(payload.BehaviorRules),
	)
}
