package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/atendezap/atendezap/modules/assistant/domain/entities/assistantconfig"
	"github.com/atendezap/atendezap/modules/assistant/infrastructure/llm"
	"github.com/atendezap/atendezap/modules/assistant/presentation/controllers/dtos"
	assistantServices "github.com/atendezap/atendezap/modules/assistant/services"
	coreServices "github.com/atendezap/atendezap/modules/core/services"
	"github.com/atendezap/atendezap/pkg/application"
	"github.com/atendezap/atendezap/pkg/composables"
	"github.com/atendezap/atendezap/pkg/httpapi"
	"github.com/atendezap/atendezap/pkg/middleware"
)

var validate = validator.New()

type ChatAPIControllerConfig struct {
	BasePath    string
	App         application.Application
	Middlewares []mux.MiddlewareFunc
}

type ChatAPIController struct {
	basePath    string
	app         application.Application
	middlewares []mux.MiddlewareFunc
}

func NewChatAPIController(cfg ChatAPIControllerConfig) application.Controller {
	return &ChatAPIController{
		basePath:    cfg.BasePath,
		app:         cfg.App,
		middlewares: cfg.Middlewares,
	}
}

func (c *ChatAPIController) Key() string {
	return "ChatAPIController"
}

func (c *ChatAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	for _, mw := range c.middlewares {
		router.Use(mw)
	}

	// The test endpoint carries the matricula in the body so the dashboard
	// can exercise unsaved configs; the message endpoint uses the tenant
	// middleware like every other authenticated route.
	router.HandleFunc("/test", c.test).Methods(http.MethodPost)

	messages := r.PathPrefix(c.basePath).Subrouter()
	for _, mw := range c.middlewares {
		messages.Use(mw)
	}
	messages.Use(middleware.RequireTenantFromMatricula(c.app))
	messages.HandleFunc("", c.message).Methods(http.MethodPost)
}

func (c *ChatAPIController) chatService() *assistantServices.ChatService {
	return c.app.Service(assistantServices.ChatService{}).(*assistantServices.ChatService)
}

func (c *ChatAPIController) test(w http.ResponseWriter, r *http.Request) {
	var req dtos.ChatTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, "corpo da requisição inválido", nil)
		return
	}
	if err := validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, err.Error(), nil)
		return
	}

	matricula := middleware.NormalizeMatricula(req.Matricula)
	tenantService := c.app.Service(coreServices.TenantService{}).(*coreServices.TenantService)
	t, err := tenantService.GetByMatricula(r.Context(), matricula)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusNotFound, httpapi.CodeTenantNotFound, "cliente não encontrado", nil)
		return
	}
	ctx := composables.WithTenantID(r.Context(), t.ID())

	var override assistantconfig.AssistantConfig
	if req.Config != nil {
		override, err = configFromPayload(t.ID(), req.Config)
		if err != nil {
			_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, err.Error(), nil)
			return
		}
	}

	reply, err := c.chatService().Reply(ctx, assistantServices.ReplyDTO{
		Matricula:      matricula,
		Message:        req.Message,
		ConfigOverride: override,
	})
	if err != nil {
		c.handleReplyError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.ChatResponse{Reply: reply})
}

func (c *ChatAPIController) message(w http.ResponseWriter, r *http.Request) {
	var req dtos.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, "corpo da requisição inválido", nil)
		return
	}
	if err := validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, err.Error(), nil)
		return
	}

	reply, err := c.chatService().Reply(r.Context(), assistantServices.ReplyDTO{
		Message: req.Message,
	})
	if err != nil {
		c.handleReplyError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.ChatResponse{Reply: reply})
}

func (c *ChatAPIController) handleReplyError(w http.ResponseWriter, r *http.Request, err error) {
	logger := composables.UseLogger(r.Context())
	if errors.Is(err, llm.ErrAllModelsFailed) {
		logger.WithError(err).Error("chat reply exhausted all models")
		_ = httpapi.WriteError(w, http.StatusServiceUnavailable, httpapi.CodeAssistantFailed,
			"assistente indisponível no momento, tente novamente em instantes", nil)
		return
	}
	logger.WithError(err).Error("chat reply failed")
	_ = httpapi.WriteError(w, http.StatusInternalServerError, httpapi.CodeInternalServer, "erro interno", nil)
}
