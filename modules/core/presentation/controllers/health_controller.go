package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/atendezap/atendezap/pkg/application"
	"github.com/atendezap/atendezap/pkg/httpapi"
)

type HealthController struct{}

func NewHealthController() application.Controller {
	return &HealthController{}
}

func (c *HealthController) Key() string {
	return "HealthController"
}

func (c *HealthController) Register(r *mux.Router) {
	r.HandleFunc("/health", c.health).Methods(http.MethodGet)
}

func (c *HealthController) health(w http.ResponseWriter, _ *http.Request) {
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
