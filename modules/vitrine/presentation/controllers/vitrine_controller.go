package controllers

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/atendezap/atendezap/modules/assistant/domain/entities/assistantconfig"
	assistantServices "github.com/atendezap/atendezap/modules/assistant/services"
	vitrineServices "github.com/atendezap/atendezap/modules/vitrine/services"
	"github.com/atendezap/atendezap/pkg/application"
	"github.com/atendezap/atendezap/pkg/composables"
	"github.com/atendezap/atendezap/pkg/httpapi"
)

type VitrineResponse struct {
	Name       string             `json:"name"`
	Theme      string             `json:"theme,omitempty"`
	Slug       string             `json:"slug"`
	Categories []CategoryResponse `json:"categories"`
}

type CategoryResponse struct {
	Name     string            `json:"name"`
	Products []ProductResponse `json:"products"`
}

type ProductResponse struct {
	ID             string `json:"id"`
	Code           string `json:"code,omitempty"`
	Name           string `json:"name"`
	Price          string `json:"price"`
	PriceFormatted string `json:"price_formatted"`
	Description    string `json:"description,omitempty"`
}

type VitrineControllerConfig struct {
	BasePath    string
	App         application.Application
	Middlewares []mux.MiddlewareFunc
}

// VitrineController serves the public storefront read model. No tenant
// header is involved; the slug alone identifies the storefront.
type VitrineController struct {
	basePath    string
	app         application.Application
	middlewares []mux.MiddlewareFunc
}

func NewVitrineController(cfg VitrineControllerConfig) application.Controller {
	return &VitrineController{
		basePath:    cfg.BasePath,
		app:         cfg.App,
		middlewares: cfg.Middlewares,
	}
}

func (c *VitrineController) Key() string {
	return "VitrineController"
}

func (c *VitrineController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	for _, mw := range c.middlewares {
		router.Use(mw)
	}
	router.HandleFunc("/{slug}", c.get).Methods(http.MethodGet)
}

func (c *VitrineController) get(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	service := c.app.Service(vitrineServices.VitrineService{}).(*vitrineServices.VitrineService)
	vitrine, err := service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, assistantconfig.ErrConfigNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, httpapi.CodeNotFound, "vitrine não encontrada", nil)
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("vitrine request failed")
		_ = httpapi.WriteError(w, http.StatusInternalServerError, httpapi.CodeInternalServer, "erro interno", nil)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, toVitrineResponse(vitrine))
}

func toVitrineResponse(vitrine *vitrineServices.Vitrine) VitrineResponse {
	response := VitrineResponse{
		Name:       vitrine.Name,
		Theme:      vitrine.Theme,
		Slug:       vitrine.Slug,
		Categories: make([]CategoryResponse, 0, len(vitrine.Categories)),
	}
	for _, group := range vitrine.Categories {
		category := CategoryResponse{
			Name:     group.Name,
			Products: make([]ProductResponse, 0, len(group.Products)),
		}
		for _, p := range group.Products {
			category.Products = append(category.Products, ProductResponse{
				ID:             p.ID().String(),
				Code:           p.Code(),
				Name:           p.Name(),
				Price:          p.Price().StringFixed(2),
				PriceFormatted: assistantServices.FormatPriceBRL(p.Price()),
				Description:    p.Description(),
			})
		}
		response.Categories = append(response.Categories, category)
	}
	return response
}
