package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/atendezap/atendezap/modules/catalog/domain/entities/product"
	"github.com/atendezap/atendezap/modules/catalog/presentation/controllers/dtos"
	catalogServices "github.com/atendezap/atendezap/modules/catalog/services"
	"github.com/atendezap/atendezap/pkg/application"
	"github.com/atendezap/atendezap/pkg/composables"
	"github.com/atendezap/atendezap/pkg/httpapi"
	"github.com/atendezap/atendezap/pkg/middleware"
)

var validate = validator.New()

type ProductAPIControllerConfig struct {
	BasePath    string
	App         application.Application
	Middlewares []mux.MiddlewareFunc
}

type ProductAPIController struct {
	basePath    string
	app         application.Application
	middlewares []mux.MiddlewareFunc
}

func NewProductAPIController(cfg ProductAPIControllerConfig) application.Controller {
	return &ProductAPIController{
		basePath:    cfg.BasePath,
		app:         cfg.App,
		middlewares: cfg.Middlewares,
	}
}

func (c *ProductAPIController) Key() string {
	return "ProductAPIController"
}

func (c *ProductAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()

	for _, mw := range c.middlewares {
		router.Use(mw)
	}
	router.Use(middleware.RequireTenantFromMatricula(c.app))

	router.HandleFunc("", c.list).Methods(http.MethodGet)
	router.HandleFunc("", c.create).Methods(http.MethodPost)
	router.HandleFunc("/{product_id}", c.get).Methods(http.MethodGet)
	router.HandleFunc("/{product_id}", c.update).Methods(http.MethodPut)
	router.HandleFunc("/{product_id}", c.delete).Methods(http.MethodDelete)
}

func (c *ProductAPIController) service() *catalogServices.ProductService {
	return c.app.Service(catalogServices.ProductService{}).(*catalogServices.ProductService)
}

func (c *ProductAPIController) list(w http.ResponseWriter, r *http.Request) {
	params := composables.UsePaginated(r)
	products, err := c.service().GetAll(r.Context(), product.FindParams{
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, toListResponse(products))
}

func (c *ProductAPIController) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, "id de produto inválido", nil)
		return
	}
	p, err := c.service().GetByID(r.Context(), id)
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, toResponse(p))
}

func (c *ProductAPIController) create(w http.ResponseWriter, r *http.Request) {
	req, price, ok := c.decodeRequest(w, r)
	if !ok {
		return
	}

	created, err := c.service().Create(r.Context(), catalogServices.CreateProductDTO{
		Code:        req.Code,
		Name:        req.Name,
		Price:       price,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, toResponse(created))
}

func (c *ProductAPIController) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, "id de produto inválido", nil)
		return
	}
	req, price, ok := c.decodeRequest(w, r)
	if !ok {
		return
	}

	updated, err := c.service().Update(r.Context(), catalogServices.UpdateProductDTO{
		ID:          id,
		Code:        &req.Code,
		Name:        &req.Name,
		Price:       &price,
		Description: &req.Description,
		Category:    &req.Category,
		IsActive:    req.IsActive,
	})
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, toResponse(updated))
}

func (c *ProductAPIController) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, "id de produto inválido", nil)
		return
	}
	if err := c.service().Delete(r.Context(), id); err != nil {
		c.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *ProductAPIController) decodeRequest(w http.ResponseWriter, r *http.Request) (*dtos.ProductRequest, decimal.Decimal, bool) {
	var req dtos.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, "corpo da requisição inválido", nil)
		return nil, decimal.Zero, false
	}
	if err := validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, err.Error(), nil)
		return nil, decimal.Zero, false
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, "preço inválido", nil)
		return nil, decimal.Zero, false
	}
	return &req, price, true
}

func (c *ProductAPIController) handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := composables.UseLogger(r.Context())
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, httpapi.CodeNotFound, "produto não encontrado", nil)
	case errors.Is(err, product.ErrEmptyName), errors.Is(err, product.ErrNegativePrice):
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, err.Error(), nil)
	default:
		logger.WithError(err).Error("product request failed")
		_ = httpapi.WriteError(w, http.StatusInternalServerError, httpapi.CodeInternalServer, "erro interno", nil)
	}
}

func parseProductID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["product_id"])
}

func toResponse(p product.Product) dtos.ProductResponse {
	return dtos.ProductResponse{
		ID:          p.ID().String(),
		Code:        p.Code(),
		Name:        p.Name(),
		Price:       p.Price().StringFixed(2),
		Description: p.Description(),
		Category:    p.Category(),
		IsActive:    p.IsActive(),
	}
}

func toListResponse(products []product.Product) dtos.ProductListResponse {
	out := dtos.ProductListResponse{Products: make([]dtos.ProductResponse, 0, len(products))}
	for _, p := range products {
		out.Products = append(out.Products, toResponse(p))
	}
	return out
}
