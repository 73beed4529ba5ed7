package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-domain-events/internal/product/application"
	"github.com/mateusmacedo/go-domain-events/internal/product/domain"
	pkgApp "github.com/mateusmacedo/go-domain-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-domain-events/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-domain-events/pkg/infrastructure"
)

const requestTimeout = 10 * time.Second

type ProductHTTPHandler struct {
	commandBus  pkgApp.CommandBus[pkgDomain.Command[application.CreateProductData], application.CreateProductData]
	queryBus    pkgApp.QueryBus[pkgDomain.Query[application.FindProductData], application.FindProductData, domain.Product]
	idGenerator pkgDomain.IDGenerator[string]
}

func NewProductHTTPHandler(
	commandBus pkgApp.CommandBus[pkgDomain.Command[application.CreateProductData], application.CreateProductData],
	queryBus pkgApp.QueryBus[pkgDomain.Query[application.FindProductData], application.FindProductData, domain.Product],
	idGenerator pkgDomain.IDGenerator[string],
) *ProductHTTPHandler {
	return &ProductHTTPHandler{
		commandBus:  commandBus,
		queryBus:    queryBus,
		idGenerator: idGenerator,
	}
}

func (h *ProductHTTPHandler) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var data application.CreateProductData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		pkgInfra.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}
	data.ID = strings.TrimSpace(data.ID)
	if data.ID == "" {
		data.ID = h.idGenerator()
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.commandBus.Dispatch(ctx, application.NewCreateProductCommand(data)); err != nil {
		writeDomainError(w, err)
		return
	}

	pkgInfra.WriteJSON(w, http.StatusCreated, map[string]string{"id": data.ID})
}

func (h *ProductHTTPHandler) HandleFindProduct(w http.ResponseWriter, r *http.Request) {
	query := application.NewFindProductQuery(application.FindProductData{
		ProductID: chi.URLParam(r, "productID"),
	})

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	product, err := h.queryBus.Dispatch(ctx, query)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	pkgInfra.WriteJSON(w, http.StatusOK, product)
}

func (h *ProductHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Post("/products", h.HandleCreateProduct)
	router.Get("/products/{productID}", h.HandleFindProduct)
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidProduct):
		pkgInfra.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrProductNotFound):
		pkgInfra.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrProductAlreadyExists):
		pkgInfra.WriteError(w, http.StatusConflict, err.Error())
	default:
		pkgInfra.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
