package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-domain-events/internal/customer/application"
	"github.com/mateusmacedo/go-domain-events/internal/customer/domain"
	pkgApp "github.com/mateusmacedo/go-domain-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-domain-events/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-domain-events/pkg/infrastructure"
)

const requestTimeout = 10 * time.Second

type CustomerHTTPHandler struct {
	createBus        pkgApp.CommandBus[pkgDomain.Command[application.CreateCustomerData], application.CreateCustomerData]
	changeAddressBus pkgApp.CommandBus[pkgDomain.Command[application.ChangeCustomerAddressData], application.ChangeCustomerAddressData]
	queryBus         pkgApp.QueryBus[pkgDomain.Query[application.FindCustomerData], application.FindCustomerData, domain.Customer]
	idGenerator      pkgDomain.IDGenerator[string]
}

func NewCustomerHTTPHandler(
	createBus pkgApp.CommandBus[pkgDomain.Command[application.CreateCustomerData], application.CreateCustomerData],
	changeAddressBus pkgApp.CommandBus[pkgDomain.Command[application.ChangeCustomerAddressData], application.ChangeCustomerAddressData],
	queryBus pkgApp.QueryBus[pkgDomain.Query[application.FindCustomerData], application.FindCustomerData, domain.Customer],
	idGenerator pkgDomain.IDGenerator[string],
) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{
		createBus:        createBus,
		changeAddressBus: changeAddressBus,
		queryBus:         queryBus,
		idGenerator:      idGenerator,
	}
}

func (h *CustomerHTTPHandler) HandleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var data application.CreateCustomerData
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

	if err := h.createBus.Dispatch(ctx, application.NewCreateCustomerCommand(data)); err != nil {
		writeDomainError(w, err)
		return
	}

	pkgInfra.WriteJSON(w, http.StatusCreated, map[string]string{"id": data.ID})
}

func (h *CustomerHTTPHandler) HandleChangeAddress(w http.ResponseWriter, r *http.Request) {
	var data application.ChangeCustomerAddressData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		pkgInfra.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}
	data.CustomerID = chi.URLParam(r, "customerID")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.changeAddressBus.Dispatch(ctx, application.NewChangeCustomerAddressCommand(data)); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHTTPHandler) HandleFindCustomer(w http.ResponseWriter, r *http.Request) {
	query := application.NewFindCustomerQuery(application.FindCustomerData{
		CustomerID: chi.URLParam(r, "customerID"),
	})

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	customer, err := h.queryBus.Dispatch(ctx, query)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	pkgInfra.WriteJSON(w, http.StatusOK, customer)
}

func (h *CustomerHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Post("/customers", h.HandleCreateCustomer)
	router.Get("/customers/{customerID}", h.HandleFindCustomer)
	router.Put("/customers/{customerID}/address", h.HandleChangeAddress)
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCustomer), errors.Is(err, domain.ErrInvalidAddress):
		pkgInfra.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrCustomerNotFound):
		pkgInfra.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrCustomerAlreadyExists):
		pkgInfra.WriteError(w, http.StatusConflict, err.Error())
	default:
		pkgInfra.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
