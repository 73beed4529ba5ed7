package customer

import (
	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-domain-events/internal/customer/application"
	"github.com/mateusmacedo/go-domain-events/internal/customer/domain"
	"github.com/mateusmacedo/go-domain-events/internal/customer/infrastructure"
	pkgApp "github.com/mateusmacedo/go-domain-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-domain-events/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-domain-events/pkg/infrastructure"
)

type CustomerSlice struct {
	httpHandler *infrastructure.CustomerHTTPHandler
}

// NewCustomerSlice monta os barramentos e registra os manipuladores de log
// padrão dos eventos de cliente no dispatcher.
func NewCustomerSlice(
	dispatcher application.CustomerEventDispatcher,
	repository domain.CustomerRepository,
	idGenerator pkgDomain.IDGenerator[string],
	logger pkgApp.AppLogger,
) *CustomerSlice {
	createBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.CreateCustomerData], application.CreateCustomerData](logger)
	changeAddressBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.ChangeCustomerAddressData], application.ChangeCustomerAddressData](logger)
	queryBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindCustomerData], application.FindCustomerData, domain.Customer](logger)

	createBus.RegisterHandler(application.CreateCustomerCommandName, application.NewCreateCustomerHandler(dispatcher, repository, logger))
	changeAddressBus.RegisterHandler(application.ChangeCustomerAddressCommandName, application.NewChangeCustomerAddressHandler(dispatcher, repository, logger))
	queryBus.RegisterHandler(application.FindCustomerQueryName, application.NewFindCustomerHandler(repository, logger))

	dispatcher.Register(application.CustomerCreatedEventName, application.NewFirstCustomerCreatedLogHandler(logger))
	dispatcher.Register(application.CustomerCreatedEventName, application.NewSecondCustomerCreatedLogHandler(logger))
	dispatcher.Register(application.CustomerAddressChangedEventName, application.NewCustomerAddressChangedLogHandler(logger))

	return &CustomerSlice{
		httpHandler: infrastructure.NewCustomerHTTPHandler(createBus, changeAddressBus, queryBus, idGenerator),
	}
}

func (s *CustomerSlice) RegisterRoutes(router chi.Router) {
	s.httpHandler.RegisterRoutes(router)
}
