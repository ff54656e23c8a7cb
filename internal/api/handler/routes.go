package handler

import (
	"net/http"

	"github.com/vfg2006/meli-sales-api/internal/api/handler/router"
	"github.com/vfg2006/meli-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/meli-sales-api/internal/usecases/customer"
	"github.com/vfg2006/meli-sales-api/internal/usecases/integrating"
	"github.com/vfg2006/meli-sales-api/internal/usecases/sale"
	"github.com/vfg2006/meli-sales-api/internal/usecases/syncing"
)

func Healthcheck(db DatabasePinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/me",
			Method:  http.MethodGet,
			Handler: Me(),
		},
	}
}

func Customers(service customer.CustomerService) []router.Route {
	return []router.Route{
		{
			Path:    "/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(service),
		},
		{
			Path:    "/customers/:id/sales",
			Method:  http.MethodGet,
			Handler: ListCustomerSales(service),
		},
		{
			Path:    "/customers/:id/phone",
			Method:  http.MethodPatch,
			Handler: UpdateCustomerPhone(service),
		},
		{
			Path:    "/customers/:id/note",
			Method:  http.MethodPatch,
			Handler: UpdateCustomerNote(service),
		},
	}
}

func Sales(service sale.SaleService) []router.Route {
	return []router.Route{
		{
			Path:    "/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
	}
}

// Integration agrupa o fluxo OAuth, a sincronização e o webhook do Mercado Libre
func Integration(
	integrationService integrating.IntegrationService,
	syncService syncing.SyncService,
	trigger OrderSyncTrigger,
) []router.Route {
	return []router.Route{
		{
			Path:    "/integration/status",
			Method:  http.MethodGet,
			Handler: IntegrationStatus(integrationService),
		},
		{
			Path:    "/integration/oauth/authorize",
			Method:  http.MethodGet,
			Handler: Authorize(integrationService),
		},
		{
			Path:    "/integration/oauth/callback",
			Method:  http.MethodGet,
			Handler: OAuthCallback(integrationService),
		},
		{
			Path:    "/integration/sync",
			Method:  http.MethodPost,
			Handler: SyncOrders(syncService),
		},
		{
			Path:    "/integration/sync/trigger",
			Method:  http.MethodPost,
			Handler: TriggerSync(trigger),
		},
		{
			Path:    "/integration/sync/status",
			Method:  http.MethodGet,
			Handler: SyncStatus(trigger),
		},
		{
			Path:    "/integration/webhook",
			Method:  http.MethodPost,
			Handler: Webhook(syncService),
		},
	}
}
