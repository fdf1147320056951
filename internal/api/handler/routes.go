package handler

import (
	"net/http"

	"github.com/vfg2006/retail-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/retail-analytics-api/internal/scheduler"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/invoicing"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/tracking"
	"github.com/vfg2006/retail-analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// UserStores retorna as rotas para gerenciamento de lojas vinculadas a usuários
func UserStores(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/stores",
			Method:      http.MethodGet,
			Handler:     GetUserStores(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/stores",
			Method:      http.MethodPut,
			Handler:     UpdateUserStores(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/stores/link",
			Method:      http.MethodPost,
			Handler:     LinkUserStore(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/stores/:store_id",
			Method:      http.MethodDelete,
			Handler:     UnlinkUserStore(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Dataset(service ingesting.Ingestor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/data",
			Method:      http.MethodGet,
			Handler:     GetDataset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/data/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshDataset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/data/:type/upload",
			Method:      http.MethodPost,
			Handler:     UploadData(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Invoices(service invoicing.Invoicer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/data/invoices",
			Method:      http.MethodGet,
			Handler:     GetInvoiceLineItems(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Insights(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights/sales",
			Method:      http.MethodGet,
			Handler:     GetSalesSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/brands",
			Method:      http.MethodGet,
			Handler:     GetBrandSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/customers",
			Method:      http.MethodGet,
			Handler:     GetCustomerSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/budtenders",
			Method:      http.MethodGet,
			Handler:     GetBudtenderRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/invoices",
			Method:      http.MethodGet,
			Handler:     GetInvoiceSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AIAnalysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ai/analyze",
			Method:      http.MethodPost,
			Handler:     Analyze(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func QRCodes(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/qrcodes",
			Method:      http.MethodPost,
			Handler:     CreateQRCode(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/qrcodes",
			Method:      http.MethodGet,
			Handler:     ListQRCodes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/qrcodes/:code/analytics",
			Method:      http.MethodGet,
			Handler:     GetQRCodeAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/qrcodes/:code",
			Method:      http.MethodDelete,
			Handler:     DeleteQRCode(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/qrcodes/:code/restore",
			Method:      http.MethodPost,
			Handler:     RestoreQRCode(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			// Rota pública usada pelo QR code impresso
			Path:    "/r/:code",
			Method:  http.MethodGet,
			Handler: RedirectQRCode(service),
		},
	}
}

func CronJobs(warmer *scheduler.CacheWarmerService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(warmer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(warmer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
