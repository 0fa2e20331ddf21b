package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/settings"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
		{
			Path:    "/v1/dashboard/filters/reset",
			Method:  http.MethodPost,
			Handler: ResetFilters(service),
		},
	}
}

func Export(service reporting.Reporter) []router.Route {
	downloads := newExportDownloadStore(exportDownloadTTL)

	return []router.Route{
		{
			Path:    "/v1/export",
			Method:  http.MethodGet,
			Handler: ExportXLSX(service),
		},
		{
			Path:    "/v1/export",
			Method:  http.MethodPost,
			Handler: CreateExport(service, downloads),
		},
		{
			Path:    downloadPath + ":token",
			Method:  http.MethodGet,
			Handler: DownloadExport(downloads),
		},
	}
}

func Settings(service settings.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/settings",
			Method:  http.MethodGet,
			Handler: GetSettings(service),
		},
		{
			Path:        "/v1/settings",
			Method:      http.MethodPut,
			Handler:     UpdateSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
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
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
