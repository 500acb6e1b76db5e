package handler

import (
	"net/http"

	"github.com/vfg2006/ad-analysis-api/infrastructure/repository"
	"github.com/vfg2006/ad-analysis-api/internal/api/handler/router"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/jobs"
	"github.com/vfg2006/ad-analysis-api/pkg/middleware"
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

func Analysis(
	jobManager jobs.Manager,
	analyzer analyzing.Analyzer,
	recommendationRepo repository.RecommendationRepository,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/organizations/:id/analysis",
			Method:      http.MethodPost,
			Handler:     CreateAnalysis(jobManager, analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/organizations/:id/analysis/jobs",
			Method:      http.MethodGet,
			Handler:     ListAnalysisJobs(jobManager),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/organizations/:id/analysis/latest",
			Method:      http.MethodGet,
			Handler:     GetLatestAnalysis(analyzer, recommendationRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/organizations/:id/summaries/:level/:entity_id",
			Method:      http.MethodGet,
			Handler:     GetEntitySummary(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analysis/jobs/:id",
			Method:      http.MethodGet,
			Handler:     GetAnalysisJob(jobManager),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analysis/jobs/:id/progress",
			Method:      http.MethodGet,
			Handler:     GetAnalysisJobProgress(jobManager),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     CronJobStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
