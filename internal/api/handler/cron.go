package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analysis-api/internal/scheduler"
	"github.com/vfg2006/ad-analysis-api/pkg/apiErrors"
)

// Tipos de cron job disponíveis para execução manual
const (
	CronJobTypeSummaryCleanup = "summary-cleanup"
	CronJobTypeJobTimeout     = "job-timeout"
	CronJobTypeAll            = "all"
)

// CronJobServices contém as varreduras agendadas expostas para execução manual
type CronJobServices struct {
	SummaryCleanupService *scheduler.SummaryCleanupService
	JobTimeoutService     *scheduler.JobTimeoutService
}

// RunCronJob executa manualmente uma varredura específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSummaryCleanup:
			if services.SummaryCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de resumos não disponível", nil)
				return
			}
			go services.SummaryCleanupService.RunCleanup()

		case CronJobTypeJobTimeout:
			if services.JobTimeoutService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de timeout de jobs não disponível", nil)
				return
			}
			go services.JobTimeoutService.RunSweep()

		case CronJobTypeAll:
			if services.SummaryCleanupService != nil {
				go services.SummaryCleanupService.RunCleanup()
			}
			if services.JobTimeoutService != nil {
				go services.JobTimeoutService.RunSweep()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido: "+cronType, nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "triggered",
			"type":   cronType,
		})
	})
}

// CronJobStatus retorna o estado das varreduras agendadas
func CronJobStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.SummaryCleanupService != nil {
			status["summary_cleanup"] = services.SummaryCleanupService.Status()
		}
		if services.JobTimeoutService != nil {
			status["job_timeout"] = services.JobTimeoutService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("cron: failed to encode status response")
		}
	})
}
