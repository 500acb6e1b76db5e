package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-analysis-api/infrastructure/repository"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/jobs"
	"github.com/vfg2006/ad-analysis-api/pkg/apiErrors"
	"github.com/vfg2006/ad-analysis-api/pkg/log"
	"github.com/vfg2006/ad-analysis-api/pkg/middleware"
)

const defaultJobListLimit = 20

// CreateAnalysisRequest é o corpo da criação de uma análise
type CreateAnalysisRequest struct {
	Days               int     `json:"days"`
	WebhookURL         *string `json:"webhook_url,omitempty"`
	CustomInstructions string  `json:"custom_instructions,omitempty"`
}

// canAccessOrganization garante o escopo por organização das rotas de análise
func canAccessOrganization(r *http.Request, organizationID string) bool {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return false
	}
	if claims.RoleID == domain.RoleAdmin {
		return true
	}
	return claims.OrganizationID == organizationID
}

// CreateAnalysis cria o job e dispara a orquestração em background; a
// resposta volta imediatamente com o job em pending
func CreateAnalysis(jobManager jobs.Manager, analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		organizationID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if !canAccessOrganization(r, organizationID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esta organização", nil)
			return
		}

		var request CreateAnalysisRequest
		if r.Body != nil {
			if err := json.NewDecoder(r.Body).Decode(&request); err != nil && err.Error() != "EOF" {
				logger.WithError(err).Warn("analysis: invalid request body")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
				return
			}
		}

		job, err := jobManager.Create(organizationID, request.Days, request.WebhookURL)
		if err != nil {
			logger.WithError(err).Error("analysis: failed to create analysis job")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar o job de análise", nil)
			return
		}

		logger.WithFields(log.Fields{
			"job_id":          job.ID,
			"organization_id": organizationID,
			"days":            request.Days,
		}).Info("analysis: job created, starting orchestration")

		// A análise corre fora do ciclo de vida da requisição; o término
		// chega pelo webhook ou pelas rotas de progresso
		go func() {
			_, err := analyzer.Run(context.Background(), organizationID, analyzing.Options{
				Days:               request.Days,
				JobID:              job.ID,
				CustomInstructions: request.CustomInstructions,
			})
			if err != nil {
				logger.WithField("job_id", job.ID).WithError(err).Error("analysis: run finished with error")
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(job); err != nil {
			logger.WithError(err).Error("analysis: failed to encode response")
		}
	})
}

// GetAnalysisJob retorna um job pelo ID, restrito à organização do token
func GetAnalysisJob(jobManager jobs.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		jobID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		job, err := jobManager.GetJob(jobID)
		if err != nil {
			logger.WithField("job_id", jobID).WithError(err).Error("analysis: failed to get job")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar o job", nil)
			return
		}

		if job == nil || !canAccessOrganization(r, job.OrganizationID) {
			apiErrors.WriteError(w, apiErrors.ErrJobNotFound, "Job não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(job); err != nil {
			logger.WithError(err).Error("analysis: failed to encode response")
		}
	})
}

// GetAnalysisJobProgress retorna a visão de progresso de um job
func GetAnalysisJobProgress(jobManager jobs.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		jobID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		job, err := jobManager.GetJob(jobID)
		if err != nil {
			logger.WithField("job_id", jobID).WithError(err).Error("analysis: failed to get job progress")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar o progresso do job", nil)
			return
		}

		if job == nil || !canAccessOrganization(r, job.OrganizationID) {
			apiErrors.WriteError(w, apiErrors.ErrJobNotFound, "Job não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(domain.ProgressOf(job)); err != nil {
			logger.WithError(err).Error("analysis: failed to encode response")
		}
	})
}

// ListAnalysisJobs lista os jobs recentes de uma organização
func ListAnalysisJobs(jobManager jobs.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		organizationID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if !canAccessOrganization(r, organizationID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esta organização", nil)
			return
		}

		limit := uint64(defaultJobListLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		jobList, err := jobManager.GetRecentJobs(organizationID, limit)
		if err != nil {
			logger.WithField("organization_id", organizationID).WithError(err).Error("analysis: failed to list jobs")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar os jobs", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(jobList); err != nil {
			logger.WithError(err).Error("analysis: failed to encode response")
		}
	})
}

// GetLatestAnalysis retorna a análise concluída mais recente da organização,
// com os resumos da execução e as recomendações persistidas
func GetLatestAnalysis(analyzer analyzing.Analyzer, recommendationRepo repository.RecommendationRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		organizationID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if !canAccessOrganization(r, organizationID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esta organização", nil)
			return
		}

		view, err := analyzer.GetLatestAnalysis(organizationID)
		if err != nil {
			logger.WithField("organization_id", organizationID).WithError(err).Error("analysis: failed to get latest analysis")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar a análise mais recente", nil)
			return
		}

		if view == nil {
			apiErrors.WriteError(w, apiErrors.ErrAnalysisNotFound, "Nenhuma análise concluída para esta organização", nil)
			return
		}

		recommendations, err := recommendationRepo.ListByRun(view.AnalysisRunID)
		if err != nil {
			logger.WithField("analysis_run_id", view.AnalysisRunID).WithError(err).Error("analysis: failed to list recommendations")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar as recomendações", nil)
			return
		}

		response := struct {
			*analyzing.AnalysisView
			Recommendations []*domain.Recommendation `json:"recommendations"`
		}{view, recommendations}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("analysis: failed to encode response")
		}
	})
}

// GetEntitySummary retorna o resumo mais novo de uma entidade específica
func GetEntitySummary(analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		organizationID := params.ByName("id")
		level := domain.EntityLevel(params.ByName("level"))
		entityID := params.ByName("entity_id")

		if !canAccessOrganization(r, organizationID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esta organização", nil)
			return
		}

		summary, err := analyzer.GetEntitySummary(organizationID, level, entityID)
		if err != nil {
			logger.WithFields(log.Fields{
				"organization_id": organizationID,
				"level":           level,
				"entity_id":       entityID,
			}).WithError(err).Error("analysis: failed to get entity summary")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar o resumo da entidade", nil)
			return
		}

		if summary == nil {
			apiErrors.WriteError(w, apiErrors.ErrAnalysisNotFound, "Nenhum resumo para esta entidade", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("analysis: failed to encode response")
		}
	})
}
