package jobs

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analysis-api/infrastructure/repository"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
	"github.com/vfg2006/ad-analysis-api/pkg/utils"
)

// Manager controla o ciclo de vida dos jobs de análise e dispara o webhook
// de conclusão quando configurado
type Manager interface {
	Create(organizationID string, days int, webhookURL *string) (*domain.AnalysisJob, error)
	Start(jobID string, totalEntities int) (bool, error)
	UpdateProgress(jobID string, processed int, currentLevel string) error
	Complete(jobID, analysisRunID string, stoppedReason, terminationReason *string) error
	Fail(jobID, errorMessage string) error
	GetJob(jobID string) (*domain.AnalysisJob, error)
	GetProgress(jobID string) (*domain.JobProgress, error)
	GetRecentJobs(organizationID string, limit uint64) ([]*domain.AnalysisJob, error)
	GetLatestCompleted(organizationID string) (*domain.AnalysisJob, error)
}

type Service struct {
	jobRepo  repository.AnalysisJobRepository
	notifier WebhookNotifier
}

func NewService(jobRepo repository.AnalysisJobRepository, notifier WebhookNotifier) *Service {
	return &Service{
		jobRepo:  jobRepo,
		notifier: notifier,
	}
}

func (s *Service) Create(organizationID string, days int, webhookURL *string) (*domain.AnalysisJob, error) {
	jobID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o ID do job: %w", err)
	}

	job := &domain.AnalysisJob{
		ID:             jobID,
		OrganizationID: organizationID,
		Days:           days,
		WebhookURL:     webhookURL,
		Status:         domain.JobStatusPending,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("erro ao criar o job de análise: %w", err)
	}

	return job, nil
}

// Start move o job de pending para running; retorna false quando outro
// worker já assumiu o job
func (s *Service) Start(jobID string, totalEntities int) (bool, error) {
	return s.jobRepo.Start(jobID, totalEntities)
}

func (s *Service) UpdateProgress(jobID string, processed int, currentLevel string) error {
	return s.jobRepo.UpdateProgress(jobID, processed, currentLevel)
}

// Complete finaliza o job com sucesso. A transição só acontece uma vez;
// chamadas repetidas em jobs já terminais não notificam o webhook de novo
func (s *Service) Complete(jobID, analysisRunID string, stoppedReason, terminationReason *string) error {
	transitioned, err := s.jobRepo.CompleteIfActive(jobID, analysisRunID, stoppedReason, terminationReason)
	if err != nil {
		return fmt.Errorf("erro ao completar o job %s: %w", jobID, err)
	}

	if !transitioned {
		logrus.WithField("job_id", jobID).Warn("Job já estava em estado terminal, conclusão ignorada")
		return nil
	}

	s.notify(jobID)
	return nil
}

// Fail finaliza o job com erro, com a mesma garantia de transição única
func (s *Service) Fail(jobID, errorMessage string) error {
	transitioned, err := s.jobRepo.FailIfActive(jobID, errorMessage)
	if err != nil {
		return fmt.Errorf("erro ao falhar o job %s: %w", jobID, err)
	}

	if !transitioned {
		logrus.WithField("job_id", jobID).Warn("Job já estava em estado terminal, falha ignorada")
		return nil
	}

	s.notify(jobID)
	return nil
}

func (s *Service) GetJob(jobID string) (*domain.AnalysisJob, error) {
	return s.jobRepo.GetByID(jobID)
}

func (s *Service) GetProgress(jobID string) (*domain.JobProgress, error) {
	job, err := s.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, err
	}

	if job == nil {
		return nil, nil
	}

	return domain.ProgressOf(job), nil
}

func (s *Service) GetRecentJobs(organizationID string, limit uint64) ([]*domain.AnalysisJob, error) {
	return s.jobRepo.ListRecent(organizationID, limit)
}

func (s *Service) GetLatestCompleted(organizationID string) (*domain.AnalysisJob, error) {
	return s.jobRepo.GetLatestCompleted(organizationID)
}

// notify envia o webhook de conclusão em melhor esforço; falhas são apenas
// logadas e nunca alteram o estado do job
func (s *Service) notify(jobID string) {
	job, err := s.jobRepo.GetByID(jobID)
	if err != nil || job == nil {
		logrus.WithField("job_id", jobID).WithError(err).Error("Erro ao recarregar o job para notificação")
		return
	}

	if job.WebhookURL == nil || *job.WebhookURL == "" {
		return
	}

	if err := s.notifier.Notify(job); err != nil {
		logrus.WithFields(logrus.Fields{
			"job_id":      job.ID,
			"webhook_url": *job.WebhookURL,
		}).WithError(err).Error("Erro ao notificar o webhook de conclusão")
	}
}
