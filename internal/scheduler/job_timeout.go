package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analysis-api/infrastructure/repository"
	"github.com/vfg2006/ad-analysis-api/internal/config"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/jobs"
)

// JobTimeoutService falha jobs presos em running além do tempo máximo.
// O loop de análise não tem timeout de relógio próprio; esta varredura é o
// limite externo de duração de uma execução
type JobTimeoutService struct {
	scheduler  *gocron.Scheduler
	config     config.JobTimeout
	jobRepo    repository.AnalysisJobRepository
	jobManager jobs.Manager

	sweepRunning bool
	sweepMutex   sync.Mutex
	lastRunAt    time.Time
	lastFailed   int
}

func NewJobTimeoutService(
	jobRepo repository.AnalysisJobRepository,
	jobManager jobs.Manager,
	appConfig *config.Config,
) *JobTimeoutService {
	return &JobTimeoutService{
		scheduler:  gocron.NewScheduler(time.UTC),
		config:     appConfig.JobTimeout,
		jobRepo:    jobRepo,
		jobManager: jobManager,
	}
}

// Start inicia o agendador
func (s *JobTimeoutService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Varredura de timeout de jobs desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"cron":                s.config.CronSchedule,
		"max_running_minutes": s.config.MaxRunningMinutes,
	}).Info("Iniciando agendador de timeout de jobs")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunSweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a varredura de timeout de jobs: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de timeout de jobs")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSweep falha todos os jobs em execução iniciados antes do limite. A
// transição passa pelo gerenciador de jobs para que o webhook seja disparado
func (s *JobTimeoutService) RunSweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de timeout de jobs já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	cutoff := time.Now().UTC().Add(-time.Duration(s.config.MaxRunningMinutes) * time.Minute)

	staleJobs, err := s.jobRepo.ListStaleRunning(cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar jobs presos em execução")
		return
	}

	failed := 0
	for _, job := range staleJobs {
		message := fmt.Sprintf("análise excedeu o tempo máximo de %d minutos", s.config.MaxRunningMinutes)
		if err := s.jobManager.Fail(job.ID, message); err != nil {
			logrus.WithField("job_id", job.ID).WithError(err).Error("Erro ao falhar job por timeout")
			continue
		}
		failed++

		logrus.WithFields(logrus.Fields{
			"job_id":     job.ID,
			"started_at": job.StartedAt,
		}).Warn("Job falhado por timeout de execução")
	}

	s.sweepMutex.Lock()
	s.lastRunAt = time.Now()
	s.lastFailed = failed
	s.sweepMutex.Unlock()

	if failed > 0 {
		logrus.WithField("failed_jobs", failed).Info("Varredura de timeout de jobs concluída")
	}
}

// Status retorna o estado da última varredura para o endpoint de inspeção
func (s *JobTimeoutService) Status() map[string]any {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	return map[string]any{
		"enabled":             s.config.Enabled,
		"cron_schedule":       s.config.CronSchedule,
		"max_running_minutes": s.config.MaxRunningMinutes,
		"running":             s.sweepRunning,
		"last_run_at":         s.lastRunAt,
		"last_failed_jobs":    s.lastFailed,
	}
}
