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
)

// SummaryCleanupService remove resumos de análise vencidos (TTL de 24h)
// em um agendamento cron configurável
type SummaryCleanupService struct {
	scheduler   *gocron.Scheduler
	config      config.SummaryCleanup
	summaryRepo repository.AnalysisSummaryRepository

	cleanupRunning bool
	cleanupMutex   sync.Mutex
	lastRunAt      time.Time
	lastDeleted    int64
}

func NewSummaryCleanupService(
	summaryRepo repository.AnalysisSummaryRepository,
	appConfig *config.Config,
) *SummaryCleanupService {
	return &SummaryCleanupService{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      appConfig.SummaryCleanup,
		summaryRepo: summaryRepo,
	}
}

// Start inicia o agendador
func (s *SummaryCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de resumos vencidos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de resumos vencidos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunCleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a limpeza de resumos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de resumos")
		s.scheduler.Stop()
	}()

	return nil
}

// RunCleanup executa uma varredura de limpeza; execuções sobrepostas são
// ignoradas
func (s *SummaryCleanupService) RunCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de resumos já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	deleted, err := s.summaryRepo.DeleteExpired()
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover resumos vencidos")
		return
	}

	s.cleanupMutex.Lock()
	s.lastRunAt = time.Now()
	s.lastDeleted = deleted
	s.cleanupMutex.Unlock()

	logrus.WithField("deleted", deleted).Info("Limpeza de resumos vencidos concluída")
}

// Status retorna o estado da última varredura para o endpoint de inspeção
func (s *SummaryCleanupService) Status() map[string]any {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	return map[string]any{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.cleanupRunning,
		"last_run_at":   s.lastRunAt,
		"last_deleted":  s.lastDeleted,
	}
}
