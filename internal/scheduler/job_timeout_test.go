package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/ad-analysis-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-analysis-api/internal/config"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
	jobsmocks "github.com/vfg2006/ad-analysis-api/internal/usecases/jobs/mocks"
	"go.uber.org/mock/gomock"
)

func TestJobTimeoutService_RunSweep(t *testing.T) {
	testCases := []struct {
		name     string
		setup    func(jobRepo *repomocks.MockAnalysisJobRepository, jobManager *jobsmocks.MockManager)
		validate func(t *testing.T, service *JobTimeoutService)
	}{
		{
			name: "Deve falhar todos os jobs presos além do tempo máximo",
			setup: func(jobRepo *repomocks.MockAnalysisJobRepository, jobManager *jobsmocks.MockManager) {
				jobRepo.EXPECT().
					ListStaleRunning(gomock.Any()).
					DoAndReturn(func(cutoff time.Time) ([]*domain.AnalysisJob, error) {
						assert.WithinDuration(t, time.Now().UTC().Add(-30*time.Minute), cutoff, 5*time.Second)
						return []*domain.AnalysisJob{
							{ID: "job-1", Status: domain.JobStatusRunning},
							{ID: "job-2", Status: domain.JobStatusRunning},
						}, nil
					})

				jobManager.EXPECT().Fail("job-1", "análise excedeu o tempo máximo de 30 minutos").Return(nil)
				jobManager.EXPECT().Fail("job-2", "análise excedeu o tempo máximo de 30 minutos").Return(nil)
			},
			validate: func(t *testing.T, service *JobTimeoutService) {
				status := service.Status()
				assert.Equal(t, 2, status["last_failed_jobs"])
				assert.False(t, status["last_run_at"].(time.Time).IsZero())
			},
		},
		{
			name: "Nao deve falhar nenhum job quando a listagem retorna erro",
			setup: func(jobRepo *repomocks.MockAnalysisJobRepository, jobManager *jobsmocks.MockManager) {
				jobRepo.EXPECT().ListStaleRunning(gomock.Any()).Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, service *JobTimeoutService) {
				status := service.Status()
				assert.Equal(t, 0, status["last_failed_jobs"])
				assert.True(t, status["last_run_at"].(time.Time).IsZero())
			},
		},
		{
			name: "Deve seguir para os demais jobs quando uma transição falha",
			setup: func(jobRepo *repomocks.MockAnalysisJobRepository, jobManager *jobsmocks.MockManager) {
				jobRepo.EXPECT().ListStaleRunning(gomock.Any()).Return([]*domain.AnalysisJob{
					{ID: "job-1", Status: domain.JobStatusRunning},
					{ID: "job-2", Status: domain.JobStatusRunning},
				}, nil)

				jobManager.EXPECT().Fail("job-1", gomock.Any()).Return(errors.New("job já concluído"))
				jobManager.EXPECT().Fail("job-2", gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, service *JobTimeoutService) {
				status := service.Status()
				assert.Equal(t, 1, status["last_failed_jobs"])
			},
		},
		{
			name: "Nao deve falhar nada quando nenhum job esta preso",
			setup: func(jobRepo *repomocks.MockAnalysisJobRepository, jobManager *jobsmocks.MockManager) {
				jobRepo.EXPECT().ListStaleRunning(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, service *JobTimeoutService) {
				status := service.Status()
				assert.Equal(t, 0, status["last_failed_jobs"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			jobRepo := repomocks.NewMockAnalysisJobRepository(ctrl)
			jobManager := jobsmocks.NewMockManager(ctrl)

			tc.setup(jobRepo, jobManager)

			service := &JobTimeoutService{
				config: config.JobTimeout{
					Enabled:           true,
					CronSchedule:      "*/5 * * * *",
					MaxRunningMinutes: 30,
				},
				jobRepo:    jobRepo,
				jobManager: jobManager,
			}

			service.RunSweep()

			tc.validate(t, service)
		})
	}
}

func TestJobTimeoutService_Status(t *testing.T) {
	service := &JobTimeoutService{
		config: config.JobTimeout{
			Enabled:           true,
			CronSchedule:      "*/5 * * * *",
			MaxRunningMinutes: 45,
		},
	}

	status := service.Status()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "*/5 * * * *", status["cron_schedule"])
	assert.Equal(t, 45, status["max_running_minutes"])
	assert.Equal(t, false, status["running"])
}
