package jobs

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/ad-analysis-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/jobs/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobRepo := repomocks.NewMockAnalysisJobRepository(ctrl)
	notifier := mocks.NewMockWebhookNotifier(ctrl)

	var created *domain.AnalysisJob
	jobRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(job *domain.AnalysisJob) error {
		created = job
		return nil
	})

	webhookURL := "https://painel.example.com/webhooks/analysis"
	service := NewService(jobRepo, notifier)

	job, err := service.Create("org-1", 30, &webhookURL)

	assert.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, domain.JobStatusPending, job.Status)
	assert.Equal(t, "org-1", job.OrganizationID)
	assert.Equal(t, 30, job.Days)
	assert.Equal(t, &webhookURL, job.WebhookURL)
	assert.Equal(t, created, job)
}

func TestService_Complete(t *testing.T) {
	webhookURL := "https://painel.example.com/webhooks/analysis"
	runID := "run-1"
	completedAt := time.Now().UTC()

	tests := []struct {
		name  string
		setup func(jobRepo *repomocks.MockAnalysisJobRepository, notifier *mocks.MockWebhookNotifier)
	}{
		{
			name: "Transição efetiva deve notificar o webhook uma única vez",
			setup: func(jobRepo *repomocks.MockAnalysisJobRepository, notifier *mocks.MockWebhookNotifier) {
				jobRepo.EXPECT().CompleteIfActive("job-1", runID, gomock.Any(), gomock.Any()).Return(true, nil)
				jobRepo.EXPECT().GetByID("job-1").Return(&domain.AnalysisJob{
					ID:            "job-1",
					Status:        domain.JobStatusCompleted,
					WebhookURL:    &webhookURL,
					AnalysisRunID: &runID,
					CompletedAt:   &completedAt,
				}, nil)
				notifier.EXPECT().Notify(gomock.Any()).Return(nil).Times(1)
			},
		},
		{
			name: "Job já terminal não deve notificar de novo",
			setup: func(jobRepo *repomocks.MockAnalysisJobRepository, notifier *mocks.MockWebhookNotifier) {
				jobRepo.EXPECT().CompleteIfActive("job-1", runID, gomock.Any(), gomock.Any()).Return(false, nil)
				// nenhuma chamada a GetByID nem a Notify
			},
		},
		{
			name: "Job sem webhook cadastrado não deve notificar",
			setup: func(jobRepo *repomocks.MockAnalysisJobRepository, notifier *mocks.MockWebhookNotifier) {
				jobRepo.EXPECT().CompleteIfActive("job-1", runID, gomock.Any(), gomock.Any()).Return(true, nil)
				jobRepo.EXPECT().GetByID("job-1").Return(&domain.AnalysisJob{
					ID:     "job-1",
					Status: domain.JobStatusCompleted,
				}, nil)
			},
		},
		{
			name: "Falha do webhook não deve falhar a conclusão",
			setup: func(jobRepo *repomocks.MockAnalysisJobRepository, notifier *mocks.MockWebhookNotifier) {
				jobRepo.EXPECT().CompleteIfActive("job-1", runID, gomock.Any(), gomock.Any()).Return(true, nil)
				jobRepo.EXPECT().GetByID("job-1").Return(&domain.AnalysisJob{
					ID:         "job-1",
					Status:     domain.JobStatusCompleted,
					WebhookURL: &webhookURL,
				}, nil)
				notifier.EXPECT().Notify(gomock.Any()).Return(errors.New("endpoint fora do ar"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			jobRepo := repomocks.NewMockAnalysisJobRepository(ctrl)
			notifier := mocks.NewMockWebhookNotifier(ctrl)
			tt.setup(jobRepo, notifier)

			service := NewService(jobRepo, notifier)
			stoppedReason := string(domain.StoppedEarlyTermination)

			err := service.Complete("job-1", runID, &stoppedReason, nil)
			assert.NoError(t, err)
		})
	}
}

func TestService_Fail(t *testing.T) {
	webhookURL := "https://painel.example.com/webhooks/analysis"

	t.Run("Transição efetiva deve notificar com a mensagem de erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		jobRepo := repomocks.NewMockAnalysisJobRepository(ctrl)
		notifier := mocks.NewMockWebhookNotifier(ctrl)

		errorMessage := "erro ao montar a árvore de entidades"
		jobRepo.EXPECT().FailIfActive("job-1", errorMessage).Return(true, nil)
		jobRepo.EXPECT().GetByID("job-1").Return(&domain.AnalysisJob{
			ID:           "job-1",
			Status:       domain.JobStatusFailed,
			WebhookURL:   &webhookURL,
			ErrorMessage: &errorMessage,
		}, nil)
		notifier.EXPECT().Notify(gomock.Any()).DoAndReturn(func(job *domain.AnalysisJob) error {
			assert.Equal(t, domain.JobStatusFailed, job.Status)
			assert.Equal(t, &errorMessage, job.ErrorMessage)
			return nil
		})

		service := NewService(jobRepo, notifier)
		assert.NoError(t, service.Fail("job-1", errorMessage))
	})

	t.Run("Falha repetida em job terminal não deve notificar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		jobRepo := repomocks.NewMockAnalysisJobRepository(ctrl)
		notifier := mocks.NewMockWebhookNotifier(ctrl)

		jobRepo.EXPECT().FailIfActive("job-1", "timeout").Return(false, nil)

		service := NewService(jobRepo, notifier)
		assert.NoError(t, service.Fail("job-1", "timeout"))
	})

	t.Run("Erro do repositório deve ser propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		jobRepo := repomocks.NewMockAnalysisJobRepository(ctrl)
		notifier := mocks.NewMockWebhookNotifier(ctrl)

		jobRepo.EXPECT().FailIfActive("job-1", "timeout").Return(false, errors.New("conexão recusada"))

		service := NewService(jobRepo, notifier)
		assert.Error(t, service.Fail("job-1", "timeout"))
	})
}

func TestService_GetProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobRepo := repomocks.NewMockAnalysisJobRepository(ctrl)
	notifier := mocks.NewMockWebhookNotifier(ctrl)

	total := 10
	level := "campaign"
	jobRepo.EXPECT().GetByID("job-1").Return(&domain.AnalysisJob{
		ID:                "job-1",
		Status:            domain.JobStatusRunning,
		ProcessedEntities: 4,
		TotalEntities:     &total,
		CurrentLevel:      &level,
	}, nil)

	service := NewService(jobRepo, notifier)
	progress, err := service.GetProgress("job-1")

	assert.NoError(t, err)
	assert.Equal(t, 4, progress.ProcessedEntities)
	assert.NotNil(t, progress.PercentComplete)
	assert.Equal(t, 40, *progress.PercentComplete)

	t.Run("Job inexistente deve retornar nil sem erro", func(t *testing.T) {
		jobRepo.EXPECT().GetByID("job-404").Return(nil, nil)

		progress, err := service.GetProgress("job-404")
		assert.NoError(t, err)
		assert.Nil(t, progress)
	})
}
