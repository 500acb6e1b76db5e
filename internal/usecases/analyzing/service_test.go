package analyzing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/llm"
	llmmocks "github.com/vfg2006/ad-analysis-api/infrastructure/integrator/llm/mocks"
	repomocks "github.com/vfg2006/ad-analysis-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-analysis-api/internal/config"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
	hierarchymocks "github.com/vfg2006/ad-analysis-api/internal/usecases/hierarchy/mocks"
	jobsmocks "github.com/vfg2006/ad-analysis-api/internal/usecases/jobs/mocks"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/prompting"
	promptmocks "github.com/vfg2006/ad-analysis-api/internal/usecases/prompting/mocks"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/recommending"
	recmocks "github.com/vfg2006/ad-analysis-api/internal/usecases/recommending/mocks"
	"go.uber.org/mock/gomock"
)

type analyzerFixture struct {
	treeBuilder *hierarchymocks.MockTreeBuilder
	metrics     *hierarchymocks.MockMetricsSource
	prompts     *promptmocks.MockManager
	provider    *llmmocks.MockProvider
	loop        *recmocks.MockLoop
	jobManager  *jobsmocks.MockManager
	summaryRepo *repomocks.MockAnalysisSummaryRepository
	logRepo     *repomocks.MockAnalysisLogRepository
	service     *Service
}

func newAnalyzerFixture(t *testing.T, ctrl *gomock.Controller, cfg config.Analyzer) *analyzerFixture {
	t.Helper()

	provider := llmmocks.NewMockProvider(ctrl)
	provider.EXPECT().Name().Return(domain.ProviderAnthropic).AnyTimes()

	f := &analyzerFixture{
		treeBuilder: hierarchymocks.NewMockTreeBuilder(ctrl),
		metrics:     hierarchymocks.NewMockMetricsSource(ctrl),
		prompts:     promptmocks.NewMockManager(ctrl),
		provider:    provider,
		loop:        recmocks.NewMockLoop(ctrl),
		jobManager:  jobsmocks.NewMockManager(ctrl),
		summaryRepo: repomocks.NewMockAnalysisSummaryRepository(ctrl),
		logRepo:     repomocks.NewMockAnalysisLogRepository(ctrl),
	}

	f.service = NewService(
		f.treeBuilder,
		f.metrics,
		f.prompts,
		llm.NewRouter(provider),
		f.loop,
		f.jobManager,
		f.summaryRepo,
		f.logRepo,
		cfg,
	)

	return f
}

// árvore mínima: conta -> campanha -> conjunto -> 2 anúncios (5 entidades)
func sampleTree() *domain.EntityTree {
	ads := []*domain.Entity{
		{ID: "ad-1", Name: "Anúncio A", Platform: "meta", Level: domain.LevelAd},
		{ID: "ad-2", Name: "Anúncio B", Platform: "meta", Level: domain.LevelAd},
	}
	adset := &domain.Entity{ID: "set-1", Name: "Conjunto", Platform: "meta", Level: domain.LevelAdSet, Children: ads}
	campaign := &domain.Entity{ID: "camp-1", Name: "Campanha", Platform: "meta", Level: domain.LevelCampaign, Children: []*domain.Entity{adset}}
	account := &domain.Entity{ID: "acc-1", Name: "Conta Meta", Platform: "meta", Level: domain.LevelAccount, Children: []*domain.Entity{campaign}}

	return &domain.EntityTree{
		Accounts:      map[string]*domain.Entity{"meta:acc-1": account},
		TotalEntities: 5,
	}
}

func levelTemplate() *domain.PromptTemplate {
	return &domain.PromptTemplate{
		ID:       1,
		Slug:     "generic",
		Template: "Analise {entity_name} ({level}) em {days} dias.\n{metrics_table}\n{child_summaries}",
	}
}

func TestService_Run(t *testing.T) {
	cfg := config.Analyzer{MaxConcurrentGenerations: 2, DefaultDays: 30}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAnalyzerFixture(t, ctrl, cfg)

	f.treeBuilder.EXPECT().BuildTree("org-1").Return(sampleTree(), nil)

	// 5 entidades + cross-platform + recomendações
	f.jobManager.EXPECT().Start("job-1", 7).Return(true, nil)

	var progressMu sync.Mutex
	maxProcessed := 0
	f.jobManager.EXPECT().
		UpdateProgress("job-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, processed int, _ string) error {
			progressMu.Lock()
			if processed > maxProcessed {
				maxProcessed = processed
			}
			progressMu.Unlock()
			return nil
		}).
		AnyTimes()

	metrics := []domain.TimeseriesMetric{
		{Date: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), Impressions: 1000, Clicks: 20, SpendCents: 5000, Conversions: 2, ConversionValueCents: 20000},
	}

	// Folhas buscam as próprias métricas; níveis pai agregam as dos filhos
	f.metrics.EXPECT().FetchMetrics("meta", gomock.Any(), gomock.Any(), gomock.Any()).Return(metrics, nil).Times(2)
	f.metrics.EXPECT().FetchAggregatedMetrics("meta", gomock.Any(), gomock.Any(), gomock.Any()).Return(metrics, nil).Times(4)

	f.prompts.EXPECT().GetTemplateForLevel(gomock.Any(), gomock.Any()).Return(levelTemplate(), nil).AnyTimes()

	f.provider.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&llm.LLMResponse{Content: "resumo gerado", Provider: domain.ProviderAnthropic, Model: "claude-3-5-haiku-latest"}, nil).
		Times(6)

	f.summaryRepo.EXPECT().Save(gomock.Any()).Return(nil).Times(6)
	f.logRepo.EXPECT().LogCall(gomock.Any()).Return(nil).Times(6)

	f.loop.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input recommending.Input) (*recommending.Result, error) {
			assert.Equal(t, "org-1", input.OrganizationID)
			assert.NotEmpty(t, input.AnalysisRunID)
			assert.Equal(t, "resumo gerado", input.CrossPlatformSummary)
			assert.Contains(t, input.PlatformSummaries, "meta")
			return &recommending.Result{
				FinalSummary:  "síntese com recomendações",
				Iterations:    2,
				StoppedReason: domain.StoppedEarlyTermination,
				Recommendations: []*domain.Recommendation{
					{Tool: "pause_campaign", Title: "Pausar campanha"},
				},
			}, nil
		})

	f.jobManager.EXPECT().
		Complete("job-1", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, runID string, stoppedReason, _ *string) error {
			assert.NotEmpty(t, runID)
			require.NotNil(t, stoppedReason)
			assert.Equal(t, string(domain.StoppedEarlyTermination), *stoppedReason)
			return nil
		})

	result, err := f.service.Run(context.Background(), "org-1", Options{Days: 30, JobID: "job-1"})

	require.NoError(t, err)
	assert.Equal(t, 5, result.EntityCount)
	assert.Equal(t, "síntese com recomendações", result.CrossPlatformSummary)
	assert.Equal(t, domain.StoppedEarlyTermination, result.AgenticLoopStoppedReason)
	assert.Len(t, result.Recommendations, 1)
	assert.Equal(t, 7, maxProcessed, "o progresso deve chegar ao total com os dois slots extras")
}

func TestService_Run_LimiteDeConcorrencia(t *testing.T) {
	cfg := config.Analyzer{MaxConcurrentGenerations: 2, DefaultDays: 30}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAnalyzerFixture(t, ctrl, cfg)

	// 4 anúncios irmãos no mesmo nível para forçar disputa pelo semáforo
	ads := make([]*domain.Entity, 0, 4)
	for _, id := range []string{"ad-1", "ad-2", "ad-3", "ad-4"} {
		ads = append(ads, &domain.Entity{ID: id, Name: id, Platform: "meta", Level: domain.LevelAd})
	}
	adset := &domain.Entity{ID: "set-1", Name: "Conjunto", Platform: "meta", Level: domain.LevelAdSet, Children: ads}
	campaign := &domain.Entity{ID: "camp-1", Name: "Campanha", Platform: "meta", Level: domain.LevelCampaign, Children: []*domain.Entity{adset}}
	account := &domain.Entity{ID: "acc-1", Name: "Conta", Platform: "meta", Level: domain.LevelAccount, Children: []*domain.Entity{campaign}}
	tree := &domain.EntityTree{Accounts: map[string]*domain.Entity{"meta:acc-1": account}, TotalEntities: 7}

	f.treeBuilder.EXPECT().BuildTree("org-1").Return(tree, nil)
	f.metrics.EXPECT().FetchMetrics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.metrics.EXPECT().FetchAggregatedMetrics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.prompts.EXPECT().GetTemplateForLevel(gomock.Any(), gomock.Any()).Return(levelTemplate(), nil).AnyTimes()
	f.summaryRepo.EXPECT().Save(gomock.Any()).Return(nil).AnyTimes()
	f.logRepo.EXPECT().LogCall(gomock.Any()).Return(nil).AnyTimes()

	var mu sync.Mutex
	inFlight, peak := 0, 0
	f.provider.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string, llm.GenerateOptions) (*llm.LLMResponse, error) {
			mu.Lock()
			inFlight++
			if inFlight > peak {
				peak = inFlight
			}
			mu.Unlock()

			time.Sleep(20 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return &llm.LLMResponse{Content: "resumo", Provider: domain.ProviderAnthropic}, nil
		}).
		AnyTimes()

	f.loop.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&recommending.Result{StoppedReason: domain.StoppedNoToolCalls}, nil)

	_, err := f.service.Run(context.Background(), "org-1", Options{Days: 7})

	require.NoError(t, err)
	assert.LessOrEqual(t, peak, 2, "as gerações simultâneas devem respeitar o limite configurado")
}

func TestService_Run_TemplateAusente(t *testing.T) {
	cfg := config.Analyzer{MaxConcurrentGenerations: 2, DefaultDays: 30}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAnalyzerFixture(t, ctrl, cfg)

	account := &domain.Entity{ID: "acc-1", Name: "Conta", Platform: "meta", Level: domain.LevelAccount}
	tree := &domain.EntityTree{Accounts: map[string]*domain.Entity{"meta:acc-1": account}, TotalEntities: 1}

	f.treeBuilder.EXPECT().BuildTree("org-1").Return(tree, nil)
	f.metrics.EXPECT().FetchMetrics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.metrics.EXPECT().FetchAggregatedMetrics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	// Nenhum template cadastrado: a execução continua com resumos de
	// indisponibilidade e o modelo nunca é chamado
	f.prompts.EXPECT().GetTemplateForLevel(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	saved := make([]*domain.AnalysisSummary, 0, 2)
	f.summaryRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(summary *domain.AnalysisSummary) error {
		saved = append(saved, summary)
		return nil
	}).Times(2)

	f.loop.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&recommending.Result{StoppedReason: domain.StoppedNoToolCalls}, nil)

	result, err := f.service.Run(context.Background(), "org-1", Options{})

	require.NoError(t, err)
	assert.Equal(t, prompting.MissingTemplateSummary, result.CrossPlatformSummary)
	for _, summary := range saved {
		assert.Equal(t, prompting.MissingTemplateSummary, summary.Summary)
	}
}

func TestService_Run_FalhaDeGeracao(t *testing.T) {
	cfg := config.Analyzer{MaxConcurrentGenerations: 2, DefaultDays: 30}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAnalyzerFixture(t, ctrl, cfg)

	f.treeBuilder.EXPECT().BuildTree("org-1").Return(sampleTree(), nil)
	f.jobManager.EXPECT().Start("job-1", 7).Return(true, nil)
	f.jobManager.EXPECT().UpdateProgress(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.metrics.EXPECT().FetchMetrics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.metrics.EXPECT().FetchAggregatedMetrics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.prompts.EXPECT().GetTemplateForLevel(gomock.Any(), gomock.Any()).Return(levelTemplate(), nil).AnyTimes()
	f.summaryRepo.EXPECT().Save(gomock.Any()).Return(nil).AnyTimes()
	f.logRepo.EXPECT().LogCall(gomock.Any()).Return(nil).AnyTimes()

	f.provider.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("rate limit")).
		AnyTimes()

	// A falha de geração deve derrubar o job com a causa original
	f.jobManager.EXPECT().Fail("job-1", gomock.Any()).DoAndReturn(func(_, message string) error {
		assert.Contains(t, message, "rate limit")
		return nil
	})

	_, err := f.service.Run(context.Background(), "org-1", Options{JobID: "job-1"})
	assert.Error(t, err)
}

func TestService_Run_JobNaoPendente(t *testing.T) {
	cfg := config.Analyzer{MaxConcurrentGenerations: 2, DefaultDays: 30}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAnalyzerFixture(t, ctrl, cfg)

	f.treeBuilder.EXPECT().BuildTree("org-1").Return(sampleTree(), nil)
	f.jobManager.EXPECT().Start("job-1", 7).Return(false, nil)

	_, err := f.service.Run(context.Background(), "org-1", Options{JobID: "job-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "não está pendente")
}

func TestService_GetLatestAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAnalyzerFixture(t, ctrl, config.Analyzer{MaxConcurrentGenerations: 2})

	t.Run("Sem análise concluída deve retornar nil", func(t *testing.T) {
		f.summaryRepo.EXPECT().GetLatestCrossPlatform("org-1").Return(nil, nil)

		view, err := f.service.GetLatestAnalysis("org-1")
		assert.NoError(t, err)
		assert.Nil(t, view)
	})

	t.Run("Com análise deve retornar a visão completa da execução", func(t *testing.T) {
		createdAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
		cross := &domain.AnalysisSummary{
			EntityID:      "cross_platform",
			Summary:       "resumo executivo",
			AnalysisRunID: "run-1",
			CreatedAt:     createdAt,
		}
		siblings := []*domain.AnalysisSummary{cross, {EntityID: "acc-1", Summary: "resumo da conta"}}

		f.summaryRepo.EXPECT().GetLatestCrossPlatform("org-1").Return(cross, nil)
		f.summaryRepo.EXPECT().GetByRun("run-1").Return(siblings, nil)

		view, err := f.service.GetLatestAnalysis("org-1")

		require.NoError(t, err)
		assert.Equal(t, "run-1", view.AnalysisRunID)
		assert.Equal(t, "resumo executivo", view.CrossPlatformSummary)
		assert.Equal(t, createdAt, view.GeneratedAt)
		assert.Len(t, view.Summaries, 2)
	})
}
