package analyzing

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/llm"
	"github.com/vfg2006/ad-analysis-api/infrastructure/repository"
	"github.com/vfg2006/ad-analysis-api/internal/config"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/hierarchy"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/jobs"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/prompting"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/recommending"
)

const levelSystemPrompt = "Você é um analista de performance de mídia paga. Escreva resumos objetivos, em linguagem natural, destacando tendências, anomalias e oportunidades nos dados apresentados."

// crossPlatformEntityID identifica a linha de resumo executivo de uma
// organização; o resumo cross-platform não corresponde a uma entidade real
const crossPlatformEntityID = "cross_platform"

// Options parametriza uma execução de análise
type Options struct {
	Days               int
	JobID              string
	CustomInstructions string
	Runtime            *domain.LLMRuntimeConfig
}

// AnalysisView é a visão de leitura de uma análise já concluída
type AnalysisView struct {
	AnalysisRunID        string                    `json:"analysis_run_id"`
	CrossPlatformSummary string                    `json:"cross_platform_summary"`
	GeneratedAt          time.Time                 `json:"generated_at"`
	Summaries            []*domain.AnalysisSummary `json:"summaries"`
}

// Analyzer é o orquestrador da análise hierárquica: monta a árvore,
// resume nível a nível de baixo para cima, agrega a visão cross-platform
// e dispara o loop de recomendações
type Analyzer interface {
	Run(ctx context.Context, organizationID string, opts Options) (*domain.AnalysisResult, error)
	GetLatestAnalysis(organizationID string) (*AnalysisView, error)
	GetEntitySummary(organizationID string, level domain.EntityLevel, entityID string) (*domain.AnalysisSummary, error)
}

type Service struct {
	treeBuilder hierarchy.TreeBuilder
	metrics     hierarchy.MetricsSource
	prompts     prompting.Manager
	router      *llm.Router
	loop        recommending.Loop
	jobManager  jobs.Manager
	summaryRepo repository.AnalysisSummaryRepository
	logRepo     repository.AnalysisLogRepository
	cfg         config.Analyzer
}

func NewService(
	treeBuilder hierarchy.TreeBuilder,
	metrics hierarchy.MetricsSource,
	prompts prompting.Manager,
	router *llm.Router,
	loop recommending.Loop,
	jobManager jobs.Manager,
	summaryRepo repository.AnalysisSummaryRepository,
	logRepo repository.AnalysisLogRepository,
	cfg config.Analyzer,
) *Service {
	return &Service{
		treeBuilder: treeBuilder,
		metrics:     metrics,
		prompts:     prompts,
		router:      router,
		loop:        loop,
		jobManager:  jobManager,
		summaryRepo: summaryRepo,
		logRepo:     logRepo,
		cfg:         cfg,
	}
}

// run carrega o estado mutável de uma execução; cada execução tem o seu,
// nunca compartilhado entre análises
type run struct {
	organizationID string
	runID          string
	jobID          string
	days           int
	startDate      time.Time
	endDate        time.Time
	runtime        *domain.LLMRuntimeConfig
	totalEntities  int

	semaphore chan struct{}

	mu        sync.Mutex
	summaries map[string]string
	processed int
	firstErr  error
}

func (s *Service) Run(ctx context.Context, organizationID string, opts Options) (*domain.AnalysisResult, error) {
	startedAt := time.Now()

	days := opts.Days
	if days <= 0 {
		days = s.cfg.DefaultDays
	}

	tree, err := s.treeBuilder.BuildTree(organizationID)
	if err != nil {
		return nil, s.failJob(opts.JobID, fmt.Errorf("erro ao montar a árvore de entidades: %w", err))
	}

	// Os dois slots extras garantem que o percentual só chega a 100
	// depois do resumo cross-platform e das recomendações
	totalEntities := tree.TotalEntities + 2

	if opts.JobID != "" {
		started, err := s.jobManager.Start(opts.JobID, totalEntities)
		if err != nil {
			return nil, s.failJob(opts.JobID, fmt.Errorf("erro ao iniciar o job: %w", err))
		}
		if !started {
			return nil, fmt.Errorf("job %s não está pendente, execução abortada", opts.JobID)
		}
	}

	endDate := time.Now().UTC().Truncate(24 * time.Hour)
	state := &run{
		organizationID: organizationID,
		runID:          uuid.NewString(),
		jobID:          opts.JobID,
		days:           days,
		startDate:      endDate.AddDate(0, 0, -days),
		endDate:        endDate,
		runtime:        opts.Runtime,
		totalEntities:  totalEntities,
		semaphore:      make(chan struct{}, s.cfg.MaxConcurrentGenerations),
		summaries:      make(map[string]string),
	}

	logrus.WithFields(logrus.Fields{
		"organization_id": organizationID,
		"analysis_run_id": state.runID,
		"total_entities":  tree.TotalEntities,
		"days":            days,
	}).Info("Iniciando análise hierárquica")

	// Barreira de níveis: um nível só começa com o anterior inteiro
	// resumido, pois os pais consomem os resumos dos filhos
	for _, level := range domain.SummarizationLevels {
		if err := s.summarizeLevel(ctx, state, tree, level); err != nil {
			return nil, s.failJob(opts.JobID, err)
		}
	}

	crossSummary, platformSummaries, err := s.aggregateCrossPlatform(ctx, state, tree)
	if err != nil {
		return nil, s.failJob(opts.JobID, err)
	}
	s.advanceProgress(state, string(domain.LevelCrossPlatform))

	loopResult, err := s.loop.Run(ctx, recommending.Input{
		OrganizationID:       organizationID,
		AnalysisRunID:        state.runID,
		CrossPlatformSummary: crossSummary,
		PlatformSummaries:    platformSummaries,
		CustomInstructions:   opts.CustomInstructions,
		Runtime:              opts.Runtime,
	})
	if err != nil {
		return nil, s.failJob(opts.JobID, fmt.Errorf("erro no loop de recomendações: %w", err))
	}
	s.advanceProgress(state, "recommendations")

	if loopResult.FinalSummary != "" {
		crossSummary = loopResult.FinalSummary
	}

	if opts.JobID != "" {
		stoppedReason := string(loopResult.StoppedReason)
		if err := s.jobManager.Complete(opts.JobID, state.runID, &stoppedReason, nil); err != nil {
			logrus.WithField("job_id", opts.JobID).WithError(err).Error("Erro ao concluir o job de análise")
		}
	}

	return &domain.AnalysisResult{
		RunID:                    state.runID,
		CrossPlatformSummary:     crossSummary,
		PlatformSummaries:        platformSummaries,
		EntityCount:              tree.TotalEntities,
		DurationMs:               time.Since(startedAt).Milliseconds(),
		Recommendations:          loopResult.Recommendations,
		AgenticLoopIterations:    loopResult.Iterations,
		AgenticLoopStoppedReason: loopResult.StoppedReason,
	}, nil
}

// summarizeLevel resume todas as entidades de um nível com concorrência
// limitada pelo semáforo compartilhado da execução
func (s *Service) summarizeLevel(ctx context.Context, state *run, tree *domain.EntityTree, level domain.EntityLevel) error {
	entities := tree.EntitiesAtLevel(level)
	if len(entities) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	for _, entity := range entities {
		wg.Add(1)

		go func(entity *domain.Entity) {
			defer wg.Done()

			state.semaphore <- struct{}{}
			defer func() { <-state.semaphore }()

			state.mu.Lock()
			aborted := state.firstErr != nil
			state.mu.Unlock()
			if aborted {
				return
			}

			summary, err := s.summarizeEntity(ctx, state, entity)
			if err != nil {
				state.mu.Lock()
				if state.firstErr == nil {
					state.firstErr = err
				}
				state.mu.Unlock()
				return
			}

			state.mu.Lock()
			state.summaries[entity.ID] = summary
			state.mu.Unlock()

			s.advanceProgress(state, string(level))
		}(entity)
	}
	wg.Wait()

	state.mu.Lock()
	err := state.firstErr
	state.mu.Unlock()
	if err != nil {
		return fmt.Errorf("erro ao resumir o nível %s: %w", level, err)
	}

	return nil
}

func (s *Service) summarizeEntity(ctx context.Context, state *run, entity *domain.Entity) (string, error) {
	var metrics []domain.TimeseriesMetric
	var err error

	if len(entity.Children) > 0 {
		metrics, err = s.metrics.FetchAggregatedMetrics(entity.Platform, entity.ChildIDs(), state.startDate, state.endDate)
	} else {
		metrics, err = s.metrics.FetchMetrics(entity.Platform, entity.ID, state.startDate, state.endDate)
	}
	if err != nil {
		return "", err
	}

	template, err := s.prompts.GetTemplateForLevel(entity.Level, entity.Platform)
	if err != nil {
		return "", err
	}

	// Template ausente nunca falha a execução: a entidade recebe um
	// resumo de indisponibilidade e o nível pai segue normalmente
	if template == nil {
		logrus.WithFields(logrus.Fields{
			"level":    entity.Level,
			"platform": entity.Platform,
		}).Warn("Template de prompt não configurado para o nível")
		summary := prompting.MissingTemplateSummary
		if err := s.persistSummary(state, entity, summary, metrics); err != nil {
			return "", err
		}
		return summary, nil
	}

	prompt := prompting.Hydrate(template.Template, map[string]string{
		"entity_name":     entity.Name,
		"platform":        entity.Platform,
		"level":           string(entity.Level),
		"days":            fmt.Sprintf("%d", state.days),
		"metrics_table":   prompting.FormatMetricsTable(metrics),
		"child_summaries": prompting.FormatChildSummaries(s.childSummaries(state, entity)),
	})

	response, err := s.router.GenerateForLevel(ctx, entity.Level, levelSystemPrompt, prompt, nil, state.runtime)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar o resumo de %s: %w", entity.ID, err)
	}

	if err := s.persistSummary(state, entity, response.Content, metrics); err != nil {
		return "", err
	}
	s.auditCall(state, entity, prompt, response)

	return response.Content, nil
}

// childSummaries coleta os resumos dos filhos na ordem da árvore; filhos
// sem resumo aparecem marcados como indisponíveis
func (s *Service) childSummaries(state *run, entity *domain.Entity) []prompting.ChildSummary {
	children := make([]prompting.ChildSummary, 0, len(entity.Children))

	state.mu.Lock()
	defer state.mu.Unlock()

	for _, child := range entity.Children {
		summary, ok := state.summaries[child.ID]
		if !ok {
			summary = "Resumo indisponível para esta entidade."
		}
		children = append(children, prompting.ChildSummary{
			Platform: child.Platform,
			Name:     child.Name,
			Summary:  summary,
		})
	}

	return children
}

func (s *Service) persistSummary(state *run, entity *domain.Entity, summary string, metrics []domain.TimeseriesMetric) error {
	snapshot, err := jsoniter.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar o snapshot de métricas: %w", err)
	}

	platform := entity.Platform
	record := &domain.AnalysisSummary{
		OrganizationID:  state.organizationID,
		Level:           entity.Level,
		Platform:        &platform,
		EntityID:        entity.ID,
		EntityName:      entity.Name,
		Summary:         summary,
		MetricsSnapshot: snapshot,
		Days:            state.days,
		AnalysisRunID:   state.runID,
		ExpiresAt:       time.Now().UTC().Add(domain.SummaryTTL),
	}

	if err := s.summaryRepo.Save(record); err != nil {
		return fmt.Errorf("erro ao persistir o resumo de %s: %w", entity.ID, err)
	}

	return nil
}

// auditCall registra a chamada de geração para auditoria de custo; falha de
// auditoria não derruba a análise
func (s *Service) auditCall(state *run, entity *domain.Entity, prompt string, response *llm.LLMResponse) {
	platform := entity.Platform
	entry := &domain.AnalysisCallLog{
		OrganizationID: state.organizationID,
		Level:          entity.Level,
		Platform:       &platform,
		EntityID:       entity.ID,
		EntityName:     entity.Name,
		Provider:       response.Provider,
		Model:          response.Model,
		InputTokens:    response.InputTokens,
		OutputTokens:   response.OutputTokens,
		LatencyMs:      response.LatencyMs,
		Prompt:         prompt,
		Response:       response.Content,
		AnalysisRunID:  state.runID,
	}

	if err := s.logRepo.LogCall(entry); err != nil {
		logrus.WithField("entity_id", entity.ID).WithError(err).Error("Erro ao registrar a auditoria da geração")
	}
}

// aggregateCrossPlatform soma o investimento e a receita de todas as contas
// (rebuscando as métricas agregadas por conta) e gera o resumo executivo
func (s *Service) aggregateCrossPlatform(ctx context.Context, state *run, tree *domain.EntityTree) (string, map[string]string, error) {
	var totalSpendCents, totalRevenueCents int64
	platformSummaries := make(map[string]string)

	for _, account := range tree.Accounts {
		var metrics []domain.TimeseriesMetric
		var err error

		if len(account.Children) > 0 {
			metrics, err = s.metrics.FetchAggregatedMetrics(account.Platform, account.ChildIDs(), state.startDate, state.endDate)
		} else {
			metrics, err = s.metrics.FetchMetrics(account.Platform, account.ID, state.startDate, state.endDate)
		}
		if err != nil {
			return "", nil, fmt.Errorf("erro ao rebuscar as métricas da conta %s: %w", account.ID, err)
		}

		totals := domain.SumMetrics(metrics)
		totalSpendCents += totals.SpendCents
		totalRevenueCents += totals.ConversionValueCents

		state.mu.Lock()
		accountSummary := state.summaries[account.ID]
		state.mu.Unlock()

		block := fmt.Sprintf("### [%s] %s\n%s", account.Platform, account.Name, accountSummary)
		if existing, ok := platformSummaries[account.Platform]; ok {
			platformSummaries[account.Platform] = existing + "\n\n" + block
		} else {
			platformSummaries[account.Platform] = block
		}
	}

	blendedROAS := 0.0
	if totalSpendCents > 0 {
		blendedROAS = float64(totalRevenueCents) / float64(totalSpendCents)
	}

	template, err := s.prompts.GetTemplateForLevel(domain.LevelCrossPlatform, "")
	if err != nil {
		return "", nil, err
	}

	crossEntity := &domain.Entity{
		ID:       crossPlatformEntityID,
		Name:     "Visão geral cross-platform",
		Platform: "all",
		Level:    domain.LevelCrossPlatform,
	}

	if template == nil {
		logrus.Warn("Template cross-platform não configurado, usando resumo de indisponibilidade")
		summary := prompting.MissingTemplateSummary
		if err := s.persistSummary(state, crossEntity, summary, nil); err != nil {
			return "", nil, err
		}
		return summary, platformSummaries, nil
	}

	var summaryBlocks []string
	for platform, block := range platformSummaries {
		summaryBlocks = append(summaryBlocks, fmt.Sprintf("## Plataforma %s\n%s", platform, block))
	}

	prompt := prompting.Hydrate(template.Template, map[string]string{
		"days":               fmt.Sprintf("%d", state.days),
		"total_spend":        prompting.FormatCents(totalSpendCents),
		"total_revenue":      prompting.FormatCents(totalRevenueCents),
		"blended_roas":       fmt.Sprintf("%.2f", blendedROAS),
		"platform_summaries": strings.Join(summaryBlocks, "\n\n"),
	})

	response, err := s.router.GenerateForLevel(ctx, domain.LevelCrossPlatform, levelSystemPrompt, prompt, nil, state.runtime)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao gerar o resumo cross-platform: %w", err)
	}

	if err := s.persistSummary(state, crossEntity, response.Content, nil); err != nil {
		return "", nil, err
	}
	s.auditCall(state, crossEntity, prompt, response)

	return response.Content, platformSummaries, nil
}

// advanceProgress incrementa o contador e reporta em melhor esforço; erros
// de progresso nunca interrompem a análise
func (s *Service) advanceProgress(state *run, currentLevel string) {
	state.mu.Lock()
	state.processed++
	processed := state.processed
	state.mu.Unlock()

	if state.jobID == "" {
		return
	}

	if err := s.jobManager.UpdateProgress(state.jobID, processed, currentLevel); err != nil {
		logrus.WithField("job_id", state.jobID).WithError(err).Warn("Erro ao atualizar o progresso do job")
	}
}

// failJob marca o job como falho (quando houver) e devolve o erro original
func (s *Service) failJob(jobID string, err error) error {
	if jobID == "" {
		return err
	}

	if failErr := s.jobManager.Fail(jobID, err.Error()); failErr != nil {
		logrus.WithField("job_id", jobID).WithError(failErr).Error("Erro ao marcar o job como falho")
	}

	return err
}

// GetLatestAnalysis devolve a análise concluída mais recente da organização
// a partir da linha cross-platform e de todos os resumos irmãos da execução
func (s *Service) GetLatestAnalysis(organizationID string) (*AnalysisView, error) {
	cross, err := s.summaryRepo.GetLatestCrossPlatform(organizationID)
	if err != nil {
		return nil, err
	}

	if cross == nil {
		return nil, nil
	}

	summaries, err := s.summaryRepo.GetByRun(cross.AnalysisRunID)
	if err != nil {
		return nil, err
	}

	return &AnalysisView{
		AnalysisRunID:        cross.AnalysisRunID,
		CrossPlatformSummary: cross.Summary,
		GeneratedAt:          cross.CreatedAt,
		Summaries:            summaries,
	}, nil
}

// GetEntitySummary devolve o resumo mais novo de uma entidade, de qualquer
// execução
func (s *Service) GetEntitySummary(organizationID string, level domain.EntityLevel, entityID string) (*domain.AnalysisSummary, error) {
	return s.summaryRepo.GetLatestForEntity(organizationID, level, entityID)
}
