package recommending

import (
	"context"
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/liveapi"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/llm"
	"github.com/vfg2006/ad-analysis-api/infrastructure/repository"
	"github.com/vfg2006/ad-analysis-api/internal/config"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/prompting"
)

const systemTemplateSlug = "agentic_loop_system"

// defaultSystemPrompt é usado quando o template do loop não está cadastrado
const defaultSystemPrompt = `Você é um analista sênior de tráfego pago. A partir do resumo executivo da conta, investigue os dados ao vivo com a ferramenta query_api quando precisar de evidência adicional e registre sugestões de otimização com a ferramenta emit_recommendation. Quando não houver mais nada relevante a recomendar, encerre com finish_analysis. Instruções adicionais do cliente: {custom_instructions}`

// Input é o contexto de entrada de uma sessão do loop agêntico
type Input struct {
	OrganizationID       string
	AnalysisRunID        string
	CrossPlatformSummary string
	PlatformSummaries    map[string]string
	CustomInstructions   string
	Runtime              *domain.LLMRuntimeConfig
}

// Result é o desfecho de uma sessão: resumo final, recomendações acumuladas
// e o motivo de parada (conjunto fechado)
type Result struct {
	FinalSummary    string
	Recommendations []*domain.Recommendation
	Iterations      int
	StoppedReason   domain.StoppedReason
}

// Loop é a sessão iterativa limitada que transforma o resumo cross-platform
// em recomendações, consultando dados ao vivo sob orçamento
type Loop interface {
	Run(ctx context.Context, input Input) (*Result, error)
}

type Service struct {
	router             *llm.Router
	executor           liveapi.Executor
	prompts            prompting.Manager
	recommendationRepo repository.RecommendationRepository
	cfg                config.AgenticLoop
}

func NewService(
	router *llm.Router,
	executor liveapi.Executor,
	prompts prompting.Manager,
	recommendationRepo repository.RecommendationRepository,
	cfg config.AgenticLoop,
) *Service {
	return &Service{
		router:             router,
		executor:           executor,
		prompts:            prompts,
		recommendationRepo: recommendationRepo,
		cfg:                cfg,
	}
}

func (s *Service) Run(ctx context.Context, input Input) (*Result, error) {
	systemPrompt := s.systemPrompt(input.CustomInstructions)

	messages := []llm.Message{{
		Role:    "user",
		Content: s.seedContext(input),
	}}

	result := &Result{
		Recommendations: make([]*domain.Recommendation, 0, s.cfg.MaxRecommendations),
		StoppedReason:   domain.StoppedMaxIterations,
	}

	for iteration := 0; iteration < s.cfg.MaxIterations; iteration++ {
		result.Iterations = iteration + 1

		response, err := s.router.GenerateWithToolsForLevel(
			ctx, domain.LevelAccount, systemPrompt, messages, toolDefinitions(), input.Runtime,
		)
		if err != nil {
			return nil, fmt.Errorf("erro na iteração %d do loop agêntico: %w", iteration+1, err)
		}

		if response.Content != "" {
			result.FinalSummary = response.Content
		}

		if len(response.ToolCalls) == 0 {
			result.StoppedReason = domain.StoppedNoToolCalls
			break
		}

		messages = append(messages, llm.Message{
			Role:      "assistant",
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		})

		toolResults, stopped := s.processToolCalls(ctx, input, response.ToolCalls, result)
		messages = append(messages, llm.Message{
			Role:        "tool",
			ToolResults: toolResults,
		})

		if stopped {
			break
		}
	}

	if err := s.persist(input, result.Recommendations); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"analysis_run_id": input.AnalysisRunID,
		"iterations":      result.Iterations,
		"recommendations": len(result.Recommendations),
		"stopped_reason":  result.StoppedReason,
	}).Info("Loop agêntico encerrado")

	return result, nil
}

// processToolCalls executa as chamadas de uma iteração dentro do orçamento.
// Falhas de ferramenta voltam como resultado de erro e nunca abortam o loop
func (s *Service) processToolCalls(
	ctx context.Context,
	input Input,
	calls []llm.ToolCall,
	result *Result,
) ([]llm.ToolResult, bool) {
	toolResults := make([]llm.ToolResult, 0, len(calls))
	apiCalls := 0
	stopped := false

	for _, call := range calls {
		switch call.Name {
		case "query_api":
			if apiCalls >= s.cfg.MaxToolCallsPerIteration {
				toolResults = append(toolResults, errorResult(call.ID, "orçamento de chamadas de API desta iteração esgotado"))
				continue
			}
			apiCalls++
			toolResults = append(toolResults, s.queryAPI(ctx, input.OrganizationID, call))

		case "emit_recommendation":
			toolResult, accepted := s.emitRecommendation(input, call, result)
			toolResults = append(toolResults, toolResult)
			if accepted && len(result.Recommendations) >= s.cfg.MaxRecommendations {
				result.StoppedReason = domain.StoppedMaxRecommendations
				stopped = true
			}

		case "finish_analysis":
			var finish struct {
				Summary string `json:"summary"`
			}
			if err := jsoniter.Unmarshal(call.Input, &finish); err == nil && finish.Summary != "" {
				result.FinalSummary = finish.Summary
			}
			toolResults = append(toolResults, llm.ToolResult{ToolCallID: call.ID, Content: "análise encerrada"})
			result.StoppedReason = domain.StoppedEarlyTermination
			stopped = true

		default:
			toolResults = append(toolResults, errorResult(call.ID, fmt.Sprintf("ferramenta desconhecida: %s", call.Name)))
		}
	}

	return toolResults, stopped
}

func (s *Service) queryAPI(ctx context.Context, organizationID string, call llm.ToolCall) llm.ToolResult {
	var request liveapi.ToolRequest
	if err := jsoniter.Unmarshal(call.Input, &request); err != nil {
		return errorResult(call.ID, fmt.Sprintf("input inválido para query_api: %v", err))
	}

	toolResult := s.executor.Execute(ctx, request, organizationID)

	payload, err := jsoniter.Marshal(toolResult)
	if err != nil {
		return errorResult(call.ID, "erro ao serializar o resultado da consulta")
	}

	return llm.ToolResult{
		ToolCallID: call.ID,
		Content:    string(payload),
		IsError:    !toolResult.Success,
	}
}

func (s *Service) emitRecommendation(input Input, call llm.ToolCall, result *Result) (llm.ToolResult, bool) {
	if len(result.Recommendations) >= s.cfg.MaxRecommendations {
		return errorResult(call.ID, "limite de recomendações atingido"), false
	}

	var payload struct {
		Tool            string          `json:"tool"`
		Platform        string          `json:"platform"`
		EntityType      string          `json:"entity_type"`
		EntityID        string          `json:"entity_id"`
		Title           string          `json:"title"`
		Description     string          `json:"description"`
		Confidence      float64         `json:"confidence"`
		EstimatedImpact string          `json:"estimated_impact"`
		SupportingData  json.RawMessage `json:"supporting_data"`
	}
	if err := jsoniter.Unmarshal(call.Input, &payload); err != nil {
		return errorResult(call.ID, fmt.Sprintf("input inválido para emit_recommendation: %v", err)), false
	}

	if payload.Tool == "" || payload.Title == "" {
		return errorResult(call.ID, "recomendação sem tool ou title"), false
	}

	result.Recommendations = append(result.Recommendations, &domain.Recommendation{
		OrganizationID:  input.OrganizationID,
		AnalysisRunID:   input.AnalysisRunID,
		Tool:            payload.Tool,
		Platform:        payload.Platform,
		EntityType:      payload.EntityType,
		EntityID:        payload.EntityID,
		Title:           payload.Title,
		Description:     payload.Description,
		Confidence:      payload.Confidence,
		EstimatedImpact: payload.EstimatedImpact,
		SupportingData:  payload.SupportingData,
	})

	return llm.ToolResult{
		ToolCallID: call.ID,
		Content:    fmt.Sprintf("recomendação registrada (%d/%d)", len(result.Recommendations), s.cfg.MaxRecommendations),
	}, true
}

func (s *Service) persist(input Input, recommendations []*domain.Recommendation) error {
	if len(recommendations) == 0 {
		return nil
	}

	if err := s.recommendationRepo.SaveAll(recommendations); err != nil {
		return fmt.Errorf("erro ao persistir as recomendações: %w", err)
	}

	return nil
}

func (s *Service) systemPrompt(customInstructions string) string {
	template := defaultSystemPrompt

	stored, err := s.prompts.GetTemplate(systemTemplateSlug)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao carregar o template do loop agêntico, usando o padrão")
	} else if stored != nil {
		template = stored.Template
	}

	if customInstructions == "" {
		customInstructions = "nenhuma"
	}

	return prompting.Hydrate(template, map[string]string{
		"custom_instructions": customInstructions,
	})
}

// seedContext monta a mensagem inicial com o resumo executivo e os resumos
// por plataforma já gerados pelo analisador
func (s *Service) seedContext(input Input) string {
	context := "## Resumo executivo cross-platform\n" + input.CrossPlatformSummary + "\n"
	for platform, summary := range input.PlatformSummaries {
		context += fmt.Sprintf("\n## Resumo da plataforma %s\n%s\n", platform, summary)
	}
	return context
}

func errorResult(toolCallID, message string) llm.ToolResult {
	return llm.ToolResult{ToolCallID: toolCallID, Content: message, IsError: true}
}

func toolDefinitions() []llm.ToolDefinition {
	return []llm.ToolDefinition{
		{
			Name:        "query_api",
			Description: "Consulta dados ao vivo de uma plataforma conectada da organização. Somente leitura.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"connector": {"type": "string", "enum": ["meta", "google_ads", "stripe", "hubspot", "jobber"]},
					"endpoint": {"type": "string", "description": "Endpoint suportado pelo connector, ex: campaign_performance, transactions, deal_pipeline"},
					"params": {"type": "object", "description": "Parâmetros do endpoint, ex: account_id, since, until"}
				},
				"required": ["connector", "endpoint"]
			}`),
		},
		{
			Name:        "emit_recommendation",
			Description: "Registra uma recomendação de otimização acionável com estimativa de confiança.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"tool": {"type": "string", "description": "Ação sugerida, ex: pause_campaign, increase_budget, adjust_targeting"},
					"platform": {"type": "string"},
					"entity_type": {"type": "string", "enum": ["ad", "adset", "campaign", "account"]},
					"entity_id": {"type": "string"},
					"title": {"type": "string"},
					"description": {"type": "string"},
					"confidence": {"type": "number", "minimum": 0, "maximum": 1},
					"estimated_impact": {"type": "string"},
					"supporting_data": {"type": "object"}
				},
				"required": ["tool", "platform", "entity_type", "entity_id", "title", "description", "confidence"]
			}`),
		},
		{
			Name:        "finish_analysis",
			Description: "Encerra a análise quando não houver mais recomendações relevantes.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"summary": {"type": "string", "description": "Síntese final da análise"}
				},
				"required": ["summary"]
			}`),
		},
	}
}
