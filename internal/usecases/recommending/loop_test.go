package recommending

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/liveapi"
	liveapimocks "github.com/vfg2006/ad-analysis-api/infrastructure/integrator/liveapi/mocks"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/llm"
	llmmocks "github.com/vfg2006/ad-analysis-api/infrastructure/integrator/llm/mocks"
	repomocks "github.com/vfg2006/ad-analysis-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-analysis-api/internal/config"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
	promptmocks "github.com/vfg2006/ad-analysis-api/internal/usecases/prompting/mocks"
	"go.uber.org/mock/gomock"
)

type loopFixture struct {
	provider           *llmmocks.MockProvider
	executor           *liveapimocks.MockExecutor
	prompts            *promptmocks.MockManager
	recommendationRepo *repomocks.MockRecommendationRepository
	service            *Service
}

func newLoopFixture(t *testing.T, ctrl *gomock.Controller, cfg config.AgenticLoop) *loopFixture {
	t.Helper()

	provider := llmmocks.NewMockProvider(ctrl)
	provider.EXPECT().Name().Return(domain.ProviderAnthropic).AnyTimes()

	executor := liveapimocks.NewMockExecutor(ctrl)
	prompts := promptmocks.NewMockManager(ctrl)
	prompts.EXPECT().GetTemplate("agentic_loop_system").Return(nil, nil).AnyTimes()

	recommendationRepo := repomocks.NewMockRecommendationRepository(ctrl)

	return &loopFixture{
		provider:           provider,
		executor:           executor,
		prompts:            prompts,
		recommendationRepo: recommendationRepo,
		service:            NewService(llm.NewRouter(provider), executor, prompts, recommendationRepo, cfg),
	}
}

func toolCall(id, name, input string) llm.ToolCall {
	return llm.ToolCall{ID: id, Name: name, Input: json.RawMessage(input)}
}

func recommendationInput(n int) string {
	return fmt.Sprintf(`{
		"tool": "pause_campaign",
		"platform": "meta",
		"entity_type": "campaign",
		"entity_id": "camp-%d",
		"title": "Pausar campanha %d",
		"description": "CTR abaixo da média do período",
		"confidence": 0.8
	}`, n, n)
}

func TestService_Run_StopReasons(t *testing.T) {
	cfg := config.AgenticLoop{MaxIterations: 3, MaxRecommendations: 2, MaxToolCallsPerIteration: 5}
	input := Input{OrganizationID: "org-1", AnalysisRunID: "run-1", CrossPlatformSummary: "resumo executivo"}

	t.Run("Resposta sem tool calls deve encerrar com no_tool_calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newLoopFixture(t, ctrl, cfg)
		f.provider.EXPECT().
			GenerateWithTools(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&llm.ToolResponse{Content: "nada a recomendar"}, nil)

		result, err := f.service.Run(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, domain.StoppedNoToolCalls, result.StoppedReason)
		assert.Equal(t, "nada a recomendar", result.FinalSummary)
		assert.Equal(t, 1, result.Iterations)
		assert.Empty(t, result.Recommendations)
	})

	t.Run("finish_analysis deve encerrar com early_termination e sobrescrever o resumo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newLoopFixture(t, ctrl, cfg)
		f.provider.EXPECT().
			GenerateWithTools(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&llm.ToolResponse{
				ToolCalls: []llm.ToolCall{toolCall("tc-1", "finish_analysis", `{"summary": "síntese final"}`)},
			}, nil)

		result, err := f.service.Run(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, domain.StoppedEarlyTermination, result.StoppedReason)
		assert.Equal(t, "síntese final", result.FinalSummary)
	})

	t.Run("Limite de recomendações deve encerrar com max_recommendations e persistir", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newLoopFixture(t, ctrl, cfg)
		f.provider.EXPECT().
			GenerateWithTools(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&llm.ToolResponse{
				ToolCalls: []llm.ToolCall{
					toolCall("tc-1", "emit_recommendation", recommendationInput(1)),
					toolCall("tc-2", "emit_recommendation", recommendationInput(2)),
				},
			}, nil)

		f.recommendationRepo.EXPECT().SaveAll(gomock.Any()).DoAndReturn(func(recs []*domain.Recommendation) error {
			require.Len(t, recs, 2)
			assert.Equal(t, "org-1", recs[0].OrganizationID)
			assert.Equal(t, "run-1", recs[0].AnalysisRunID)
			assert.Equal(t, "pause_campaign", recs[0].Tool)
			return nil
		})

		result, err := f.service.Run(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, domain.StoppedMaxRecommendations, result.StoppedReason)
		assert.Len(t, result.Recommendations, 2)
	})

	t.Run("Orçamento esgotado deve encerrar com max_iterations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newLoopFixture(t, ctrl, cfg)
		f.provider.EXPECT().
			GenerateWithTools(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&llm.ToolResponse{
				ToolCalls: []llm.ToolCall{toolCall("tc-1", "query_api", `{"connector": "meta", "endpoint": "campaign_performance"}`)},
			}, nil).
			Times(cfg.MaxIterations)

		f.executor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), "org-1").
			Return(liveapi.ToolResult{Success: true, Data: map[string]any{"rows": 1}}).
			Times(cfg.MaxIterations)

		result, err := f.service.Run(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, domain.StoppedMaxIterations, result.StoppedReason)
		assert.Equal(t, cfg.MaxIterations, result.Iterations)
	})
}

func TestService_Run_ToolBudget(t *testing.T) {
	// Orçamento de uma única chamada de API por iteração
	cfg := config.AgenticLoop{MaxIterations: 1, MaxRecommendations: 5, MaxToolCallsPerIteration: 1}
	input := Input{OrganizationID: "org-1", AnalysisRunID: "run-1"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newLoopFixture(t, ctrl, cfg)
	f.provider.EXPECT().
		GenerateWithTools(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&llm.ToolResponse{
			ToolCalls: []llm.ToolCall{
				toolCall("tc-1", "query_api", `{"connector": "meta", "endpoint": "campaign_performance"}`),
				toolCall("tc-2", "query_api", `{"connector": "meta", "endpoint": "geo_performance"}`),
			},
		}, nil)

	// Apenas a primeira chamada passa pelo executor
	f.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), "org-1").
		Return(liveapi.ToolResult{Success: true}).
		Times(1)

	result, err := f.service.Run(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.StoppedMaxIterations, result.StoppedReason)
}

func TestService_Run_ToolFailures(t *testing.T) {
	cfg := config.AgenticLoop{MaxIterations: 2, MaxRecommendations: 5, MaxToolCallsPerIteration: 5}
	input := Input{OrganizationID: "org-1", AnalysisRunID: "run-1"}

	t.Run("Falha de ferramenta deve voltar ao modelo sem abortar o loop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newLoopFixture(t, ctrl, cfg)

		first := f.provider.EXPECT().
			GenerateWithTools(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&llm.ToolResponse{
				ToolCalls: []llm.ToolCall{toolCall("tc-1", "query_api", `{"connector": "stripe", "endpoint": "transactions"}`)},
			}, nil)

		f.executor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), "org-1").
			Return(liveapi.ToolResult{Success: false, Error: "organização sem conexão ativa com stripe"})

		// A segunda iteração recebe o resultado de erro no histórico
		f.provider.EXPECT().
			GenerateWithTools(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages []llm.Message, _ []llm.ToolDefinition, _ llm.GenerateOptions) (*llm.ToolResponse, error) {
				require.Len(t, messages, 3)
				toolMessage := messages[2]
				require.Len(t, toolMessage.ToolResults, 1)
				assert.True(t, toolMessage.ToolResults[0].IsError)
				assert.Contains(t, toolMessage.ToolResults[0].Content, "sem conexão ativa")
				return &llm.ToolResponse{Content: "sem dados suficientes"}, nil
			}).
			After(first)

		result, err := f.service.Run(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, domain.StoppedNoToolCalls, result.StoppedReason)
	})

	t.Run("Recomendação sem campos obrigatórios deve ser rejeitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newLoopFixture(t, ctrl, cfg)

		first := f.provider.EXPECT().
			GenerateWithTools(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&llm.ToolResponse{
				ToolCalls: []llm.ToolCall{toolCall("tc-1", "emit_recommendation", `{"platform": "meta"}`)},
			}, nil)

		f.provider.EXPECT().
			GenerateWithTools(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&llm.ToolResponse{Content: "encerrando"}, nil).
			After(first)

		result, err := f.service.Run(context.Background(), input)

		require.NoError(t, err)
		assert.Empty(t, result.Recommendations)
	})

	t.Run("Ferramenta desconhecida deve gerar resultado de erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newLoopFixture(t, ctrl, cfg)

		first := f.provider.EXPECT().
			GenerateWithTools(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&llm.ToolResponse{
				ToolCalls: []llm.ToolCall{toolCall("tc-1", "delete_campaign", `{}`)},
			}, nil)

		f.provider.EXPECT().
			GenerateWithTools(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages []llm.Message, _ []llm.ToolDefinition, _ llm.GenerateOptions) (*llm.ToolResponse, error) {
				toolMessage := messages[2]
				require.Len(t, toolMessage.ToolResults, 1)
				assert.True(t, toolMessage.ToolResults[0].IsError)
				assert.Contains(t, toolMessage.ToolResults[0].Content, "ferramenta desconhecida")
				return &llm.ToolResponse{Content: "ok"}, nil
			}).
			After(first)

		result, err := f.service.Run(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, domain.StoppedNoToolCalls, result.StoppedReason)
	})
}

func TestService_Run_CustomInstructions(t *testing.T) {
	cfg := config.AgenticLoop{MaxIterations: 1, MaxRecommendations: 5, MaxToolCallsPerIteration: 5}
	input := Input{
		OrganizationID:     "org-1",
		AnalysisRunID:      "run-1",
		CustomInstructions: "priorize campanhas de remarketing",
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newLoopFixture(t, ctrl, cfg)
	f.provider.EXPECT().
		GenerateWithTools(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, systemPrompt string, _ []llm.Message, _ []llm.ToolDefinition, _ llm.GenerateOptions) (*llm.ToolResponse, error) {
			assert.Contains(t, systemPrompt, "priorize campanhas de remarketing")
			return &llm.ToolResponse{Content: "ok"}, nil
		})

	_, err := f.service.Run(context.Background(), input)
	require.NoError(t, err)
}
