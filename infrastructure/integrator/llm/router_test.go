package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/llm"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/llm/mocks"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newProviders(ctrl *gomock.Controller) (*mocks.MockProvider, *mocks.MockProvider) {
	anthropic := mocks.NewMockProvider(ctrl)
	anthropic.EXPECT().Name().Return(domain.ProviderAnthropic).AnyTimes()

	openai := mocks.NewMockProvider(ctrl)
	openai.EXPECT().Name().Return(domain.ProviderOpenAI).AnyTimes()

	return anthropic, openai
}

func TestRouter_GenerateForLevel(t *testing.T) {
	response := &llm.LLMResponse{Content: "resumo gerado"}

	tests := []struct {
		name    string
		level   domain.EntityLevel
		runtime *domain.LLMRuntimeConfig
		setup   func(anthropic, openai *mocks.MockProvider)
	}{
		{
			name:  "Nível ad deve usar o modelo barato da tabela",
			level: domain.LevelAd,
			setup: func(anthropic, openai *mocks.MockProvider) {
				anthropic.EXPECT().
					Generate(gomock.Any(), "sistema", "prompt", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, opts llm.GenerateOptions) (*llm.LLMResponse, error) {
						assert.Equal(t, "claude-3-5-haiku-latest", opts.Model)
						assert.Equal(t, 1024, opts.MaxTokens)
						assert.Equal(t, llm.DefaultTemperature, opts.Temperature)
						return response, nil
					})
			},
		},
		{
			name:  "Nível account deve usar o modelo mais capaz",
			level: domain.LevelAccount,
			setup: func(anthropic, openai *mocks.MockProvider) {
				anthropic.EXPECT().
					Generate(gomock.Any(), "sistema", "prompt", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, opts llm.GenerateOptions) (*llm.LLMResponse, error) {
						assert.Equal(t, "claude-sonnet-4-5", opts.Model)
						assert.Equal(t, 2048, opts.MaxTokens)
						return response, nil
					})
			},
		},
		{
			name:    "Override de provider da organização deve trocar o destino",
			level:   domain.LevelCrossPlatform,
			runtime: &domain.LLMRuntimeConfig{DefaultProvider: domain.ProviderOpenAI},
			setup: func(anthropic, openai *mocks.MockProvider) {
				openai.EXPECT().
					Generate(gomock.Any(), "sistema", "prompt", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, opts llm.GenerateOptions) (*llm.LLMResponse, error) {
						assert.Equal(t, "gpt-4o", opts.Model)
						assert.Equal(t, 4096, opts.MaxTokens)
						return response, nil
					})
			},
		},
		{
			name:    "Provider auto deve delegar para a tabela por nível",
			level:   domain.LevelCampaign,
			runtime: &domain.LLMRuntimeConfig{DefaultProvider: domain.ProviderAuto},
			setup: func(anthropic, openai *mocks.MockProvider) {
				anthropic.EXPECT().
					Generate(gomock.Any(), "sistema", "prompt", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, opts llm.GenerateOptions) (*llm.LLMResponse, error) {
						assert.Equal(t, "claude-3-5-haiku-latest", opts.Model)
						return response, nil
					})
			},
		},
		{
			name:    "Modelo da organização deve sobrescrever o modelo da tabela",
			level:   domain.LevelAd,
			runtime: &domain.LLMRuntimeConfig{AnthropicModel: "claude-opus-4-1"},
			setup: func(anthropic, openai *mocks.MockProvider) {
				anthropic.EXPECT().
					Generate(gomock.Any(), "sistema", "prompt", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, opts llm.GenerateOptions) (*llm.LLMResponse, error) {
						assert.Equal(t, "claude-opus-4-1", opts.Model)
						return response, nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			anthropic, openai := newProviders(ctrl)
			tt.setup(anthropic, openai)

			router := llm.NewRouter(anthropic, openai)
			result, err := router.GenerateForLevel(context.Background(), tt.level, "sistema", "prompt", nil, tt.runtime)

			assert.NoError(t, err)
			assert.Equal(t, response, result)
		})
	}
}

func TestRouter_GenerateForLevel_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	anthropic, openai := newProviders(ctrl)
	router := llm.NewRouter(anthropic, openai)

	t.Run("Nível desconhecido deve retornar erro", func(t *testing.T) {
		_, err := router.GenerateForLevel(context.Background(), domain.EntityLevel("creative"), "s", "p", nil, nil)
		assert.Error(t, err)
	})

	t.Run("Provider desconhecido no runtime deve retornar erro", func(t *testing.T) {
		_, err := router.GenerateForLevel(context.Background(), domain.LevelAd, "s", "p", nil, &domain.LLMRuntimeConfig{DefaultProvider: "gemini"})
		assert.Error(t, err)
	})

	t.Run("Erro do provider deve ser propagado", func(t *testing.T) {
		anthropic.EXPECT().
			Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("rate limit"))

		_, err := router.GenerateForLevel(context.Background(), domain.LevelAd, "s", "p", nil, nil)
		assert.Error(t, err)
	})
}

func TestRouter_GenerateWithToolsForLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	anthropic, openai := newProviders(ctrl)
	toolResponse := &llm.ToolResponse{Content: "analisando"}

	anthropic.EXPECT().
		GenerateWithTools(gomock.Any(), "sistema", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages []llm.Message, tools []llm.ToolDefinition, opts llm.GenerateOptions) (*llm.ToolResponse, error) {
			assert.Equal(t, "claude-sonnet-4-5", opts.Model)
			assert.Len(t, messages, 1)
			assert.Len(t, tools, 2)
			return toolResponse, nil
		})

	router := llm.NewRouter(anthropic, openai)

	result, err := router.GenerateWithToolsForLevel(
		context.Background(),
		domain.LevelAccount,
		"sistema",
		[]llm.Message{{Role: "user", Content: "contexto"}},
		[]llm.ToolDefinition{{Name: "query_api"}, {Name: "emit_recommendation"}},
		nil,
	)

	assert.NoError(t, err)
	assert.Equal(t, toolResponse, result)
}
