package llm

import (
	"context"
	"fmt"

	"github.com/vfg2006/ad-analysis-api/internal/domain"
)

// levelTier define o par (provider, modelo) e o teto de tokens de um nível:
// modelos baratos para os níveis folha de alto volume, modelos mais capazes
// para account e cross-platform
type levelTier struct {
	Provider       string
	AnthropicModel string
	OpenAIModel    string
	MaxTokens      int
}

var defaultTiers = map[domain.EntityLevel]levelTier{
	domain.LevelAd: {
		Provider:       domain.ProviderAnthropic,
		AnthropicModel: "claude-3-5-haiku-latest",
		OpenAIModel:    "gpt-4o-mini",
		MaxTokens:      1024,
	},
	domain.LevelAdSet: {
		Provider:       domain.ProviderAnthropic,
		AnthropicModel: "claude-3-5-haiku-latest",
		OpenAIModel:    "gpt-4o-mini",
		MaxTokens:      1024,
	},
	domain.LevelCampaign: {
		Provider:       domain.ProviderAnthropic,
		AnthropicModel: "claude-3-5-haiku-latest",
		OpenAIModel:    "gpt-4o-mini",
		MaxTokens:      1536,
	},
	domain.LevelAccount: {
		Provider:       domain.ProviderAnthropic,
		AnthropicModel: "claude-sonnet-4-5",
		OpenAIModel:    "gpt-4o",
		MaxTokens:      2048,
	},
	domain.LevelCrossPlatform: {
		Provider:       domain.ProviderAnthropic,
		AnthropicModel: "claude-sonnet-4-5",
		OpenAIModel:    "gpt-4o",
		MaxTokens:      4096,
	},
}

// Router seleciona (provider, modelo, teto de tokens) por nível da
// hierarquia ou por configuração da organização e despacha para o
// cliente correspondente; nunca ramifica por formato de vendor
type Router struct {
	providers map[string]Provider
}

func NewRouter(providers ...Provider) *Router {
	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &Router{providers: byName}
}

// Generate despacha uma geração para o provider indicado nas opções
func (r *Router) Generate(ctx context.Context, providerName, systemPrompt, userPrompt string, opts GenerateOptions) (*LLMResponse, error) {
	provider, ok := r.providers[providerName]
	if !ok {
		return nil, fmt.Errorf("provider desconhecido: %s", providerName)
	}

	return provider.Generate(ctx, systemPrompt, userPrompt, opts)
}

// GenerateForLevel resolve o tier do nível (com override opcional da
// organização) e gera a resposta. Erros de geração são propagados: o
// chamador decide o destino do job.
func (r *Router) GenerateForLevel(
	ctx context.Context,
	level domain.EntityLevel,
	systemPrompt, userPrompt string,
	override *GenerateOptions,
	runtime *domain.LLMRuntimeConfig,
) (*LLMResponse, error) {
	providerName, opts, err := r.resolve(level, runtime)
	if err != nil {
		return nil, err
	}

	if override != nil {
		if override.Model != "" {
			opts.Model = override.Model
		}
		if override.MaxTokens > 0 {
			opts.MaxTokens = override.MaxTokens
		}
		if override.Temperature > 0 {
			opts.Temperature = override.Temperature
		}
	}

	return r.Generate(ctx, providerName, systemPrompt, userPrompt, opts)
}

// GenerateWithToolsForLevel é a variante com ferramentas usada pelo loop
// agêntico, roteada pelo mesmo tier do nível
func (r *Router) GenerateWithToolsForLevel(
	ctx context.Context,
	level domain.EntityLevel,
	systemPrompt string,
	messages []Message,
	tools []ToolDefinition,
	runtime *domain.LLMRuntimeConfig,
) (*ToolResponse, error) {
	providerName, opts, err := r.resolve(level, runtime)
	if err != nil {
		return nil, err
	}

	provider, ok := r.providers[providerName]
	if !ok {
		return nil, fmt.Errorf("provider desconhecido: %s", providerName)
	}

	return provider.GenerateWithTools(ctx, systemPrompt, messages, tools, opts)
}

// resolve aplica a tabela estática por nível e o override por organização;
// "auto" (ou ausência de configuração) delega para a tabela
func (r *Router) resolve(level domain.EntityLevel, runtime *domain.LLMRuntimeConfig) (string, GenerateOptions, error) {
	tier, ok := defaultTiers[level]
	if !ok {
		return "", GenerateOptions{}, fmt.Errorf("nível de análise desconhecido: %s", level)
	}

	providerName := tier.Provider
	if runtime != nil && runtime.DefaultProvider != "" && runtime.DefaultProvider != domain.ProviderAuto {
		providerName = runtime.DefaultProvider
	}

	model := ""
	switch providerName {
	case domain.ProviderAnthropic:
		model = tier.AnthropicModel
		if runtime != nil && runtime.AnthropicModel != "" {
			model = runtime.AnthropicModel
		}
	case domain.ProviderOpenAI:
		model = tier.OpenAIModel
		if runtime != nil && runtime.OpenAIModel != "" {
			model = runtime.OpenAIModel
		}
	default:
		return "", GenerateOptions{}, fmt.Errorf("provider não suportado: %s", providerName)
	}

	return providerName, GenerateOptions{
		Model:       model,
		MaxTokens:   tier.MaxTokens,
		Temperature: DefaultTemperature,
	}, nil
}
